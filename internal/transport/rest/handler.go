package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/DanRulev/vocadeck/internal/extract"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	languageKey        = "language"
	defaultRandomWords = 10
)

type ServiceI interface {
	Ingest(ctx context.Context, lang models.Language, doc extract.Document, progress func(done, total int)) (models.TranslationMap, error)
	CreateQuiz(translations models.TranslationMap, numQuestions int) ([]models.Question, error)
	Grade(questions []models.Question, answers []string) (int, []models.QuizResult)
	RecordQuiz(ctx context.Context, lang models.Language, results []models.QuizResult) (int, error)
	RecordAnswer(ctx context.Context, lang models.Language, word, translation string, correct bool) error
	RecordSession(ctx context.Context, lang models.Language, sessionType string, score, total int) error
	Summary(ctx context.Context, lang models.Language) (models.Summary, error)
	WeakWords(ctx context.Context, lang models.Language) ([]models.WordRecord, error)
	History(ctx context.Context, lang models.Language) ([]models.WordRecord, error)
	SavedWords(ctx context.Context, lang models.Language, limit int) ([]models.WordRecord, error)
	RandomWords(ctx context.Context, lang models.Language, n int) ([]models.WordRecord, error)
	Sessions(ctx context.Context, lang models.Language, limit int) ([]models.StudySession, error)
	ReviewSet(records []models.WordRecord) models.TranslationMap
	Speak(ctx context.Context, lang models.Language, word string) ([]byte, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	service   ServiceI
	db        Pinger
	maxUpload int64
	log       *zap.Logger
}

func NewHandler(service ServiceI, db Pinger, maxUpload int64, log *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		db:        db,
		maxUpload: maxUpload,
		log:       log,
	}
}

func languageParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := models.ParseLanguage(c.Param(languageKey))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(languageKey, lang)
		c.Next()
	}
}

func language(c *gin.Context) models.Language {
	return c.MustGet(languageKey).(models.Language)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("health check: db ping failed", zap.Error(err))
		response["status"] = "degraded"
		response["db"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

type ingestResponse struct {
	Language models.Language       `json:"language"`
	Count    int                   `json:"count"`
	Words    models.TranslationMap `json:"words"`
	Failed   []string              `json:"failed"`
}

func (h *Handler) UploadDocument(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
			return
		}
		badRequest(c, "multipart field \"file\" is required")
		return
	}
	if h.maxUpload > 0 && header.Size > h.maxUpload {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, err)
		return
	}

	lang := language(c)
	set, err := h.service.Ingest(c.Request.Context(), lang, extract.Document{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil)
	if err != nil {
		abortWithError(c, err)
		return
	}

	failed := set.Failed()
	if failed == nil {
		failed = []string{}
	}
	c.JSON(http.StatusOK, ingestResponse{
		Language: lang,
		Count:    len(set),
		Words:    set,
		Failed:   failed,
	})
}

type quizRequest struct {
	Translations models.TranslationMap `json:"translations"`
	NumQuestions int                   `json:"num_questions" binding:"min=0"`
}

// CreateQuiz builds a quiz from the posted working set, or from the stored
// words of the language when none is posted.
func (h *Handler) CreateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return
	}

	set := req.Translations
	if len(set) == 0 {
		records, err := h.service.SavedWords(c.Request.Context(), language(c), 0)
		if err != nil {
			abortWithError(c, err)
			return
		}
		set = h.service.ReviewSet(records)
	}

	questions, err := h.service.CreateQuiz(set, req.NumQuestions)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

type submitRequest struct {
	Questions []models.Question `json:"questions" binding:"required,min=1"`
	Answers   []string          `json:"answers"`
}

type submitResponse struct {
	Score   int                 `json:"score"`
	Total   int                 `json:"total"`
	Results []models.QuizResult `json:"results"`
}

func (h *Handler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	score, results := h.service.Grade(req.Questions, req.Answers)
	if _, err := h.service.RecordQuiz(c.Request.Context(), language(c), results); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, submitResponse{Score: score, Total: len(results), Results: results})
}

type answerRequest struct {
	Word        string `json:"word" binding:"required"`
	Translation string `json:"translation"`
	Correct     *bool  `json:"correct" binding:"required"`
}

func (h *Handler) RecordAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.service.RecordAnswer(c.Request.Context(), language(c), req.Word, req.Translation, *req.Correct); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type sessionRequest struct {
	SessionType string `json:"session_type" binding:"required,oneof=quiz flashcard"`
	Score       int    `json:"score"`
	Total       int    `json:"total_questions"`
}

func (h *Handler) RecordSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.service.RecordSession(c.Request.Context(), language(c), req.SessionType, req.Score, req.Total); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) Sessions(c *gin.Context) {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		badRequest(c, "limit must be a number")
		return
	}

	sessions, err := h.service.Sessions(c.Request.Context(), language(c), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) Stats(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), language(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) WeakWords(c *gin.Context) {
	words, err := h.service.WeakWords(c.Request.Context(), language(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"words": words})
}

// Words lists stored words. mode=saved orders by correct answers and honours
// limit; mode=random samples limit words (10 by default); no mode is the
// full history, most recently reviewed first.
func (h *Handler) Words(c *gin.Context) {
	ctx := c.Request.Context()
	lang := language(c)

	var (
		words []models.WordRecord
		err   error
	)
	switch c.Query("mode") {
	case "":
		words, err = h.service.History(ctx, lang)
	case "saved":
		limit, convErr := intQuery(c, "limit", 0)
		if convErr != nil {
			badRequest(c, "limit must be a number")
			return
		}
		words, err = h.service.SavedWords(ctx, lang, limit)
	case "random":
		n, convErr := intQuery(c, "limit", defaultRandomWords)
		if convErr != nil {
			badRequest(c, "limit must be a number")
			return
		}
		words, err = h.service.RandomWords(ctx, lang, n)
	default:
		badRequest(c, "mode must be saved or random")
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"words": words})
}

func (h *Handler) Audio(c *gin.Context) {
	audio, err := h.service.Speak(c.Request.Context(), language(c), c.Param("word"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
