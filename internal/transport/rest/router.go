package rest

import (
	"net/http"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(cfg config.HTTPConfig, env string, h *Handler, log *zap.Logger) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)

	api := r.Group("/api/v1/:language", languageParam())
	{
		api.POST("/documents", h.UploadDocument)

		api.POST("/quizzes", h.CreateQuiz)
		api.POST("/quizzes/results", h.SubmitQuiz)

		api.POST("/answers", h.RecordAnswer)
		api.POST("/sessions", h.RecordSession)
		api.GET("/sessions", h.Sessions)

		api.GET("/stats", h.Stats)
		api.GET("/weak-words", h.WeakWords)
		api.GET("/words", h.Words)
		api.GET("/words/:word/audio", h.Audio)
	}

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Debug("request", fields...)
	}
}
