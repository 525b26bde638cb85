package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	CreateQuiz(translations models.TranslationMap, numQuestions int) ([]models.Question, error)
	Grade(questions []models.Question, answers []string) (int, []models.QuizResult)
	RecordQuiz(ctx context.Context, lang models.Language, results []models.QuizResult) (int, error)
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

const noVocabularyText = "📭 Chưa có bộ từ nào. Hãy gửi tài liệu hoặc chọn từ trong \"" + ButtonSaved + "\"."

func (t *QuizT) startQuiz(chatID int64) {
	lang := t.cache.Language(chatID)

	set, ok := t.cache.WorkingSet(chatID, lang)
	if !ok {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, noVocabularyText), t.log)
		return
	}

	questions, err := t.service.CreateQuiz(set, 0)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientVocabulary) {
			msg := tgbotapi.NewMessage(chatID, "⚠️ Cần ít nhất 4 từ có nghĩa khác nhau để tạo bài trắc nghiệm.")
			sendMessage(t.bot, msg, t.log)
			return
		}
		t.log.Error("failed to create quiz", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tạo được bài trắc nghiệm. Thử lại sau."), t.log)
		return
	}

	state := cache.QuizState{
		Language:  lang,
		Questions: questions,
		Answers:   make([]string, 0, len(questions)),
	}
	t.cache.SetQuiz(chatID, state)

	t.sendQuestion(chatID, state)
}

func (t *QuizT) sendQuestion(chatID int64, state cache.QuizState) {
	q := state.Questions[state.Current]

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, option := range q.Options {
		data := fmt.Sprintf("%s%d_%d", callbackQuiz, state.Current, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(option, data)))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❓ Câu %d/%d\n%s", state.Current+1, len(state.Questions), q.Prompt))
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg, t.log)
}

func parseAnswer(data string) (question, option int, err error) {
	parts := strings.Split(strings.TrimPrefix(data, callbackQuiz), "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad quiz callback %q", data)
	}
	if question, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, err
	}
	if option, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, err
	}
	return question, option, nil
}

func (t *QuizT) processAnswer(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	state, exists := t.cache.GetQuiz(chatID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tìm thấy bài trắc nghiệm. Hãy bắt đầu bài mới."), t.log)
		return
	}

	question, option, err := parseAnswer(query.Data)
	if err != nil {
		t.log.Warn("invalid quiz callback", zap.String("data", query.Data), zap.Error(err))
		return
	}
	if question != state.Current || option < 0 || option >= len(state.Questions[question].Options) {
		t.log.Debug("stale quiz answer", zap.Int64("chat_id", chatID), zap.Int("question", question))
		return
	}

	answer := state.Questions[question].Options[option]
	state.Answers = append(state.Answers, answer)
	state.Current++

	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
		fmt.Sprintf("%s\n\n👉 Bạn chọn: %s", query.Message.Text, answer))
	sendMessage(t.bot, edit, t.log)

	if !state.Done() {
		t.cache.SetQuiz(chatID, state)
		t.sendQuestion(chatID, state)
		return
	}

	t.cache.DeleteQuiz(chatID)
	t.finishQuiz(chatID, state)
}

func (t *QuizT) finishQuiz(chatID int64, state cache.QuizState) {
	score, results := t.service.Grade(state.Questions, state.Answers)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text := formatQuizResult(score, results)
	if _, err := t.service.RecordQuiz(ctx, state.Language, results); err != nil {
		t.log.Error("failed to save quiz result", zap.Int64("chat_id", chatID), zap.Error(err))
		text += "\n\n⚠️ Không lưu được kết quả vào lịch sử."
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Làm bài mới", callbackNewQuiz),
			tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, callbackMainMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func formatQuizResult(score int, results []models.QuizResult) string {
	var sb strings.Builder

	percent := 0.0
	if len(results) > 0 {
		percent = float64(score) * 100 / float64(len(results))
	}
	sb.WriteString(fmt.Sprintf("🏁 Kết quả: %d/%d (%.0f%%)\n\n", score, len(results), percent))

	for i, r := range results {
		if r.Correct {
			sb.WriteString(fmt.Sprintf("%d. ✅ %s → %s\n", i+1, r.Question.Word, r.Question.Correct))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. ❌ %s → %s (bạn chọn: %s)\n", i+1, r.Question.Word, r.Question.Correct, r.Answer))
	}

	return strings.TrimSpace(sb.String())
}
