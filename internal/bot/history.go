package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	recentSessions = 5
	weakPreview    = 10
	randomReview   = 10
)

type HistorySI interface {
	Summary(ctx context.Context, lang models.Language) (models.Summary, error)
	WeakWords(ctx context.Context, lang models.Language) ([]models.WordRecord, error)
	SavedWords(ctx context.Context, lang models.Language, limit int) ([]models.WordRecord, error)
	RandomWords(ctx context.Context, lang models.Language, n int) ([]models.WordRecord, error)
	Sessions(ctx context.Context, lang models.Language, limit int) ([]models.StudySession, error)
	ReviewSet(records []models.WordRecord) models.TranslationMap
}

type HistoryT struct {
	bot     BotSender
	cache   *cache.Cache
	service HistorySI
	log     *zap.Logger
}

func NewHistoryTAPI(bot BotSender, cache *cache.Cache, service HistorySI, log *zap.Logger) *HistoryT {
	return &HistoryT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

func (t *HistoryT) showHistory(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lang := t.cache.Language(chatID)

	summary, err := t.service.Summary(ctx, lang)
	if err != nil {
		t.log.Error("failed to load summary", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được lịch sử học."), t.log)
		return
	}

	sessions, err := t.service.Sessions(ctx, lang, recentSessions)
	if err != nil {
		t.log.Warn("failed to load sessions", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	weak, err := t.service.WeakWords(ctx, lang)
	if err != nil {
		t.log.Warn("failed to load weak words", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, formatHistory(summary, sessions, weak))
	if len(weak) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔁 Ôn từ yếu", callbackReviewWeak),
			),
		)
	}

	sendMessage(t.bot, msg, t.log)
}

func formatHistory(summary models.Summary, sessions []models.StudySession, weak []models.WordRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 %s %s\n\n", summary.Language.Flag(), summary.Language.Title()))
	if summary.Stats.TotalWords == 0 {
		sb.WriteString("Chưa có dữ liệu. Hãy làm một bài trắc nghiệm!")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("📚 Số từ đã học: %d\n", summary.Stats.TotalWords))
	sb.WriteString(fmt.Sprintf("⭐ Đã thuộc: %d\n", summary.Stats.MasteredWords))
	sb.WriteString(fmt.Sprintf("✅ Đúng: %d · ❌ Sai: %d\n", summary.Stats.TotalCorrect, summary.Stats.TotalWrong))
	sb.WriteString(fmt.Sprintf("🎯 Độ chính xác: %.1f%%\n", summary.Accuracy))

	if len(sessions) > 0 {
		sb.WriteString("\n🕑 Các buổi gần đây:\n")
		for _, s := range sessions {
			sb.WriteString(fmt.Sprintf("• %s %s: %d/%d\n",
				s.SessionDate.Local().Format("02.01 15:04"), s.SessionType, s.Score, s.TotalQuestions))
		}
	}

	if len(weak) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ Từ yếu (%d):\n", len(weak)))
		for i, w := range weak {
			if i == weakPreview {
				sb.WriteString(fmt.Sprintf("… và %d từ khác\n", len(weak)-weakPreview))
				break
			}
			sb.WriteString(fmt.Sprintf("• %s → %s (%.0f%%)\n", w.Word, w.Translation, w.Accuracy()))
		}
	}

	return strings.TrimSpace(sb.String())
}

func (t *HistoryT) reviewWeak(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lang := t.cache.Language(chatID)

	weak, err := t.service.WeakWords(ctx, lang)
	if err != nil {
		t.log.Error("failed to load weak words", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được danh sách từ yếu."), t.log)
		return
	}
	if len(weak) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🎉 Không có từ yếu nào!"), t.log)
		return
	}

	t.useWorkingSet(chatID, lang, t.service.ReviewSet(weak), fmt.Sprintf("🔁 Đã chọn %d từ yếu để ôn tập.", len(weak)))
}

func (t *HistoryT) showSaved(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lang := t.cache.Language(chatID)

	saved, err := t.service.SavedWords(ctx, lang, 0)
	if err != nil {
		t.log.Error("failed to load saved words", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được từ đã lưu."), t.log)
		return
	}
	if len(saved) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "📭 Chưa có từ nào được lưu cho "+lang.Title()+"."), t.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("💾 Đã lưu %d từ %s %s.\nÔn tập thế nào?", len(saved), lang.Flag(), lang.Title()))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🎲 %d từ ngẫu nhiên", randomReview), callbackSaved+"random"),
			tgbotapi.NewInlineKeyboardButtonData("📚 Tất cả", callbackSaved+"all"),
		),
	)

	sendMessage(t.bot, msg, t.log)
}

func (t *HistoryT) reviewSaved(chatID int64, random bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lang := t.cache.Language(chatID)

	var (
		records []models.WordRecord
		err     error
	)
	if random {
		records, err = t.service.RandomWords(ctx, lang, randomReview)
	} else {
		records, err = t.service.SavedWords(ctx, lang, 0)
	}
	if err != nil {
		t.log.Error("failed to load saved words", zap.Int64("chat_id", chatID), zap.Bool("random", random), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được từ đã lưu."), t.log)
		return
	}
	if len(records) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "📭 Chưa có từ nào được lưu."), t.log)
		return
	}

	t.useWorkingSet(chatID, lang, t.service.ReviewSet(records), fmt.Sprintf("💾 Đã chọn %d từ để ôn tập.", len(records)))
}

// useWorkingSet replaces the chat's working set and drops any run built on the old one.
func (t *HistoryT) useWorkingSet(chatID int64, lang models.Language, set models.TranslationMap, text string) {
	t.cache.SetWorkingSet(chatID, lang, set)
	t.cache.DeleteQuiz(chatID)
	t.cache.DeleteDeck(chatID)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = studyKeyboard()
	sendMessage(t.bot, msg, t.log)
}
