package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	cardFlip  = "card_flip"
	cardKnown = "card_known"
	cardNext  = "card_next"
	cardPrev  = "card_prev"
	cardAudio = "card_audio"
)

type CardSI interface {
	RecordAnswer(ctx context.Context, lang models.Language, word, translation string, correct bool) error
	Speak(ctx context.Context, lang models.Language, word string) ([]byte, error)
}

type CardT struct {
	bot     BotSender
	cache   *cache.Cache
	service CardSI
	log     *zap.Logger
}

func NewCardTAPI(bot BotSender, cache *cache.Cache, service CardSI, log *zap.Logger) *CardT {
	return &CardT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

func (t *CardT) startDeck(chatID int64) {
	lang := t.cache.Language(chatID)

	set, ok := t.cache.WorkingSet(chatID, lang)
	if !ok {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, noVocabularyText), t.log)
		return
	}

	deck := cache.DeckState{
		Language:     lang,
		Words:        set.Words(),
		Translations: set,
	}
	t.cache.SetDeck(chatID, deck)

	msg := tgbotapi.NewMessage(chatID, cardText(deck))
	msg.ReplyMarkup = cardKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func cardText(deck cache.DeckState) string {
	word := deck.Word()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🃏 Thẻ %d/%d · đã biết %d\n\n", deck.Index+1, len(deck.Words), deck.Known))
	sb.WriteString(word)
	if deck.Shown {
		sb.WriteString("\n\n👉 ")
		sb.WriteString(deck.Translations[word])
	}
	return sb.String()
}

func cardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Lật thẻ", cardFlip),
			tgbotapi.NewInlineKeyboardButtonData("🔊 Nghe", cardAudio),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏮", cardPrev),
			tgbotapi.NewInlineKeyboardButtonData("✅ Đã biết", cardKnown),
			tgbotapi.NewInlineKeyboardButtonData("⏭", cardNext),
		),
	)
}

func (t *CardT) handleCardCallback(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	deck, exists := t.cache.GetDeck(chatID)
	if !exists || len(deck.Words) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tìm thấy bộ thẻ. Hãy bắt đầu lại."), t.log)
		return
	}

	switch query.Data {
	case cardFlip:
		deck.Shown = !deck.Shown
	case cardNext:
		deck = advance(deck, 1)
	case cardPrev:
		deck = advance(deck, -1)
	case cardKnown:
		if !t.markKnown(chatID, deck) {
			return
		}
		deck.Known++
		deck = advance(deck, 1)
	case cardAudio:
		t.sendAudio(chatID, deck)
		return
	default:
		t.log.Warn("unknown card callback", zap.String("data", query.Data))
		return
	}

	t.cache.SetDeck(chatID, deck)

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, cardText(deck), cardKeyboard())
	sendMessage(t.bot, edit, t.log)
}

// advance moves by step within the deck bounds and hides the translation.
func advance(deck cache.DeckState, step int) cache.DeckState {
	deck.Index = max(0, min(len(deck.Words)-1, deck.Index+step))
	deck.Shown = false
	return deck
}

func (t *CardT) markKnown(chatID int64, deck cache.DeckState) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	word := deck.Word()
	if err := t.service.RecordAnswer(ctx, deck.Language, word, deck.Translations[word], true); err != nil {
		t.log.Error("failed to record known card", zap.Int64("chat_id", chatID), zap.String("word", word), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⚠️ Không lưu được tiến độ. Thử lại sau."), t.log)
		return false
	}
	return true
}

func (t *CardT) sendAudio(chatID int64, deck cache.DeckState) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	word := deck.Word()
	audio, err := t.service.Speak(ctx, deck.Language, word)
	if err != nil {
		if !errors.Is(err, models.ErrSynthesis) {
			t.log.Error("speech failed", zap.String("word", word), zap.Error(err))
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🔇 Không phát âm được từ này."), t.log)
		return
	}

	msg := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{Name: word + ".mp3", Bytes: audio})
	msg.Title = word
	sendMessage(t.bot, msg, t.log)
}
