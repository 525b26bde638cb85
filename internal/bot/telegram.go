package bot

import (
	"net/http"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	DocumentSI
	QuizSI
	CardSI
	HistorySI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type TelegramAPI struct {
	api   *tgbotapi.BotAPI
	bot   BotSender
	cache *cache.Cache
	log   *zap.Logger

	document *DocumentT
	quiz     *QuizT
	cards    *CardT
	history  *HistoryT
}

func NewTelegramAPI(cfg *config.Config, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	api.Debug = cfg.Env == "development"

	t := newTelegramHandlers(api, service, cache, cfg.HTTP, log)
	t.api = api
	return t, nil
}

func newTelegramHandlers(bot BotSender, service ServiceI, cache *cache.Cache, cfg config.HTTPConfig, log *zap.Logger) *TelegramAPI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &TelegramAPI{
		bot:      bot,
		cache:    cache,
		log:      log,
		document: NewDocumentTAPI(bot, cache, service, &http.Client{Timeout: timeout}, cfg.MaxUpload, timeout, log),
		quiz:     NewQuizTAPI(bot, cache, service, log),
		cards:    NewCardTAPI(bot, cache, service, log),
		history:  NewHistoryTAPI(bot, cache, service, log),
	}
}

// Start handles updates one at a time until the updates channel closes.
func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	t.log.Info("telegram bot started", zap.String("username", t.api.Self.UserName))

	for update := range updates {
		t.handleUpdate(update)
	}
}

func (t *TelegramAPI) Stop() {
	t.api.StopReceivingUpdates()
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
