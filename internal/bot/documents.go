package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DanRulev/vocadeck/internal/extract"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const previewWords = 15

type DocumentSI interface {
	Ingest(ctx context.Context, lang models.Language, doc extract.Document, progress func(done, total int)) (models.TranslationMap, error)
}

type DocumentT struct {
	bot     BotSender
	cache   *cache.Cache
	service DocumentSI
	client  *http.Client
	maxSize int64
	timeout time.Duration
	log     *zap.Logger
}

func NewDocumentTAPI(bot BotSender, cache *cache.Cache, service DocumentSI, client *http.Client, maxSize int64, timeout time.Duration, log *zap.Logger) *DocumentT {
	return &DocumentT{
		bot:     bot,
		cache:   cache,
		service: service,
		client:  client,
		maxSize: maxSize,
		timeout: timeout,
		log:     log,
	}
}

func (t *DocumentT) handleDocument(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document
	lang := t.cache.Language(chatID)

	if t.maxSize > 0 && int64(doc.FileSize) > t.maxSize {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ Tệp quá lớn. Giới hạn là %d MB.", t.maxSize>>20))
		sendMessage(t.bot, msg, t.log)
		return
	}

	if _, err := extract.DetectFormat(doc.FileName, doc.MimeType); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Định dạng không được hỗ trợ. Hãy gửi PDF, DOCX hoặc TXT.")
		sendMessage(t.bot, msg, t.log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	url, err := t.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		t.log.Error("failed to get file url", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được tệp. Thử lại sau."), t.log)
		return
	}

	data, err := t.download(ctx, url)
	if err != nil {
		t.log.Error("failed to download file", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Không tải được tệp. Thử lại sau."), t.log)
		return
	}

	status, err := t.bot.Send(tgbotapi.NewMessage(chatID, "⏳ Đang trích xuất và dịch từ vựng..."))
	if err != nil {
		t.log.Warn("failed to send status message", zap.Error(err))
	}

	set, err := t.service.Ingest(ctx, lang, extract.Document{
		Name:     doc.FileName,
		MIMEType: doc.MimeType,
		Data:     data,
	}, t.progressReporter(chatID, status.MessageID))
	if err != nil {
		t.log.Warn("failed to ingest document", zap.Int64("chat_id", chatID), zap.String("name", doc.FileName), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, ingestErrorText(err)), t.log)
		return
	}

	t.cache.SetWorkingSet(chatID, lang, set)
	t.cache.DeleteDeck(chatID)
	t.cache.DeleteQuiz(chatID)

	msg := tgbotapi.NewMessage(chatID, formatIngestSummary(lang, set))
	msg.ReplyMarkup = studyKeyboard()
	sendMessage(t.bot, msg, t.log)

	csvData, err := set.CSV()
	if err != nil {
		t.log.Error("failed to build vocabulary csv", zap.Error(err))
		return
	}
	file := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "vocabulary_" + string(lang) + ".csv",
		Bytes: csvData,
	})
	sendMessage(t.bot, file, t.log)
}

// progressReporter edits the status message every ten words and on the last one.
func (t *DocumentT) progressReporter(chatID int64, messageID int) func(done, total int) {
	if messageID == 0 {
		return nil
	}
	return func(done, total int) {
		if done%10 != 0 && done != total {
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("⏳ Đã dịch %d/%d từ...", done, total))
		sendMessage(t.bot, edit, t.log)
	}
}

func (t *DocumentT) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download status %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if t.maxSize > 0 {
		reader = io.LimitReader(resp.Body, t.maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if t.maxSize > 0 && int64(len(data)) > t.maxSize {
		return nil, fmt.Errorf("file exceeds %d bytes", t.maxSize)
	}

	return data, nil
}

func ingestErrorText(err error) string {
	switch {
	case errors.Is(err, models.ErrUnsupportedFormat):
		return "❌ Định dạng không được hỗ trợ. Hãy gửi PDF, DOCX hoặc TXT."
	case errors.Is(err, models.ErrExtraction):
		return "❌ Không đọc được nội dung tài liệu. Tệp có thể bị hỏng."
	case errors.Is(err, models.ErrDependencyUnavailable):
		return "❌ Bộ tách từ tiếng Trung chưa sẵn sàng. Vui lòng thử lại sau."
	case errors.Is(err, models.ErrNoWords):
		return "⚠️ Không tìm thấy từ vựng nào trong tài liệu này."
	}
	return "❌ Có lỗi khi xử lý tài liệu. Thử lại sau."
}

func formatIngestSummary(lang models.Language, set models.TranslationMap) string {
	var sb strings.Builder

	failed := set.Failed()
	sb.WriteString(fmt.Sprintf("✅ Đã trích xuất %d từ (%s %s).\n", len(set), lang.Flag(), lang.Title()))
	if len(failed) > 0 {
		sb.WriteString(fmt.Sprintf("⚠️ %d từ chưa dịch được.\n", len(failed)))
	}
	sb.WriteString("\n")

	words := set.Words()
	for i, word := range words {
		if i == previewWords {
			sb.WriteString(fmt.Sprintf("... và %d từ khác (xem file CSV)\n", len(words)-previewWords))
			break
		}
		sb.WriteString(fmt.Sprintf("• %s → %s\n", word, set[word]))
	}

	return strings.TrimSpace(sb.String())
}
