package bot

import (
	"strings"

	"github.com/DanRulev/vocadeck/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonLanguage   = "🌐 Đổi ngôn ngữ"
	ButtonUpload     = "📄 Tải tài liệu"
	ButtonQuiz       = "🧠 Trắc nghiệm"
	ButtonFlashcards = "🃏 Thẻ từ"
	ButtonHistory    = "📊 Lịch sử học"
	ButtonSaved      = "💾 Từ đã lưu"
	ButtonHelp       = "ℹ️ Trợ giúp"
	ButtonMainMenu   = "🏠 Menu chính"
)

const (
	callbackLanguage   = "lang_"
	callbackNewQuiz    = "new_quiz"
	callbackQuiz       = "quiz_"
	callbackCards      = "cards_start"
	callbackCard       = "card_"
	callbackReviewWeak = "review_weak"
	callbackSaved      = "saved_"
	callbackMainMenu   = "main_menu"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "language":
		t.showLanguageMenu(message.Chat.ID)
	case "quiz":
		t.quiz.startQuiz(message.Chat.ID)
	case "cards":
		t.cards.startDeck(message.Chat.ID)
	case "stats":
		t.history.showHistory(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Lệnh không hợp lệ. Dùng /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	lang := t.cache.Language(message.Chat.ID)

	welcomeText := "🤖 Xin chào! Mình giúp bạn học từ vựng tiếng Nga và tiếng Trung.\n\n" +
		"✨ Mình có thể:\n" +
		"• 📄 Trích xuất từ vựng từ tài liệu PDF, DOCX, TXT\n" +
		"• 🌏 Dịch từng từ sang tiếng Việt\n" +
		"• 🃏 Ôn tập bằng thẻ từ\n" +
		"• 🧠 Làm bài trắc nghiệm\n" +
		"• 📊 Theo dõi tiến độ và từ yếu\n\n" +
		"Ngôn ngữ hiện tại: " + lang.Flag() + " " + lang.Title()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Menu chính:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonUpload),
			tgbotapi.NewKeyboardButton(ButtonLanguage),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonFlashcards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHistory),
			tgbotapi.NewKeyboardButton(ButtonSaved),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Các lệnh:
/start — khởi động bot
/language — chọn ngôn ngữ học
/quiz — làm bài trắc nghiệm
/cards — ôn bằng thẻ từ
/stats — xem thống kê
/help — trợ giúp

🎯 Cách dùng:
• Chọn ngôn ngữ, rồi gửi tài liệu PDF, DOCX hoặc TXT
• Mình sẽ trích xuất và dịch từ vựng, kèm file CSV
• Làm trắc nghiệm hoặc ôn thẻ từ với bộ từ vừa tạo
• "Lịch sử học" cho biết các từ bạn hay trả lời sai
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.Document != nil {
		t.document.handleDocument(message)
		return
	}

	switch message.Text {
	case ButtonUpload:
		lang := t.cache.Language(chatID)
		msg := tgbotapi.NewMessage(chatID,
			"📄 Gửi cho mình một tài liệu "+lang.Title()+" (PDF, DOCX hoặc TXT).")
		sendMessage(t.bot, msg, t.log)
	case ButtonLanguage:
		t.showLanguageMenu(chatID)
	case ButtonQuiz:
		t.quiz.startQuiz(chatID)
	case ButtonFlashcards:
		t.cards.startDeck(chatID)
	case ButtonHistory:
		t.history.showHistory(chatID)
	case ButtonSaved:
		t.history.showSaved(chatID)
	case ButtonMainMenu:
		t.showMainMenu(chatID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(chatID, "Mình chưa hiểu. Hãy dùng các nút bên dưới.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) showLanguageMenu(chatID int64) {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(models.Languages))
	for _, lang := range models.Languages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(lang.Flag()+" "+lang.Title(), callbackLanguage+string(lang)))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)

	current := t.cache.Language(chatID)
	msg := tgbotapi.NewMessage(chatID, "🌐 Ngôn ngữ hiện tại: "+current.Flag()+" "+current.Title()+"\nChọn ngôn ngữ muốn học:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) switchLanguage(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	lang, err := models.ParseLanguage(strings.TrimPrefix(query.Data, callbackLanguage))
	if err != nil {
		t.log.Warn("unknown language selected", zap.String("data", query.Data))
		return
	}

	t.cache.SetLanguage(chatID, lang)

	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
		"✅ Đã chuyển sang "+lang.Flag()+" "+lang.Title())
	sendMessage(t.bot, edit, t.log)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil || query.Message.Chat == nil {
		t.log.Warn("callback query without message", zap.String("id", query.ID))
		return
	}

	data := query.Data
	chatID := query.Message.Chat.ID

	switch {
	case strings.HasPrefix(data, callbackLanguage):
		t.switchLanguage(query)
	case data == callbackNewQuiz:
		t.quiz.startQuiz(chatID)
	case strings.HasPrefix(data, callbackQuiz):
		t.quiz.processAnswer(query)
	case data == callbackCards:
		t.cards.startDeck(chatID)
	case strings.HasPrefix(data, callbackCard):
		t.cards.handleCardCallback(query)
	case data == callbackReviewWeak:
		t.history.reviewWeak(chatID)
	case strings.HasPrefix(data, callbackSaved):
		t.history.reviewSaved(chatID, strings.TrimPrefix(data, callbackSaved) == "random")
	case data == callbackMainMenu:
		t.showMainMenu(chatID)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat_id", chatID))
	}
}

// studyKeyboard offers the two ways to practise the current working set.
func studyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonQuiz, callbackNewQuiz),
			tgbotapi.NewInlineKeyboardButtonData(ButtonFlashcards, callbackCards),
		),
	)
}
