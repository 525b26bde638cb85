package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MockBot records everything the handlers send.
type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable

	FileURL string
	FileErr error
	SendErr error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.SendErr != nil {
		return tgbotapi.Message{}, m.SendErr
	}
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages), Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBot) GetFileDirectURL(fileID string) (string, error) {
	if m.FileErr != nil {
		return "", m.FileErr
	}
	return m.FileURL, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
