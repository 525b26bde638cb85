package service

import (
	"context"

	"github.com/DanRulev/vocadeck/internal/models"
	"go.uber.org/zap"
)

type SpeechS struct {
	api SpeechAPII
	log *zap.Logger
}

func NewSpeechService(api SpeechAPII, log *zap.Logger) *SpeechS {
	return &SpeechS{api: api, log: log}
}

// Speak returns MP3 audio of word pronounced in lang.
func (s *SpeechS) Speak(ctx context.Context, lang models.Language, word string) ([]byte, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}

	audio, err := s.api.SynthesizeSpeech(ctx, word, lang.SpeechCode())
	if err != nil {
		s.log.Warn("speech synthesis failed", zap.String("word", word), zap.Error(err))
		return nil, err
	}

	return audio, nil
}
