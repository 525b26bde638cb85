package client

import (
	"context"
	"errors"
	"io"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
)

type TranslatorAPI interface {
	Translate(ctx context.Context, word, source, target string) (models.TranslationResult, error)
}

type SpeechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, word, langCode string) ([]byte, error)
}

type Clients struct {
	Translator TranslatorAPI
	Speech     SpeechSynthesizer

	closers []io.Closer
}

// InitClients picks the translation backend configured by translator.provider
// and connects the speech backend when it is enabled.
func InitClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	clients := &Clients{Speech: NoSpeech{}}

	switch cfg.Translator.Provider {
	case "gemini":
		gemini, err := NewGeminiAPI(ctx, cfg.Translator)
		if err != nil {
			return nil, err
		}
		clients.Translator = gemini
		clients.closers = append(clients.closers, gemini)
	default:
		clients.Translator = NewMyMemoryAPI(cfg.Translator)
	}

	if cfg.Speech.Enabled {
		speech, err := NewSpeechAPI(ctx, cfg.Speech)
		if err != nil {
			clients.Close()
			return nil, err
		}
		clients.Speech = speech
		clients.closers = append(clients.closers, speech)
	}

	return clients, nil
}

func (c *Clients) Close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}
