package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"go.uber.org/zap"
)

type TranslatorAPII interface {
	Translate(ctx context.Context, word, source, target string) (models.TranslationResult, error)
}

type SpeechAPII interface {
	SynthesizeSpeech(ctx context.Context, word, langCode string) ([]byte, error)
}

type TokenizerI interface {
	ExtractWords(lang models.Language, text string) ([]string, error)
}

type TranslationMemoI interface {
	Get(key string) (string, bool)
	Add(key, translation string)
}

type RepositoryI interface {
	HistoryRI
	SessionRI
	TranslationCacheRI
}

type Service struct {
	*TranslateS
	*QuizS
	*MasteryS
	*StatsS
	*IngestS
	*SpeechS
}

type Deps struct {
	Translator TranslatorAPII
	Speech     SpeechAPII
	Tokenizer  TokenizerI
	Memo       TranslationMemoI
	Repo       RepositoryI
}

func InitServices(deps Deps, cfg *config.Config, log *zap.Logger) *Service {
	translate := NewTranslateService(deps.Translator, deps.Repo, deps.Memo, cfg.Translator, log)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &Service{
		TranslateS: translate,
		QuizS:      NewQuizService(cfg.Quiz, rnd, log),
		MasteryS:   NewMasteryService(deps.Repo, deps.Repo, log),
		StatsS:     NewStatsService(deps.Repo, log),
		IngestS:    NewIngestService(deps.Tokenizer, translate, log),
		SpeechS:    NewSpeechService(deps.Speech, log),
	}
}
