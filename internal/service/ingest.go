package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/vocadeck/internal/extract"
	"github.com/DanRulev/vocadeck/internal/models"
	"go.uber.org/zap"
)

type WordTranslatorI interface {
	TranslateWordsProgress(ctx context.Context, lang models.Language, words []string, progress func(done, total int)) models.TranslationMap
}

type IngestS struct {
	tokenizer  TokenizerI
	translator WordTranslatorI
	extract    func(extract.Document) (string, error)
	log        *zap.Logger
}

func NewIngestService(tokenizer TokenizerI, translator WordTranslatorI, log *zap.Logger) *IngestS {
	return &IngestS{
		tokenizer:  tokenizer,
		translator: translator,
		extract:    extract.Text,
		log:        log,
	}
}

// Ingest turns an uploaded document into a translated working set.
func (i *IngestS) Ingest(ctx context.Context, lang models.Language, doc extract.Document, progress func(done, total int)) (models.TranslationMap, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}

	text, err := i.extract(doc)
	if err != nil {
		i.log.Warn("failed to extract document", zap.String("name", doc.Name), zap.Error(err))
		return nil, err
	}

	words, err := i.tokenizer.ExtractWords(lang, text)
	if err != nil {
		i.log.Error("failed to extract words", zap.String("language", string(lang)), zap.Error(err))
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w in %s", models.ErrNoWords, doc.Name)
	}

	i.log.Info("translating document words",
		zap.String("name", doc.Name), zap.String("language", string(lang)), zap.Int("words", len(words)))

	return i.translator.TranslateWordsProgress(ctx, lang, words, progress), nil
}
