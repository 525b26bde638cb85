package service

import (
	"context"
	"strings"
	"sync"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TranslationCacheRI interface {
	CachedTranslation(ctx context.Context, source, target, word string) (string, bool, error)
	CacheTranslation(ctx context.Context, source, target, word, translation string) error
}

type noMemo struct{}

func (noMemo) Get(string) (string, bool) { return "", false }
func (noMemo) Add(string, string)        {}

type TranslateS struct {
	api     TranslatorAPII
	store   TranslationCacheRI
	memo    TranslationMemoI
	target  string
	workers int
	log     *zap.Logger
}

func NewTranslateService(api TranslatorAPII, store TranslationCacheRI, memo TranslationMemoI, cfg config.TranslatorConfig, log *zap.Logger) *TranslateS {
	if memo == nil {
		memo = noMemo{}
	}
	target := cfg.Target
	if target == "" {
		target = "vi"
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &TranslateS{
		api:     api,
		store:   store,
		memo:    memo,
		target:  target,
		workers: workers,
		log:     log,
	}
}

func (t *TranslateS) TranslateWords(ctx context.Context, lang models.Language, words []string) models.TranslationMap {
	return t.TranslateWordsProgress(ctx, lang, words, nil)
}

// TranslateWordsProgress translates every word with at most one backend call
// each. A failed word maps to the untranslated sentinel, so the result always
// holds one entry per input word. progress, if set, is called after each word.
func (t *TranslateS) TranslateWordsProgress(ctx context.Context, lang models.Language, words []string, progress func(done, total int)) models.TranslationMap {
	result := make(models.TranslationMap, len(words))
	if len(words) == 0 {
		return result
	}

	source := lang.SourceCode()

	var (
		mu   sync.Mutex
		done int
	)

	g := new(errgroup.Group)
	g.SetLimit(t.workers)

	for _, word := range words {
		word := word
		g.Go(func() error {
			translation := t.translate(ctx, source, word)

			mu.Lock()
			defer mu.Unlock()
			result[word] = translation
			done++
			if progress != nil {
				progress(done, len(words))
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed := result.Failed(); len(failed) > 0 {
		t.log.Warn("some words were not translated",
			zap.String("language", string(lang)), zap.Int("failed", len(failed)), zap.Int("total", len(result)))
	}

	return result
}

func (t *TranslateS) translate(ctx context.Context, source, word string) string {
	key := cache.TranslationKey(source, t.target, word)
	if translation, ok := t.memo.Get(key); ok {
		return translation
	}

	if t.store != nil {
		translation, found, err := t.store.CachedTranslation(ctx, source, t.target, word)
		if err != nil {
			t.log.Warn("translation cache lookup failed", zap.String("word", word), zap.Error(err))
		} else if found {
			t.memo.Add(key, translation)
			return translation
		}
	}

	res, err := t.api.Translate(ctx, word, source, t.target)
	if err != nil {
		t.log.Warn("failed to translate word", zap.String("word", word), zap.String("source", source), zap.Error(err))
		return models.Untranslated(word)
	}

	translation := strings.TrimSpace(res.Text)
	if translation == "" {
		t.log.Warn("empty translation", zap.String("word", word), zap.String("source", source))
		return models.Untranslated(word)
	}

	t.memo.Add(key, translation)
	if t.store != nil {
		if err := t.store.CacheTranslation(ctx, source, t.target, word, translation); err != nil {
			t.log.Warn("failed to cache translation", zap.String("word", word), zap.Error(err))
		}
	}

	return translation
}
