package service

import (
	"context"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type StatsS struct {
	history HistoryRI
	log     *zap.Logger
}

func NewStatsService(history HistoryRI, log *zap.Logger) *StatsS {
	return &StatsS{history: history, log: log}
}

// WeakWords returns the reviewed words answered correctly less than half the
// time, most recently reviewed first.
func (s *StatsS) WeakWords(ctx context.Context, lang models.Language) ([]models.WordRecord, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}

	records, err := s.history.History(ctx, lang)
	if err != nil {
		s.log.Error("failed to load history", zap.String("language", string(lang)), zap.Error(err))
		return nil, err
	}

	return lo.Filter(records, func(r models.WordRecord, _ int) bool { return r.IsWeak() }), nil
}

// AccuracyPercent is the share of correct answers over all reviews, 0 when
// nothing was reviewed.
func (s *StatsS) AccuracyPercent(stats models.Stats) float64 {
	total := stats.Reviews()
	if total <= 0 {
		return 0
	}
	return lo.Clamp(float64(stats.TotalCorrect)*100/float64(total), 0, 100)
}

// ReviewSet turns stored records into a working set for flashcards or a quiz.
func (s *StatsS) ReviewSet(records []models.WordRecord) models.TranslationMap {
	return models.FromRecords(records)
}

func (s *StatsS) Summary(ctx context.Context, lang models.Language) (models.Summary, error) {
	if err := checkLanguage(lang); err != nil {
		return models.Summary{}, err
	}

	stats, err := s.history.Stats(ctx, lang)
	if err != nil {
		return models.Summary{}, err
	}

	weak, err := s.WeakWords(ctx, lang)
	if err != nil {
		return models.Summary{}, err
	}

	return models.Summary{
		Language:  lang,
		Stats:     stats,
		Accuracy:  s.AccuracyPercent(stats),
		WeakWords: len(weak),
	}, nil
}
