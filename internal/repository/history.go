package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/vocadeck/internal/models"
	sq "github.com/Masterminds/squirrel"
)

var historyColumns = []string{
	"id", "language", "word", "translation",
	"correct_count", "wrong_count", "last_reviewed", "created_at",
}

type HistoryR struct {
	db QueryI
}

func NewHistoryRepository(db QueryI) *HistoryR {
	return &HistoryR{db: db}
}

// UpsertAnswer records one answer for (language, word) in a single statement.
// A new row takes the given translation; an existing row keeps its own and only
// the matching counter and last_reviewed change.
func (h *HistoryR) UpsertAnswer(ctx context.Context, lang models.Language, word, translation string, correct bool, at time.Time) error {
	query := `INSERT INTO learning_history (language, word, translation, correct_count, wrong_count, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (language, word)
		DO UPDATE SET
			correct_count = learning_history.correct_count + excluded.correct_count,
			wrong_count = learning_history.wrong_count + excluded.wrong_count,
			last_reviewed = excluded.last_reviewed
		`

	correctInc, wrongInc := 0, 1
	if correct {
		correctInc, wrongInc = 1, 0
	}

	_, err := h.db.ExecContext(ctx, h.db.Rebind(query),
		string(lang), word, translation, correctInc, wrongInc, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to record answer for %q: %w", word, err)
	}

	return nil
}

func (h *HistoryR) Stats(ctx context.Context, lang models.Language) (models.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_words,
			COALESCE(SUM(correct_count), 0) AS total_correct,
			COALESCE(SUM(wrong_count), 0) AS total_wrong,
			COALESCE(SUM(CASE WHEN correct_count > wrong_count THEN 1 ELSE 0 END), 0) AS mastered_words
		FROM learning_history
		WHERE language = ?
	`

	var stats models.Stats
	err := h.db.GetContext(ctx, &stats, h.db.Rebind(query), string(lang))
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to get stats for %s: %w", lang, err)
	}

	return stats, nil
}

// History returns every record of lang, most recently reviewed first. Records
// never reviewed come last; ties are broken by word.
func (h *HistoryR) History(ctx context.Context, lang models.Language) ([]models.WordRecord, error) {
	builder := sq.Select(historyColumns...).
		From("learning_history").
		Where(sq.Eq{"language": string(lang)}).
		OrderBy("last_reviewed IS NULL", "last_reviewed DESC", "word ASC")

	return h.selectRecords(ctx, builder)
}

// SavedWords returns up to limit records, best known first. limit <= 0 means all.
func (h *HistoryR) SavedWords(ctx context.Context, lang models.Language, limit int) ([]models.WordRecord, error) {
	builder := sq.Select(historyColumns...).
		From("learning_history").
		Where(sq.Eq{"language": string(lang)}).
		OrderBy("correct_count DESC", "last_reviewed IS NULL", "last_reviewed DESC", "word ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return h.selectRecords(ctx, builder)
}

// RandomWords returns up to n records of lang in random order.
func (h *HistoryR) RandomWords(ctx context.Context, lang models.Language, n int) ([]models.WordRecord, error) {
	if n <= 0 {
		return []models.WordRecord{}, nil
	}

	builder := sq.Select(historyColumns...).
		From("learning_history").
		Where(sq.Eq{"language": string(lang)}).
		OrderBy("RANDOM()").
		Limit(uint64(n))

	return h.selectRecords(ctx, builder)
}

func (h *HistoryR) selectRecords(ctx context.Context, builder sq.SelectBuilder) ([]models.WordRecord, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	records := make([]models.WordRecord, 0)
	err = h.db.SelectContext(ctx, &records, h.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return records, nil
}
