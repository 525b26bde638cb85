package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type TranslationCacheR struct {
	db QueryI
}

func NewTranslationCacheRepository(db QueryI) *TranslationCacheR {
	return &TranslationCacheR{db: db}
}

// CachedTranslation reports the stored translation of word, if any.
func (t *TranslationCacheR) CachedTranslation(ctx context.Context, source, target, word string) (string, bool, error) {
	query := `SELECT translation FROM translation_cache
		WHERE source_lang = ? AND target_lang = ? AND word = ?`

	var translation string
	err := t.db.GetContext(ctx, &translation, t.db.Rebind(query), source, target, word)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("database error: %w", err)
	}

	return translation, true, nil
}

func (t *TranslationCacheR) CacheTranslation(ctx context.Context, source, target, word, translation string) error {
	query := `INSERT INTO translation_cache (source_lang, target_lang, word, translation)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source_lang, target_lang, word)
		DO UPDATE SET translation = excluded.translation`

	_, err := t.db.ExecContext(ctx, t.db.Rebind(query), source, target, word, translation)
	if err != nil {
		return fmt.Errorf("failed to cache translation of %q: %w", word, err)
	}

	return nil
}
