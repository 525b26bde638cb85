package repository

import (
	"context"
	"database/sql"
)

// QueryI is the subset of *sqlx.DB the repositories use. Queries are written
// with ? placeholders and passed through Rebind for the active driver.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*HistoryR
	*SessionR
	*TranslationCacheR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		HistoryR:          NewHistoryRepository(db),
		SessionR:          NewSessionRepository(db),
		TranslationCacheR: NewTranslationCacheRepository(db),
	}
}
