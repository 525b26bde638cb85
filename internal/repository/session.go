package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/vocadeck/internal/models"
	sq "github.com/Masterminds/squirrel"
)

type SessionR struct {
	db QueryI
}

func NewSessionRepository(db QueryI) *SessionR {
	return &SessionR{
		db: db,
	}
}

func (s *SessionR) AddSession(ctx context.Context, session models.StudySession) error {
	query := `
        INSERT INTO study_sessions (language, session_type, score, total_questions, session_date)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := s.db.ExecContext(ctx, s.db.Rebind(query),
		string(session.Language), session.SessionType, session.Score, session.TotalQuestions, session.SessionDate.UTC())
	if err != nil {
		return fmt.Errorf("failed to add study session: %w", err)
	}

	return nil
}

// Sessions returns the latest sessions of lang, newest first. limit <= 0 means all.
func (s *SessionR) Sessions(ctx context.Context, lang models.Language, limit int) ([]models.StudySession, error) {
	builder := sq.Select("id", "language", "session_type", "score", "total_questions", "session_date").
		From("study_sessions").
		Where(sq.Eq{"language": string(lang)}).
		OrderBy("session_date DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sessions query: %w", err)
	}

	sessions := make([]models.StudySession, 0)
	if err := s.db.SelectContext(ctx, &sessions, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load study sessions: %w", err)
	}

	return sessions, nil
}
