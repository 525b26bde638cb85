package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DanRulev/vocadeck/internal/models"
	"go.uber.org/zap"
)

type HistoryRI interface {
	UpsertAnswer(ctx context.Context, lang models.Language, word, translation string, correct bool, at time.Time) error
	Stats(ctx context.Context, lang models.Language) (models.Stats, error)
	History(ctx context.Context, lang models.Language) ([]models.WordRecord, error)
	SavedWords(ctx context.Context, lang models.Language, limit int) ([]models.WordRecord, error)
	RandomWords(ctx context.Context, lang models.Language, n int) ([]models.WordRecord, error)
}

type SessionRI interface {
	AddSession(ctx context.Context, session models.StudySession) error
	Sessions(ctx context.Context, lang models.Language, limit int) ([]models.StudySession, error)
}

// MasteryS is the only writer of learning progress. Every mutation goes
// through mu so one process never interleaves two writes.
type MasteryS struct {
	mu       sync.Mutex
	history  HistoryRI
	sessions SessionRI
	now      func() time.Time
	log      *zap.Logger
}

func NewMasteryService(history HistoryRI, sessions SessionRI, log *zap.Logger) *MasteryS {
	return &MasteryS{
		history:  history,
		sessions: sessions,
		now:      time.Now,
		log:      log,
	}
}

func checkLanguage(lang models.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	return nil
}

func (m *MasteryS) RecordAnswer(ctx context.Context, lang models.Language, word, translation string, correct bool) error {
	if err := checkLanguage(lang); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.history.UpsertAnswer(ctx, lang, word, translation, correct, m.now()); err != nil {
		m.log.Error("failed to record answer", zap.String("language", string(lang)), zap.String("word", word), zap.Error(err))
		return err
	}

	return nil
}

func (m *MasteryS) RecordSession(ctx context.Context, lang models.Language, sessionType string, score, total int) error {
	if err := checkLanguage(lang); err != nil {
		return err
	}
	if score < 0 || total < 0 || score > total {
		return fmt.Errorf("%w: score %d of %d", models.ErrInvalidSession, score, total)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.sessions.AddSession(ctx, models.StudySession{
		Language:       lang,
		SessionType:    sessionType,
		Score:          score,
		TotalQuestions: total,
		SessionDate:    m.now(),
	})
	if err != nil {
		m.log.Error("failed to record session", zap.String("language", string(lang)), zap.Error(err))
		return err
	}

	return nil
}

// RecordQuiz writes every graded answer back and appends one quiz session.
// It stops at the first store failure.
func (m *MasteryS) RecordQuiz(ctx context.Context, lang models.Language, results []models.QuizResult) (int, error) {
	score := 0
	for _, r := range results {
		if err := m.RecordAnswer(ctx, lang, r.Question.Word, r.Question.Correct, r.Correct); err != nil {
			return 0, err
		}
		if r.Correct {
			score++
		}
	}

	if err := m.RecordSession(ctx, lang, models.SessionQuiz, score, len(results)); err != nil {
		return 0, err
	}

	return score, nil
}

func (m *MasteryS) Stats(ctx context.Context, lang models.Language) (models.Stats, error) {
	if err := checkLanguage(lang); err != nil {
		return models.Stats{}, err
	}
	return m.history.Stats(ctx, lang)
}

func (m *MasteryS) History(ctx context.Context, lang models.Language) ([]models.WordRecord, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	return m.history.History(ctx, lang)
}

func (m *MasteryS) SavedWords(ctx context.Context, lang models.Language, limit int) ([]models.WordRecord, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	return m.history.SavedWords(ctx, lang, limit)
}

func (m *MasteryS) RandomWords(ctx context.Context, lang models.Language, n int) ([]models.WordRecord, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	return m.history.RandomWords(ctx, lang, n)
}

func (m *MasteryS) Sessions(ctx context.Context, lang models.Language, limit int) ([]models.StudySession, error) {
	if err := checkLanguage(lang); err != nil {
		return nil, err
	}
	return m.sessions.Sessions(ctx, lang, limit)
}
