package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepository(t *testing.T) Repository {
	t.Helper()

	conn, err := db.InitDB(config.DBConfig{
		Driver: "sqlite3",
		Path:   filepath.Join(t.TempDir(), "history.db"),
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = db.Migrate(context.Background(), conn)
	require.NoError(t, err)

	return NewRepository(conn)
}

func findRecord(t *testing.T, records []models.WordRecord, word string) models.WordRecord {
	t.Helper()

	for _, r := range records {
		if r.Word == word {
			return r
		}
	}
	t.Fatalf("word %q not found", word)
	return models.WordRecord{}
}

func TestSQLite_answerCounts(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	answers := []bool{true, true, false}
	for i, correct := range answers {
		err := repo.UpsertAnswer(ctx, models.Russian, "кот", "con mèo", correct, start.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	records, err := repo.History(ctx, models.Russian)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, 2, got.CorrectCount)
	assert.Equal(t, 1, got.WrongCount)
	assert.InDelta(t, 66.67, got.Accuracy(), 0.01)
	assert.False(t, got.IsWeak())
	require.NotNil(t, got.LastReviewed)
	assert.True(t, got.LastReviewed.Equal(start.Add(2*time.Minute)))
}

func TestSQLite_countsNeverDecrease(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()

	answers := []bool{false, true, false, false, true, true, true, false}
	wantCorrect, wantWrong := 0, 0
	for _, correct := range answers {
		require.NoError(t, repo.UpsertAnswer(ctx, models.Chinese, "学习", "học", correct, time.Now()))
		if correct {
			wantCorrect++
		} else {
			wantWrong++
		}

		records, err := repo.History(ctx, models.Chinese)
		require.NoError(t, err)
		got := findRecord(t, records, "学习")
		assert.Equal(t, wantCorrect, got.CorrectCount)
		assert.Equal(t, wantWrong, got.WrongCount)
	}
}

func TestSQLite_translationSetOnInsertOnly(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "мир", "thế giới", true, time.Now()))
	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "мир", "hòa bình", false, time.Now()))

	records, err := repo.History(ctx, models.Russian)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "thế giới", records[0].Translation)
}

func TestSQLite_languagesArePartitioned(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "кот", "con mèo", true, time.Now()))
	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "мир", "thế giới", false, time.Now()))
	require.NoError(t, repo.UpsertAnswer(ctx, models.Chinese, "猫", "con mèo", true, time.Now()))

	ru, err := repo.Stats(ctx, models.Russian)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{TotalWords: 2, TotalCorrect: 1, TotalWrong: 1, MasteredWords: 1}, ru)

	zh, err := repo.Stats(ctx, models.Chinese)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{TotalWords: 1, TotalCorrect: 1, TotalWrong: 0, MasteredWords: 1}, zh)
}

func TestSQLite_historyOrdering(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "кот", "con mèo", true, base))
	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "мир", "thế giới", true, base.Add(time.Hour)))
	require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, "дом", "ngôi nhà", true, base.Add(time.Hour)))

	records, err := repo.History(ctx, models.Russian)
	require.NoError(t, err)

	words := make([]string, 0, len(records))
	for _, r := range records {
		words = append(words, r.Word)
	}
	assert.Equal(t, []string{"дом", "мир", "кот"}, words)
}

func TestSQLite_savedAndRandomWords(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()

	for i, w := range []string{"кот", "мир", "дом", "лес", "сад"} {
		for j := 0; j <= i; j++ {
			require.NoError(t, repo.UpsertAnswer(ctx, models.Russian, w, "t-"+w, true, time.Now()))
		}
	}

	saved, err := repo.SavedWords(ctx, models.Russian, 2)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "сад", saved[0].Word)
	assert.Equal(t, "лес", saved[1].Word)

	all, err := repo.SavedWords(ctx, models.Russian, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	random, err := repo.RandomWords(ctx, models.Russian, 3)
	require.NoError(t, err)
	assert.Len(t, random, 3)

	random, err = repo.RandomWords(ctx, models.Russian, 10)
	require.NoError(t, err)
	assert.Len(t, random, 5)
}

func TestSQLite_sessions(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AddSession(ctx, models.StudySession{
		Language: models.Russian, SessionType: models.SessionQuiz, Score: 3, TotalQuestions: 5, SessionDate: base,
	}))
	require.NoError(t, repo.AddSession(ctx, models.StudySession{
		Language: models.Russian, SessionType: models.SessionQuiz, Score: 5, TotalQuestions: 5, SessionDate: base.Add(time.Hour),
	}))
	require.NoError(t, repo.AddSession(ctx, models.StudySession{
		Language: models.Chinese, SessionType: models.SessionQuiz, Score: 1, TotalQuestions: 4, SessionDate: base,
	}))

	sessions, err := repo.Sessions(ctx, models.Russian, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 5, sessions[0].Score)
	assert.Equal(t, 3, sessions[1].Score)
	assert.Equal(t, models.Russian, sessions[0].Language)

	latest, err := repo.Sessions(ctx, models.Russian, 1)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}

func TestSQLite_translationCache(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)
	ctx := context.Background()

	_, found, err := repo.CachedTranslation(ctx, "ru", "vi", "кот")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.CacheTranslation(ctx, "ru", "vi", "кот", "mèo"))
	require.NoError(t, repo.CacheTranslation(ctx, "ru", "vi", "кот", "con mèo"))

	got, found, err := repo.CachedTranslation(ctx, "ru", "vi", "кот")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "con mèo", got)
}
