package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuiz(seed int64, unique bool) *QuizS {
	return NewQuizService(config.QuizConfig{DefaultQuestions: 20, UniquePrompts: unique}, rand.New(rand.NewSource(seed)), zap.NewNop())
}

func vocabulary(n int) models.TranslationMap {
	m := make(models.TranslationMap, n)
	for i := 0; i < n; i++ {
		m[fmt.Sprintf("слово%02d", i)] = fmt.Sprintf("từ %02d", i)
	}
	return m
}

func TestQuizS_CreateQuiz_insufficient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    models.TranslationMap
	}{
		{name: "empty", m: models.TranslationMap{}},
		{name: "three words", m: models.TranslationMap{"привет": "xin chào", "мир": "thế giới", "кот": "con mèo"}},
		{
			name: "four words with three distinct translations",
			m:    models.TranslationMap{"кот": "con mèo", "кошка": "con mèo", "мир": "thế giới", "дом": "ngôi nhà"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newQuiz(1, false).CreateQuiz(tt.m, 10)
			require.ErrorIs(t, err, models.ErrInsufficientVocabulary)
			assert.Empty(t, got)
		})
	}
}

func TestQuizS_CreateQuiz_size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words int
		n     int
		want  int
	}{
		{name: "fewer questions than words", words: 10, n: 3, want: 3},
		{name: "more questions than words", words: 5, n: 12, want: 5},
		{name: "exactly four words", words: 4, n: 4, want: 4},
		{name: "default count", words: 30, n: 0, want: 20},
		{name: "default capped by vocabulary", words: 6, n: -1, want: 6},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, unique := range []bool{false, true} {
				got, err := newQuiz(42, unique).CreateQuiz(vocabulary(tt.words), tt.n)
				require.NoError(t, err)
				assert.Len(t, got, tt.want)
			}
		})
	}
}

func TestQuizS_CreateQuiz_options(t *testing.T) {
	t.Parallel()

	vocab := vocabulary(7)
	values := lo.Values(vocab)

	for seed := int64(0); seed < 50; seed++ {
		questions, err := newQuiz(seed, false).CreateQuiz(vocab, 7)
		require.NoError(t, err)

		for _, q := range questions {
			require.Len(t, q.Options, models.QuizOptions)
			assert.Len(t, lo.Uniq(q.Options), models.QuizOptions, "options are distinct")
			assert.Contains(t, q.Options, q.Correct)
			assert.Equal(t, vocab[q.Word], q.Correct)
			assert.Subset(t, values, q.Options)
			assert.Equal(t, fmt.Sprintf("Từ '%s' có nghĩa là gì?", q.Word), q.Prompt)
			assert.Equal(t, q.Correct, q.Options[q.OptionIndex()])
		}
	}
}

func TestQuizS_CreateQuiz_duplicateValues(t *testing.T) {
	t.Parallel()

	vocab := models.TranslationMap{
		"кот":   "con mèo",
		"кошка": "con mèo",
		"мир":   "thế giới",
		"дом":   "ngôi nhà",
		"лес":   "rừng",
	}

	for seed := int64(0); seed < 30; seed++ {
		questions, err := newQuiz(seed, false).CreateQuiz(vocab, 5)
		require.NoError(t, err)

		for _, q := range questions {
			assert.Len(t, lo.Uniq(q.Options), models.QuizOptions)
			assert.Equal(t, 1, lo.Count(q.Options, q.Correct))
		}
	}
}

func TestQuizS_CreateQuiz_uniquePrompts(t *testing.T) {
	t.Parallel()

	vocab := vocabulary(8)

	for seed := int64(0); seed < 20; seed++ {
		questions, err := newQuiz(seed, true).CreateQuiz(vocab, 8)
		require.NoError(t, err)

		words := lo.Map(questions, func(q models.Question, _ int) string { return q.Word })
		assert.ElementsMatch(t, vocab.Words(), words)
	}
}

func TestQuizS_CreateQuiz_seeded(t *testing.T) {
	t.Parallel()

	vocab := vocabulary(10)

	first, err := newQuiz(7, false).CreateQuiz(vocab, 10)
	require.NoError(t, err)
	second, err := newQuiz(7, false).CreateQuiz(vocab, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuizS_Grade(t *testing.T) {
	t.Parallel()

	questions := []models.Question{
		{Word: "кот", Options: []string{"a", "b", "c", "con mèo"}, Correct: "con mèo"},
		{Word: "мир", Options: []string{"thế giới", "b", "c", "d"}, Correct: "thế giới"},
		{Word: "дом", Options: []string{"a", "ngôi nhà", "c", "d"}, Correct: "ngôi nhà"},
	}

	score, results := newQuiz(1, false).Grade(questions, []string{"con mèo", "b"})

	assert.Equal(t, 1, score)
	require.Len(t, results, 3)
	assert.True(t, results[0].Correct)
	assert.False(t, results[1].Correct)
	assert.Equal(t, "b", results[1].Answer)
	assert.False(t, results[2].Correct, "missing answer is wrong")
	assert.Empty(t, results[2].Answer)
}
