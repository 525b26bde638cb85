package cache

import (
	"testing"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCache_language(t *testing.T) {
	t.Parallel()

	c := NewCache()
	assert.Equal(t, models.Russian, c.Language(1))

	c.SetLanguage(1, models.Chinese)
	assert.Equal(t, models.Chinese, c.Language(1))
	assert.Equal(t, models.Russian, c.Language(2))
}

func TestCache_workingSetPerLanguage(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetWorkingSet(1, models.Russian, models.TranslationMap{"кот": "con mèo"})

	got, ok := c.WorkingSet(1, models.Russian)
	assert.True(t, ok)
	assert.Equal(t, "con mèo", got["кот"])

	_, ok = c.WorkingSet(1, models.Chinese)
	assert.False(t, ok)

	c.SetWorkingSet(1, models.Chinese, models.TranslationMap{})
	_, ok = c.WorkingSet(1, models.Chinese)
	assert.False(t, ok, "empty set counts as missing")
}

func TestCache_quiz(t *testing.T) {
	t.Parallel()

	c := NewCache()
	_, ok := c.GetQuiz(1)
	assert.False(t, ok)

	state := QuizState{Language: models.Russian, Questions: make([]models.Question, 2)}
	c.SetQuiz(1, state)

	got, ok := c.GetQuiz(1)
	assert.True(t, ok)
	assert.False(t, got.Done())

	got.Current = 2
	assert.True(t, got.Done())

	c.DeleteQuiz(1)
	_, ok = c.GetQuiz(1)
	assert.False(t, ok)
}

func TestCache_deck(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetDeck(1, DeckState{Words: []string{"кот", "мир"}, Index: 1})

	got, ok := c.GetDeck(1)
	assert.True(t, ok)
	assert.Equal(t, "мир", got.Word())

	got.Index = 5
	assert.Empty(t, got.Word())

	c.DeleteDeck(1)
	_, ok = c.GetDeck(1)
	assert.False(t, ok)
}
