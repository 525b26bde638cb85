package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordRecord_Accuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		correct  int
		wrong    int
		accuracy float64
		weak     bool
		mastered bool
	}{
		{name: "never reviewed", accuracy: 0, weak: false, mastered: false},
		{name: "two of three", correct: 2, wrong: 1, accuracy: 66.67, weak: false, mastered: true},
		{name: "half is not weak", correct: 1, wrong: 1, accuracy: 50, weak: false, mastered: false},
		{name: "only wrong", wrong: 3, accuracy: 0, weak: true, mastered: false},
		{name: "one of four", correct: 1, wrong: 3, accuracy: 25, weak: true, mastered: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := WordRecord{CorrectCount: tt.correct, WrongCount: tt.wrong}
			assert.InDelta(t, tt.accuracy, w.Accuracy(), 0.01)
			assert.GreaterOrEqual(t, w.Accuracy(), 0.0)
			assert.LessOrEqual(t, w.Accuracy(), 100.0)
			assert.Equal(t, tt.weak, w.IsWeak())
			assert.Equal(t, tt.mastered, w.IsMastered())
		})
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	lang, err := ParseLanguage(" Russian ")
	assert.NoError(t, err)
	assert.Equal(t, Russian, lang)
	assert.Equal(t, "ru", lang.SourceCode())
	assert.Equal(t, "ru-RU", lang.SpeechCode())

	lang, err = ParseLanguage("chinese")
	assert.NoError(t, err)
	assert.Equal(t, "zh", lang.SourceCode())
	assert.Equal(t, "cmn-CN", lang.SpeechCode())

	_, err = ParseLanguage("english")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.False(t, Language("english").Valid())
}

func TestQuestion_OptionIndex(t *testing.T) {
	t.Parallel()

	q := Question{Options: []string{"a", "b", "c", "d"}, Correct: "c"}
	assert.Equal(t, 2, q.OptionIndex())
	assert.True(t, q.IsCorrect("c"))
	assert.False(t, q.IsCorrect("a"))

	q.Correct = "z"
	assert.Equal(t, -1, q.OptionIndex())
}
