package main

import (
	"bytes"
	"testing"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := printSummary(&out, models.Summary{
		Language: models.Russian,
		Stats:    models.Stats{TotalWords: 2, TotalCorrect: 2, TotalWrong: 3, MasteredWords: 1},
		Accuracy: 40,
	}, []models.WordRecord{
		{Word: "мир", Translation: "thế giới", WrongCount: 2},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "russian\n")
	assert.Contains(t, text, "accuracy")
	assert.Contains(t, text, "40.0%")
	assert.Contains(t, text, "weak words")
	assert.Contains(t, text, "мир")
}

func TestRootCommands(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"bot", "serve", "migrate", "ingest", "stats"})
}
