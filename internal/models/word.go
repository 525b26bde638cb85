package models

import (
	"time"
)

type WordRecord struct {
	ID           int64      `db:"id" json:"id"`
	Language     Language   `db:"language" json:"language"`
	Word         string     `db:"word" json:"word"`
	Translation  string     `db:"translation" json:"translation"`
	CorrectCount int        `db:"correct_count" json:"correct_count"`
	WrongCount   int        `db:"wrong_count" json:"wrong_count"`
	LastReviewed *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (w WordRecord) Reviews() int {
	return w.CorrectCount + w.WrongCount
}

// Accuracy is the share of correct answers in percent, 0 for a word never reviewed.
func (w WordRecord) Accuracy() float64 {
	total := w.Reviews()
	if total <= 0 {
		return 0
	}
	return float64(w.CorrectCount) * 100 / float64(total)
}

// IsWeak reports a reviewed word answered correctly less than half the time.
func (w WordRecord) IsWeak() bool {
	return w.Reviews() > 0 && w.Accuracy() < 50
}

func (w WordRecord) IsMastered() bool {
	return w.CorrectCount > w.WrongCount
}

type Stats struct {
	TotalWords    int `db:"total_words" json:"total_words"`
	TotalCorrect  int `db:"total_correct" json:"total_correct"`
	TotalWrong    int `db:"total_wrong" json:"total_wrong"`
	MasteredWords int `db:"mastered_words" json:"mastered_words"`
}

func (s Stats) Reviews() int {
	return s.TotalCorrect + s.TotalWrong
}

// Summary is what the stats screens show for one language.
type Summary struct {
	Language  Language `json:"language"`
	Stats     Stats    `json:"stats"`
	Accuracy  float64  `json:"accuracy"`
	WeakWords int      `json:"weak_words"`
}
