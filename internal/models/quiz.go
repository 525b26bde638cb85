package models

import "time"

const (
	SessionQuiz      = "quiz"
	SessionFlashcard = "flashcard"

	// QuizOptions is the number of options shown for every question.
	QuizOptions = 4
)

type StudySession struct {
	ID             int64     `db:"id" json:"id"`
	Language       Language  `db:"language" json:"language"`
	SessionType    string    `db:"session_type" json:"session_type"`
	Score          int       `db:"score" json:"score"`
	TotalQuestions int       `db:"total_questions" json:"total_questions"`
	SessionDate    time.Time `db:"session_date" json:"session_date"`
}

type Question struct {
	Prompt  string   `json:"question"`
	Word    string   `json:"word"`
	Options []string `json:"options"`
	Correct string   `json:"correct_answer"`
}

func (q Question) IsCorrect(answer string) bool {
	return answer == q.Correct
}

// OptionIndex returns the position of the correct answer among the options.
func (q Question) OptionIndex() int {
	for i, o := range q.Options {
		if o == q.Correct {
			return i
		}
	}
	return -1
}

type QuizResult struct {
	Question Question `json:"question"`
	Answer   string   `json:"answer"`
	Correct  bool     `json:"correct"`
}
