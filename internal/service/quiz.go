package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const defaultQuestions = 20

type QuizS struct {
	mu  sync.Mutex
	rnd *rand.Rand

	defaultQuestions int
	uniquePrompts    bool
	log              *zap.Logger
}

// NewQuizService builds the quiz generator. A nil rnd is replaced by a
// time-seeded source.
func NewQuizService(cfg config.QuizConfig, rnd *rand.Rand, log *zap.Logger) *QuizS {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := cfg.DefaultQuestions
	if n <= 0 {
		n = defaultQuestions
	}

	return &QuizS{
		rnd:              rnd,
		defaultQuestions: n,
		uniquePrompts:    cfg.UniquePrompts,
		log:              log,
	}
}

// CreateQuiz builds min(numQuestions, len(translations)) questions. Prompt words
// are drawn with replacement unless unique prompts are configured. Fewer than
// four words, or fewer than four distinct translations, give an empty quiz and
// ErrInsufficientVocabulary.
func (q *QuizS) CreateQuiz(translations models.TranslationMap, numQuestions int) ([]models.Question, error) {
	words := translations.Words()
	values := lo.Uniq(lo.Map(words, func(w string, _ int) string { return translations[w] }))

	if len(words) < models.QuizOptions || len(values) < models.QuizOptions {
		q.log.Debug("not enough vocabulary for a quiz",
			zap.Int("words", len(words)), zap.Int("distinct_translations", len(values)))
		return []models.Question{}, models.ErrInsufficientVocabulary
	}

	if numQuestions <= 0 {
		numQuestions = q.defaultQuestions
	}
	count := min(numQuestions, len(words))

	q.mu.Lock()
	defer q.mu.Unlock()

	var prompts []string
	if q.uniquePrompts {
		prompts = lo.Map(q.rnd.Perm(len(words))[:count], func(i, _ int) string { return words[i] })
	} else {
		prompts = make([]string, count)
		for i := range prompts {
			prompts[i] = words[q.rnd.Intn(len(words))]
		}
	}

	questions := make([]models.Question, 0, count)
	for _, word := range prompts {
		correct := translations[word]

		pool := lo.Without(values, correct)
		q.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		options := append(pool[:models.QuizOptions-1:models.QuizOptions-1], correct)
		q.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		questions = append(questions, models.Question{
			Prompt:  fmt.Sprintf("Từ '%s' có nghĩa là gì?", word),
			Word:    word,
			Options: options,
			Correct: correct,
		})
	}

	return questions, nil
}

// Grade checks answers against questions by position. A missing answer counts as wrong.
func (q *QuizS) Grade(questions []models.Question, answers []string) (int, []models.QuizResult) {
	score := 0
	results := make([]models.QuizResult, 0, len(questions))

	for i, question := range questions {
		var answer string
		if i < len(answers) {
			answer = answers[i]
		}

		correct := question.IsCorrect(answer)
		if correct {
			score++
		}
		results = append(results, models.QuizResult{
			Question: question,
			Answer:   answer,
			Correct:  correct,
		})
	}

	return score, results
}
