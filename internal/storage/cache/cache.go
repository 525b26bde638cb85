package cache

import (
	"sync"

	"github.com/DanRulev/vocadeck/internal/models"
)

// QuizState is a quiz in progress: one question is shown at a time and the
// answers are buffered until the last one.
type QuizState struct {
	Language  models.Language
	Questions []models.Question
	Answers   []string
	Current   int
}

func (q QuizState) Done() bool {
	return q.Current >= len(q.Questions)
}

// DeckState is the position of a flashcard run over a working set.
type DeckState struct {
	Language     models.Language
	Words        []string
	Translations models.TranslationMap
	Index        int
	Shown        bool
	Known        int
}

func (d DeckState) Word() string {
	if d.Index < 0 || d.Index >= len(d.Words) {
		return ""
	}
	return d.Words[d.Index]
}

// Cache holds per-chat orchestrator state. None of it is persisted.
type Cache struct {
	mu        sync.Mutex
	languages map[int64]models.Language
	sets      map[int64]map[models.Language]models.TranslationMap
	quiz      map[int64]QuizState
	decks     map[int64]DeckState
}

func NewCache() *Cache {
	return &Cache{
		languages: make(map[int64]models.Language),
		sets:      make(map[int64]map[models.Language]models.TranslationMap),
		quiz:      make(map[int64]QuizState),
		decks:     make(map[int64]DeckState),
	}
}

func (c *Cache) SetLanguage(chatID int64, lang models.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.languages[chatID] = lang
}

// Language returns the chat's study language, Russian until one is chosen.
func (c *Cache) Language(chatID int64) models.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	lang, exists := c.languages[chatID]
	if !exists {
		return models.Russian
	}
	return lang
}

func (c *Cache) SetWorkingSet(chatID int64, lang models.Language, set models.TranslationMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sets[chatID] == nil {
		c.sets[chatID] = make(map[models.Language]models.TranslationMap)
	}
	c.sets[chatID][lang] = set
}

func (c *Cache) WorkingSet(chatID int64, lang models.Language) (models.TranslationMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, exists := c.sets[chatID][lang]
	return set, exists && len(set) > 0
}

func (c *Cache) SetQuiz(chatID int64, quiz QuizState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz[chatID] = quiz
}

func (c *Cache) GetQuiz(chatID int64) (QuizState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	quiz, exists := c.quiz[chatID]
	return quiz, exists
}

func (c *Cache) DeleteQuiz(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quiz, chatID)
}

func (c *Cache) SetDeck(chatID int64, deck DeckState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decks[chatID] = deck
}

func (c *Cache) GetDeck(chatID int64) (DeckState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deck, exists := c.decks[chatID]
	return deck, exists
}

func (c *Cache) DeleteDeck(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.decks, chatID)
}
