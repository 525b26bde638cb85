package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Translations keeps recent backend translations in memory. A zero size
// disables it: every lookup misses and nothing is stored.
type Translations struct {
	lru *lru.Cache[string, string]
}

func NewTranslations(size int) *Translations {
	if size <= 0 {
		return &Translations{}
	}

	c, err := lru.New[string, string](size)
	if err != nil {
		return &Translations{}
	}
	return &Translations{lru: c}
}

func TranslationKey(source, target, word string) string {
	return source + "|" + target + "|" + word
}

func (t *Translations) Get(key string) (string, bool) {
	if t.lru == nil {
		return "", false
	}
	return t.lru.Get(key)
}

func (t *Translations) Add(key, translation string) {
	if t.lru == nil {
		return
	}
	t.lru.Add(key, translation)
}

func (t *Translations) Len() int {
	if t.lru == nil {
		return 0
	}
	return t.lru.Len()
}
