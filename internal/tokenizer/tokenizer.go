// Package tokenizer extracts candidate vocabulary words from raw text.
//
// The result is a set: every word appears once, in order of first occurrence.
// Order is kept only so repeated runs on the same text give the same sequence;
// callers must not attach meaning to it.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/go-ego/gse"
	"go.uber.org/zap"
)

var cyrillicWord = regexp.MustCompile(`[а-яА-ЯёЁ]{3,}`)

var (
	russianStopwords = []string{"и", "в", "на", "с", "по", "у", "о", "к", "но", "а", "из", "от", "до", "для"}
	chineseStopwords = []string{"的", "是", "在", "我", "有", "他", "这", "了", "你", "不", "和", "我们"}
)

// Segmenter splits Chinese text into word-like units.
type Segmenter interface {
	Cut(text string) []string
}

// SegmenterLoader builds the Chinese segmenter on first use.
type SegmenterLoader func() (Segmenter, error)

type Tokenizer struct {
	load SegmenterLoader
	log  *zap.Logger

	once    sync.Once
	seg     Segmenter
	loadErr error

	russianStop map[string]struct{}
	chineseStop map[string]struct{}
}

func New(load SegmenterLoader, log *zap.Logger) *Tokenizer {
	t := &Tokenizer{
		load:        load,
		log:         log,
		russianStop: make(map[string]struct{}, len(russianStopwords)),
		chineseStop: make(map[string]struct{}, len(chineseStopwords)),
	}
	for _, w := range russianStopwords {
		t.russianStop[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range chineseStopwords {
		t.chineseStop[w] = struct{}{}
	}
	return t
}

// Stopwords returns a copy of the stopword list for lang.
func Stopwords(lang models.Language) []string {
	switch lang {
	case models.Russian:
		return append([]string(nil), russianStopwords...)
	case models.Chinese:
		return append([]string(nil), chineseStopwords...)
	}
	return nil
}

// ExtractWords returns the unique candidate words of text. An unsupported
// language yields an empty result, not an error.
func (t *Tokenizer) ExtractWords(lang models.Language, text string) ([]string, error) {
	switch lang {
	case models.Russian:
		return t.russian(text), nil
	case models.Chinese:
		return t.chinese(text)
	default:
		return []string{}, nil
	}
}

func (t *Tokenizer) russian(text string) []string {
	set := newOrderedSet()
	for _, w := range cyrillicWord.FindAllString(text, -1) {
		if _, stop := t.russianStop[strings.ToLower(w)]; stop {
			continue
		}
		set.add(w)
	}
	return set.items
}

func (t *Tokenizer) chinese(text string) ([]string, error) {
	seg, err := t.segmenter()
	if err != nil {
		return nil, err
	}

	set := newOrderedSet()
	for _, w := range seg.Cut(text) {
		if !isIdeographic(w) {
			continue
		}
		if _, stop := t.chineseStop[w]; stop {
			continue
		}
		set.add(w)
	}
	return set.items, nil
}

func (t *Tokenizer) segmenter() (Segmenter, error) {
	t.once.Do(func() {
		if t.load == nil {
			t.loadErr = fmt.Errorf("%w: no chinese segmenter configured", models.ErrDependencyUnavailable)
			return
		}
		seg, err := t.load()
		if err != nil {
			t.log.Error("failed to load chinese segmenter", zap.Error(err))
			t.loadErr = fmt.Errorf("%w: chinese segmenter: %v", models.ErrDependencyUnavailable, err)
			return
		}
		t.seg = seg
	})
	return t.seg, t.loadErr
}

// isIdeographic reports whether s is non-empty and made only of CJK unified ideographs.
func isIdeographic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x4E00 || r > 0x9FFF {
			return false
		}
	}
	return true
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(w string) {
	if _, ok := s.seen[w]; ok {
		return
	}
	s.seen[w] = struct{}{}
	s.items = append(s.items, w)
}

type gseSegmenter struct {
	seg *gse.Segmenter
}

func (g *gseSegmenter) Cut(text string) []string {
	return g.seg.Cut(text, true)
}

// GseLoader loads the gse dictionary: the given dictionary file, or the
// embedded simplified Chinese dictionary when dictPath is empty.
func GseLoader(dictPath string) SegmenterLoader {
	return func() (Segmenter, error) {
		seg := new(gse.Segmenter)
		var err error
		if dictPath != "" {
			err = seg.LoadDict(dictPath)
		} else {
			err = seg.LoadDictEmbed()
		}
		if err != nil {
			return nil, err
		}
		return &gseSegmenter{seg: seg}, nil
	}
}
