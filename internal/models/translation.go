package models

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strings"
)

// UntranslatedPrefix starts every sentinel translation.
const UntranslatedPrefix = "Chưa dịch được: "

// TranslationMap is the transient word -> translation working set.
type TranslationMap map[string]string

func Untranslated(word string) string {
	return UntranslatedPrefix + word
}

func IsUntranslated(translation string) bool {
	return strings.HasPrefix(translation, UntranslatedPrefix)
}

// Words returns the keys in sorted order.
func (m TranslationMap) Words() []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Failed returns the words whose translation is a sentinel.
func (m TranslationMap) Failed() []string {
	var failed []string
	for _, w := range m.Words() {
		if IsUntranslated(m[w]) {
			failed = append(failed, w)
		}
	}
	return failed
}

// CSV renders the set as a UTF-8 CSV sorted by word. The leading BOM makes
// spreadsheet apps pick the right encoding.
func (m TranslationMap) CSV() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\ufeff")

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Từ", "Nghĩa"}); err != nil {
		return nil, err
	}
	for _, word := range m.Words() {
		if err := w.Write([]string{word, m[word]}); err != nil {
			return nil, err
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}

func FromRecords(records []WordRecord) TranslationMap {
	m := make(TranslationMap, len(records))
	for _, r := range records {
		m[r.Word] = r.Translation
	}
	return m
}

// TranslationResult is what a translation backend returns for one word.
type TranslationResult struct {
	Text   string
	Source string
	Target string
	Match  float64
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText   string  `json:"translatedText"`
		Match            float64 `json:"match"`
		ResponseStatus   int     `json:"responseStatus"`
		ResponseDetails  string  `json:"responseDetails"`
		ExceptionMessage string  `json:"exceptionMessage"`
	} `json:"responseData"`

	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}
