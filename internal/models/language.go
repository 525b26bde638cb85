package models

import (
	"fmt"
	"strings"
)

type Language string

const (
	Russian Language = "russian"
	Chinese Language = "chinese"
)

var Languages = []Language{Russian, Chinese}

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Russian:
		return Russian, nil
	case Chinese:
		return Chinese, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

func (l Language) Valid() bool {
	return l == Russian || l == Chinese
}

// SourceCode is the language code sent to the translation backend.
func (l Language) SourceCode() string {
	switch l {
	case Russian:
		return "ru"
	case Chinese:
		return "zh"
	}
	return ""
}

// SpeechCode is the BCP-47 code used for speech synthesis.
func (l Language) SpeechCode() string {
	switch l {
	case Russian:
		return "ru-RU"
	case Chinese:
		return "cmn-CN"
	}
	return ""
}

func (l Language) Title() string {
	switch l {
	case Russian:
		return "Tiếng Nga"
	case Chinese:
		return "Tiếng Trung"
	}
	return string(l)
}

func (l Language) Flag() string {
	switch l {
	case Russian:
		return "🇷🇺"
	case Chinese:
		return "🇨🇳"
	}
	return "🌍"
}
