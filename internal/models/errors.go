package models

import "errors"

var (
	// ErrDependencyUnavailable means a language-processing component (the Chinese
	// segmenter dictionary) could not be loaded. Extraction for that language stops.
	ErrDependencyUnavailable = errors.New("language dependency unavailable")
	// ErrExtraction is returned for malformed or unreadable documents.
	ErrExtraction = errors.New("document extraction failed")
	// ErrUnsupportedFormat is returned for documents that are not PDF, DOCX or plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrTranslation marks a single failed backend call. The translator recovers from it
	// by inserting a sentinel translation.
	ErrTranslation = errors.New("translation failed")
	// ErrInsufficientVocabulary is a soft condition: fewer than 4 distinct words to build a quiz.
	ErrInsufficientVocabulary = errors.New("at least 4 words are needed for a quiz")
	ErrSynthesis              = errors.New("speech synthesis failed")
	ErrUnsupportedLanguage    = errors.New("unsupported language")
	ErrInvalidSession         = errors.New("invalid study session")
	ErrNoWords                = errors.New("no words found")
)
