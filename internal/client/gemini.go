package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var languageNames = map[string]string{
	"ru": "Russian",
	"zh": "Chinese",
	"vi": "Vietnamese",
	"en": "English",
}

type GeminiAPI struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiAPI(ctx context.Context, cfg config.TranslatorConfig) (*GeminiAPI, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0)

	return &GeminiAPI{client: client, model: model}, nil
}

func translationPrompt(word, source, target string) string {
	from, ok := languageNames[source]
	if !ok {
		from = source
	}
	to, ok := languageNames[target]
	if !ok {
		to = target
	}

	return fmt.Sprintf(
		"Translate the %s word %q into %s. Reply with the most common translation only, without quotes or explanations.",
		from, word, to,
	)
}

func (g *GeminiAPI) Translate(ctx context.Context, word, source, target string) (models.TranslationResult, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(translationPrompt(word, source, target)))
	if err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: gemini: %v", models.ErrTranslation, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return models.TranslationResult{}, err
	}

	return models.TranslationResult{
		Text:   text,
		Source: source,
		Target: target,
		Match:  1,
	}, nil
}

// responseText returns the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", models.ErrTranslation)
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			if s := strings.Trim(strings.TrimSpace(string(text)), `"'`); s != "" {
				return s, nil
			}
		}
	}

	return "", fmt.Errorf("%w: gemini returned an empty answer", models.ErrTranslation)
}

func (g *GeminiAPI) Close() error {
	return g.client.Close()
}
