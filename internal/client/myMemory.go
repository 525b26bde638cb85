package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

type MyMemoryAPI struct {
	baseURL string
	email   string
	client  *http.Client
}

func NewMyMemoryAPI(cfg config.TranslatorConfig) *MyMemoryAPI {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = myMemoryURL
	}

	return &MyMemoryAPI{
		baseURL: baseURL,
		email:   cfg.Email,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// myMemoryCode maps our language codes to the ones MyMemory expects.
func myMemoryCode(code string) string {
	if code == "zh" {
		return "zh-CN"
	}
	return code
}

func (m *MyMemoryAPI) Translate(ctx context.Context, word, source, target string) (models.TranslationResult, error) {
	params := url.Values{}
	params.Set("q", word)
	params.Set("langpair", myMemoryCode(source)+"|"+myMemoryCode(target))
	if m.email != "" {
		params.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.TranslationResult{}, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: %v", models.ErrTranslation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TranslationResult{}, fmt.Errorf("%w: mymemory status %d", models.ErrTranslation, resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: decode response: %v", models.ErrTranslation, err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.TranslationResult{}, fmt.Errorf("%w: mymemory: %s", models.ErrTranslation, data.ResponseBody.ResponseDetails)
	}

	text := strings.TrimSpace(data.ResponseBody.TranslatedText)
	if text == "" {
		return models.TranslationResult{}, fmt.Errorf("%w: empty translation for %q", models.ErrTranslation, word)
	}

	return models.TranslationResult{
		Text:   text,
		Match:  data.ResponseBody.Match,
		Source: source,
		Target: target,
	}, nil
}
