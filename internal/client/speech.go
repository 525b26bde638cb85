package client

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/models"
	"google.golang.org/api/option"
)

type SpeechAPI struct {
	client *texttospeech.Client
}

func NewSpeechAPI(ctx context.Context, cfg config.SpeechConfig) (*SpeechAPI, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &SpeechAPI{client: client}, nil
}

func speechRequest(word, langCode string) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{
				Text: word,
			},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: langCode,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  0.9,
		},
	}
}

// SynthesizeSpeech returns MP3 audio of word read in langCode.
func (s *SpeechAPI) SynthesizeSpeech(ctx context.Context, word, langCode string) ([]byte, error) {
	if word == "" {
		return nil, fmt.Errorf("%w: empty text", models.ErrSynthesis)
	}

	resp, err := s.client.SynthesizeSpeech(ctx, speechRequest(word, langCode))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSynthesis, err)
	}

	return resp.AudioContent, nil
}

func (s *SpeechAPI) Close() error {
	return s.client.Close()
}

// NoSpeech is used when speech synthesis is disabled.
type NoSpeech struct{}

func (NoSpeech) SynthesizeSpeech(context.Context, string, string) ([]byte, error) {
	return nil, fmt.Errorf("%w: speech is disabled", models.ErrSynthesis)
}
