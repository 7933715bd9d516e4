package translator

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/xglish/xglish/internal"
)

// GoogleService translates through the Google Cloud Translation API. The API
// preserves literal tokens, so the ASCII placeholder form is used.
type GoogleService struct {
	credentials string
}

func NewGoogleService(credentialsFile string) *GoogleService {
	return &GoogleService{credentials: credentialsFile}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) PlaceholderStyle() internal.PlaceholderStyle {
	return internal.PlaceholderASCII
}

func (s *GoogleService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	out, err := s.TranslateBatch(ctx, []string{text}, targetLang)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

func (s *GoogleService) TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	targetTag, err := language.Parse(targetLang)
	if err != nil {
		return nil, fmt.Errorf("invalid target language: %w", err)
	}

	opts := []option.ClientOption{}
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	sourceTag, _ := language.Parse("en")
	translations, err := client.Translate(ctx, texts, targetTag, &translate.Options{Source: sourceTag})
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) != len(texts) {
		return nil, fmt.Errorf("batch size mismatch: sent %d, got %d", len(texts), len(translations))
	}

	out := make([]string, len(translations))
	for i, t := range translations {
		out[i] = t.Text
	}
	return out, nil
}
