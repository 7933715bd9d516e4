package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xglish/xglish/internal"
)

// LibreTranslateClient talks to a LibreTranslate server. LibreTranslate
// passes unknown literal tokens through unchanged, so the ASCII placeholder
// form is safe.
type LibreTranslateClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewLibreTranslateClient(baseURL, apiKey string) *LibreTranslateClient {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	return &LibreTranslateClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (s *LibreTranslateClient) Name() string {
	return "libretranslate"
}

func (s *LibreTranslateClient) PlaceholderStyle() internal.PlaceholderStyle {
	return internal.PlaceholderASCII
}

type libreRequest struct {
	Q      any    `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText json.RawMessage `json:"translatedText"`
	Error          string          `json:"error,omitempty"`
}

func (s *LibreTranslateClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	raw, err := s.post(ctx, libreRequest{
		Q: text, Source: "en", Target: targetLang, Format: "text", APIKey: s.apiKey,
	})
	if err != nil {
		return "", err
	}
	var out string
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}
	return out, nil
}

func (s *LibreTranslateClient) TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	raw, err := s.post(ctx, libreRequest{
		Q: texts, Source: "en", Target: targetLang, Format: "text", APIKey: s.apiKey,
	})
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unexpected batch response shape: %w", err)
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("batch size mismatch: sent %d, got %d", len(texts), len(out))
	}
	return out, nil
}

func (s *LibreTranslateClient) post(ctx context.Context, reqBody libreRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var body libreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("server error: %s", body.Error)
	}
	return body.TranslatedText, nil
}
