package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xglish/xglish/internal"
	"github.com/xglish/xglish/internal/langrules"
)

// IndicTransClient speaks to a local IndicTrans inference server over its
// LibreTranslate-compatible JSON API, addressing languages by FLORES-200
// codes. The model's subword tokenizer may split literal tokens, so this
// engine uses the braced placeholder form.
type IndicTransClient struct {
	baseURL string
	client  *http.Client
}

func NewIndicTransClient(baseURL string) *IndicTransClient {
	if baseURL == "" {
		baseURL = "http://localhost:5050"
	}
	return &IndicTransClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (s *IndicTransClient) Name() string {
	return "indictrans"
}

func (s *IndicTransClient) PlaceholderStyle() internal.PlaceholderStyle {
	return internal.PlaceholderBraced
}

type indicTransRequest struct {
	Q      any    `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type indicTransResponse struct {
	TranslatedText json.RawMessage `json:"translatedText"`
	Error          string          `json:"error,omitempty"`
}

func (s *IndicTransClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	raw, err := s.post(ctx, indicTransRequest{
		Q:      text,
		Source: langrules.FloresCode("en"),
		Target: langrules.FloresCode(targetLang),
		Format: "text",
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

func (s *IndicTransClient) TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	raw, err := s.post(ctx, indicTransRequest{
		Q:      texts,
		Source: langrules.FloresCode("en"),
		Target: langrules.FloresCode(targetLang),
		Format: "text",
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

func (s *IndicTransClient) post(ctx context.Context, reqBody indicTransRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var body indicTransResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("server error after %s: %s", time.Since(start).Round(time.Millisecond), body.Error)
	}
	return body.TranslatedText, nil
}
