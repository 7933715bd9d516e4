package romanizer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AksharamukhaClient calls the Aksharamukha public transliteration API.
type AksharamukhaClient struct {
	baseURL string
	client  *http.Client
}

func NewAksharamukhaClient(baseURL string) *AksharamukhaClient {
	if baseURL == "" {
		baseURL = "https://aksharamukha-plugin.appspot.com/api/public"
	}
	return &AksharamukhaClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AksharamukhaClient) Convert(ctx context.Context, sourceScript, targetScript, text string) (string, error) {
	apiURL := fmt.Sprintf("%s?source=%s&target=%s&text=%s",
		c.baseURL,
		url.QueryEscape(sourceScript),
		url.QueryEscape(targetScript),
		url.QueryEscape(text))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	// The API returns the converted text as a bare string, sometimes
	// JSON-quoted.
	out := strings.TrimSpace(string(body))
	out = strings.Trim(out, `"`)
	return out, nil
}
