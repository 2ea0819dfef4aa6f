package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TranslateClient calls the machine translation service.
type TranslateClient struct {
	baseURL string
	client  *http.Client
}

func NewTranslateClient(baseURL string, timeout time.Duration) *TranslateClient {
	return &TranslateClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// SupportedLanguages fetches the service's current list of supported source
// language codes. The list is queried live on every translation; it is not
// cached across calls.
func (c *TranslateClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/supported_languages", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("service returned status %d: %s", resp.StatusCode, body)
	}

	var parsed struct {
		SupportedLanguages []string `json:"supported_languages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode supported languages: %w", err)
	}
	return parsed.SupportedLanguages, nil
}

// Translate submits text for translation between two service language codes.
// A successful reply carries the translated text; service-side errors come
// back as a detail message.
func (c *TranslateClient) Translate(ctx context.Context, text, srcLang, tgtLang string) (*Response, error) {
	payload := map[string]string{
		"text":     text,
		"src_lang": srcLang,
		"tgt_lang": tgtLang,
	}
	return postJSON(ctx, c.client, c.baseURL+"/translate", payload)
}
