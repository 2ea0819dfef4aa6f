// Package nlp contains the HTTP clients for the three remote NLP services:
// subject-term classification, named-entity extraction, and machine
// translation. The clients are stateless; every call is a single outbound
// request with no retry, no auth, and no caching.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each outbound request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// postJSON sends payload to url and parses the reply into a tagged Response.
// The services report errors as a JSON {detail} body, usually with a non-2xx
// status; the body is therefore parsed regardless of status, and the status
// only surfaces in the error when the body is not a recognizable reply.
func postJSON(ctx context.Context, client *http.Client, url string, payload any) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	parsed, perr := ParseResponse(body)
	if perr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
		}
		return nil, perr
	}
	return parsed, nil
}
