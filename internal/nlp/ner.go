package nlp

import (
	"context"
	"net/http"
	"time"
)

// NERClient calls the named-entity extraction service.
type NERClient struct {
	baseURL string
	client  *http.Client
}

func NewNERClient(baseURL string, timeout time.Duration) *NERClient {
	return &NERClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// ExtractEntities submits text for named-entity extraction.
func (c *NERClient) ExtractEntities(ctx context.Context, text string) (*Response, error) {
	return postJSON(ctx, c.client, c.baseURL+"/ner", map[string]string{"text": text})
}
