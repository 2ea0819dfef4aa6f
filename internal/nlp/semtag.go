package nlp

import (
	"context"
	"net/http"
	"time"
)

// SemtagClient calls the subject-term classification service.
type SemtagClient struct {
	baseURL string
	client  *http.Client
}

func NewSemtagClient(baseURL string, timeout time.Duration) *SemtagClient {
	return &SemtagClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// Classify submits text for subject-term classification. Hits come back as
// result records carrying a label and a confidence score.
func (c *SemtagClient) Classify(ctx context.Context, text string) (*Response, error) {
	return postJSON(ctx, c.client, c.baseURL+"/classify", map[string]string{"text": text})
}
