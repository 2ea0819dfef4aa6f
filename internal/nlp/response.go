package nlp

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedResponse is returned when a service reply is valid JSON but
// matches none of the three known response shapes.
var ErrUnrecognizedResponse = errors.New("unrecognized service response shape")

// Response is the decoded body of a remote service reply. The services answer
// with exactly one of three shapes: a text payload (translation output), a
// detail message (service-reported error), or a list of result records
// (classification / entity extraction hits). Dispatch order is text, then
// detail, then results.
type Response struct {
	Text    *string
	Detail  *string
	Results []json.RawMessage
}

// Kind identifies which shape a Response carries.
type Kind int

const (
	KindText Kind = iota
	KindDetail
	KindResults
)

func (r *Response) Kind() Kind {
	switch {
	case r.Text != nil:
		return KindText
	case r.Detail != nil:
		return KindDetail
	default:
		return KindResults
	}
}

// ParseResponse decodes a service reply body into a tagged Response. A body
// that is not JSON, or that carries none of the known keys, is an error.
func ParseResponse(body []byte) (*Response, error) {
	var raw struct {
		Text    *string           `json:"text"`
		Detail  *string           `json:"detail"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode service response: %w", err)
	}
	if raw.Text == nil && raw.Detail == nil && raw.Results == nil {
		return nil, ErrUnrecognizedResponse
	}
	return &Response{Text: raw.Text, Detail: raw.Detail, Results: raw.Results}, nil
}
