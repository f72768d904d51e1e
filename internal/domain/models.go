// Package domain defines the transient values that flow through one relay
// request: the caller's analysis batch, the provider's document batch, and
// the error envelope returned on failure. Nothing here is persisted.
package domain

import "encoding/json"

// AnalysisRequest is the inbound JSON body of POST /api/analyze-sentiment.
//
// Sentences is kept raw so that "absent", "null" and "not an array" can be
// told apart from an empty array during validation.
type AnalysisRequest struct {
	Sentences json.RawMessage `json:"sentences" swaggertype:"array,object"`
}

// Sentence is one caller-supplied item. Only text is read; id and language
// are assigned by the relay.
//
// Text is nil when the caller omitted it or sent null.
type Sentence struct {
	Text *string `json:"text"`
}

// UpstreamDocument is the provider's unit of analyzable text, built 1:1 from
// a Sentence.
//
// Fields:
//   - ID: zero-based position of the sentence in the batch, stringified.
//   - Language: always "en".
//   - Text: the sentence text verbatim; omitted when the sentence had none.
type UpstreamDocument struct {
	ID       string  `json:"id"`
	Language string  `json:"language"`
	Text     *string `json:"text,omitempty"`
}

// UpstreamRequest is the body POSTed to the provider's sentiment endpoint.
type UpstreamRequest struct {
	Documents []UpstreamDocument `json:"documents"`
}

// RelayError is the error body returned to callers.
//
// Message carries the underlying failure description on 500s. Details holds
// the provider's error payload and is only set outside production.
type RelayError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}
