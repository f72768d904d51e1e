package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"golang.org/x/text/language"

	"github.com/tbourn/go-sentiment-relay/internal/domain"
)

// SentimentClient is the outbound provider contract consumed by
// SentimentService. *textanalytics.Client satisfies it.
type SentimentClient interface {
	// AnalyzeSentiment sends one document batch and returns the provider body.
	AnalyzeSentiment(ctx context.Context, batch domain.UpstreamRequest) (json.RawMessage, error)
}

// SentimentService validates an analysis batch, translates it into the
// provider's document format, and performs the single outbound call.
//
// It holds no per-request state and is safe for concurrent use.
type SentimentService struct {
	Client SentimentClient
	// Language tags every document; the relay only sends English.
	Language language.Tag
}

// NewSentimentService returns a SentimentService that tags documents as English.
func NewSentimentService(c SentimentClient) *SentimentService {
	return &SentimentService{Client: c, Language: language.English}
}

// Analyze validates req, builds the document batch and forwards it.
//
// Validation failures satisfy errors.Is(err, ErrInvalidInput) and no call is
// made. Any other error comes from the client unchanged.
func (s *SentimentService) Analyze(ctx context.Context, req domain.AnalysisRequest) (json.RawMessage, error) {
	sentences, err := ParseSentences(req.Sentences)
	if err != nil {
		return nil, err
	}
	return s.Client.AnalyzeSentiment(ctx, BuildDocuments(sentences, s.Language))
}

// ParseSentences decodes the raw "sentences" member.
//
// The member must be a JSON array of objects; an empty array is valid.
// A sentence's text may be absent or null, but when present it must be a
// string. Only the exact, lower-case "text" key is read.
func ParseSentences(raw json.RawMessage) ([]domain.Sentence, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrSentencesNotArray
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrSentencesNotArray
	}

	out := make([]domain.Sentence, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, ErrSentenceNotObject
		}
		// encoding/json folds case when filling struct fields, so keys are
		// matched through a map instead.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, ErrSentenceNotObject
		}
		text, err := sentenceText(fields["text"])
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Sentence{Text: text})
	}
	return out, nil
}

// sentenceText returns nil for an absent or null text.
func sentenceText(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrSentenceTextType
	}
	return &s, nil
}

// BuildDocuments maps sentences 1:1 and in order onto provider documents.
// IDs are zero-based positions; text is copied verbatim.
func BuildDocuments(sentences []domain.Sentence, lang language.Tag) domain.UpstreamRequest {
	code := lang.String()
	docs := make([]domain.UpstreamDocument, 0, len(sentences))
	for i, s := range sentences {
		docs = append(docs, domain.UpstreamDocument{
			ID:       strconv.Itoa(i),
			Language: code,
			Text:     s.Text,
		})
	}
	return domain.UpstreamRequest{Documents: docs}
}
