package domain

import (
	"encoding/json"
	"testing"
)

func strptr(s string) *string { return &s }

func TestUpstreamRequest_WireShape(t *testing.T) {
	req := UpstreamRequest{Documents: []UpstreamDocument{
		{ID: "0", Language: "en", Text: strptr("I love it")},
		{ID: "1", Language: "en"}, // no text on the sentence
	}}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"documents":[{"id":"0","language":"en","text":"I love it"},{"id":"1","language":"en"}]}`
	if string(b) != want {
		t.Fatalf("wire = %s; want %s", b, want)
	}

	// Empty (non-nil) batch must encode as [] rather than null.
	b, _ = json.Marshal(UpstreamRequest{Documents: []UpstreamDocument{}})
	if string(b) != `{"documents":[]}` {
		t.Fatalf("empty batch = %s", b)
	}
}

func TestUpstreamDocument_EmptyTextIsKept(t *testing.T) {
	b, _ := json.Marshal(UpstreamDocument{ID: "0", Language: "en", Text: strptr("")})
	if string(b) != `{"id":"0","language":"en","text":""}` {
		t.Fatalf("empty string text should be sent, got %s", b)
	}
}

func TestRelayError_OmitsOptionalFields(t *testing.T) {
	b, _ := json.Marshal(RelayError{Error: "Invalid input: sentences must be an array"})
	if string(b) != `{"error":"Invalid input: sentences must be an array"}` {
		t.Fatalf("400 body = %s", b)
	}

	b, _ = json.Marshal(RelayError{
		Error:   "Failed to analyze sentiment",
		Message: "Request failed with status code 401",
		Details: json.RawMessage(`{"error":{"code":"401"}}`),
	})
	want := `{"error":"Failed to analyze sentiment","message":"Request failed with status code 401","details":{"error":{"code":"401"}}}`
	if string(b) != want {
		t.Fatalf("500 body = %s; want %s", b, want)
	}
}

func TestSentence_DecodeTextVariants(t *testing.T) {
	var s Sentence
	if err := json.Unmarshal([]byte(`{"text":"hi"}`), &s); err != nil || s.Text == nil || *s.Text != "hi" {
		t.Fatalf("decode text: %v %v", err, s.Text)
	}
	s = Sentence{}
	if err := json.Unmarshal([]byte(`{"other":1}`), &s); err != nil || s.Text != nil {
		t.Fatalf("missing text should stay nil: %v %v", err, s.Text)
	}
	s = Sentence{}
	if err := json.Unmarshal([]byte(`{"text":null}`), &s); err != nil || s.Text != nil {
		t.Fatalf("null text should stay nil: %v %v", err, s.Text)
	}
	if err := json.Unmarshal([]byte(`{"text":42}`), &s); err == nil {
		t.Fatalf("numeric text should fail to decode")
	}
}
