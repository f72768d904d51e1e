// Package textanalytics is the outbound client for the Azure AI Language
// (Text Analytics v3.1) sentiment endpoint.
//
// The client performs exactly one POST per call: no retries, no caching, no
// batching. Every non-success outcome is returned as an error; callers decide
// how much of the provider payload they expose.
package textanalytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-sentiment-relay/internal/config"
	"github.com/tbourn/go-sentiment-relay/internal/domain"
)

const (
	// SentimentPath is appended to the configured resource endpoint.
	SentimentPath = "text/analytics/v3.1/sentiment"

	// HeaderSubscriptionKey carries the resource key on every request.
	HeaderSubscriptionKey = "Ocp-Apim-Subscription-Key"

	instrumentationName = "github.com/tbourn/go-sentiment-relay/internal/textanalytics"
)

var (
	// ErrEndpointNotConfigured is returned when no base endpoint was supplied.
	ErrEndpointNotConfigured = errors.New("text analytics endpoint is not configured")

	// ErrMalformedResponse marks a success status whose body is not JSON.
	ErrMalformedResponse = errors.New("malformed response from text analytics")
)

// UpstreamError describes a response the provider did send but that cannot
// be relayed: a non-2xx status, or a 2xx status with a non-JSON body.
type UpstreamError struct {
	StatusCode int
	Body       []byte
	Err        error // cause, nil for plain status failures
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (status %d)", e.Err, e.StatusCode)
	}
	return "Request failed with status code " + strconv.Itoa(e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Payload returns the provider body in a form suitable for a JSON envelope:
// raw JSON when the body is valid JSON, a string otherwise, and nil when the
// provider sent nothing.
func (e *UpstreamError) Payload() any {
	b := bytes.TrimSpace(e.Body)
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	return string(b)
}

// SentimentURL joins base and SentimentPath with exactly one slash at the
// boundary. Only a single trailing slash on base is recognized.
func SentimentURL(base string) (string, error) {
	if base == "" {
		return "", ErrEndpointNotConfigured
	}
	if strings.HasSuffix(base, "/") {
		return base + SentimentPath, nil
	}
	return base + "/" + SentimentPath, nil
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests use this to
// point at an httptest server transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client calls the sentiment endpoint. It is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New builds a Client from the upstream settings. A zero cfg.Timeout leaves
// the call without a deadline beyond the caller's context.
func New(cfg config.UpstreamConfig, opts ...Option) *Client {
	c := &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracer:     otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the fully-qualified sentiment URL for this client.
func (c *Client) Endpoint() (string, error) {
	return SentimentURL(c.endpoint)
}

// AnalyzeSentiment POSTs the document batch and returns the provider body
// untouched on a 2xx JSON response.
//
// Errors:
//   - ErrEndpointNotConfigured when no endpoint is set
//   - *UpstreamError for non-2xx statuses and non-JSON 2xx bodies
//   - a wrapped transport error for network/DNS/timeout failures
func (c *Client) AnalyzeSentiment(ctx context.Context, batch domain.UpstreamRequest) (json.RawMessage, error) {
	start := time.Now()
	documentsTotal.Add(float64(len(batch.Documents)))

	ctx, span := c.tracer.Start(ctx, "textanalytics.sentiment",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("textanalytics.documents", len(batch.Documents))),
	)
	defer span.End()

	body, err := c.do(ctx, batch, span)
	outcome := classify(err)
	upstreamReqs.WithLabelValues(outcome).Inc()
	upstreamLat.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, batch domain.UpstreamRequest, span trace.Span) (json.RawMessage, error) {
	url, err := c.Endpoint()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("http.url", url))
	log.Debug().Str("endpoint", url).Int("documents", len(batch.Documents)).Msg("calling text analytics")

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("encode documents: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build text analytics request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderSubscriptionKey, c.apiKey)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("text analytics request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read text analytics response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: raw}
	}
	if !json.Valid(raw) {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: raw, Err: ErrMalformedResponse}
	}
	return json.RawMessage(raw), nil
}

// classify maps a call result onto the bounded outcome label set.
func classify(err error) string {
	var ue *UpstreamError
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrEndpointNotConfigured):
		return outcomeConfigError
	case errors.Is(err, ErrMalformedResponse):
		return outcomeMalformed
	case errors.As(err, &ue):
		return outcomeHTTPError
	default:
		return outcomeTransportError
	}
}
