// Sentiment HTTP handlers.
//
// This file exposes the relay endpoints:
//   - POST /api/analyze-sentiment   (validate, forward, pass through)
//   - GET  /                        (plain-text health check)
//
// Handlers are transport-thin: they bind the body, call SentimentService and
// map its result to a status code. Every upstream failure becomes a 500.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-sentiment-relay/internal/domain"
	"github.com/tbourn/go-sentiment-relay/internal/http/middleware"
	"github.com/tbourn/go-sentiment-relay/internal/services"
	"github.com/tbourn/go-sentiment-relay/internal/textanalytics"
)

// SentimentService is the analysis contract consumed by the handlers.
//
// Implementations must honor ctx and return errors satisfying
// errors.Is(err, services.ErrInvalidInput) for caller mistakes.
type SentimentService interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (json.RawMessage, error)
}

// Handlers groups the relay endpoints.
type Handlers struct {
	svc SentimentService
	// exposeDetails adds the provider error payload to 500 responses.
	exposeDetails bool
}

// New constructs Handlers bound to svc. exposeDetails should be true only
// outside production.
func New(svc SentimentService, exposeDetails bool) *Handlers {
	return &Handlers{svc: svc, exposeDetails: exposeDetails}
}

// AnalyzeSentiment godoc
// @ID          analyzeSentiment
// @Summary     Analyze sentiment of a batch of sentences
// @Description Forwards the sentences to the Text Analytics v3.1 sentiment endpoint and returns the provider response verbatim.
// @Tags        Sentiment
// @Accept      json
// @Produce     json
// @Param       body  body      domain.AnalysisRequest  true  "Sentences to analyze"
// @Success     200   {object}  object                  "Provider response"
// @Failure     400   {object}  domain.RelayError       "Invalid input"
// @Failure     500   {object}  domain.RelayError       "Upstream failure"
// @Router      /api/analyze-sentiment [post]
func (h *Handlers) AnalyzeSentiment(c *gin.Context) {
	// Bound into a map so the "sentences" key is matched exactly; struct
	// decoding would also accept "Sentences" or "SENTENCES".
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, domain.RelayError{Error: MsgBodyTooLarge})
			return
		}
		fail(c, http.StatusBadRequest, domain.RelayError{Error: services.ErrSentencesNotArray.Error()})
		return
	}

	req := domain.AnalysisRequest{Sentences: body["sentences"]}
	out, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			fail(c, http.StatusBadRequest, domain.RelayError{Error: err.Error()})
			return
		}
		fail(c, http.StatusInternalServerError, h.upstreamFailure(c, err))
		return
	}

	relayJSON(c, http.StatusOK, out)
}

// upstreamFailure builds the 500 body for err, logging whatever the
// provider sent back.
func (h *Handlers) upstreamFailure(c *gin.Context, err error) domain.RelayError {
	body := domain.RelayError{Error: MsgAnalyzeFailed, Message: err.Error()}

	var ue *textanalytics.UpstreamError
	if errors.As(err, &ue) {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("upstream_status", ue.StatusCode).
			Bytes("upstream_body", ue.Body).
			Msg("text analytics error response")
		if h.exposeDetails {
			body.Details = ue.Payload()
		}
	}
	_ = c.Error(err)
	return body
}

// Root godoc
// @ID          root
// @Summary     Health check
// @Tags        Health
// @Produce     plain
// @Success     200  {string}  string  "Sentiment analysis API is running"
// @Router      / [get]
func (h *Handlers) Root(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}
