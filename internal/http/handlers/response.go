// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by every endpoint. Errors
// are written as domain.RelayError; successful analysis responses are the
// provider's bytes, written untouched.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{ "error": "Invalid input: sentences must be an array" }
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-sentiment-relay/internal/domain"
	"github.com/tbourn/go-sentiment-relay/internal/http/middleware"
)

// fail aborts the request with body as JSON and logs server-side errors
// with the request-scoped logger.
func fail(c *gin.Context, status int, body domain.RelayError) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("error", body.Error).
			Str("message", body.Message).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, body)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, msg string) {
	fail(c, status, domain.RelayError{Error: msg})
}

// relayJSON writes raw provider JSON with the given status.
func relayJSON(c *gin.Context, status int, body json.RawMessage) {
	c.Data(status, "application/json; charset=utf-8", body)
}
