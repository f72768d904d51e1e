// Package handlers defines the fixed messages placed in the "error" field of
// every RelayError the API returns.
//
// Conventions:
//   - Client input errors use the message of the matching services error, so
//     validation wording lives in one place.
//   - Every upstream failure collapses to MsgAnalyzeFailed with HTTP 500; the
//     failure's own description goes into "message".
//
// Example response:
//
//	{
//	  "error": "Failed to analyze sentiment",
//	  "message": "Request failed with status code 401"
//	}
package handlers

const (
	MsgAnalyzeFailed    = "Failed to analyze sentiment"
	MsgBodyTooLarge     = "Request body too large"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"

	// HealthMessage is the plain-text body of GET /.
	HealthMessage = "Sentiment analysis API is running"
)
