// Package services defines the relay's application logic. This file
// centralizes the input-validation errors returned by SentimentService so
// the HTTP layer can map them with errors.Is.
//
// The error strings are the exact messages clients receive.
package services

import "errors"

// ErrInvalidInput is the parent of every client-input error; all of them
// satisfy errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// Input validation errors.
var (
	// ErrSentencesNotArray is returned when "sentences" is missing, null, or
	// any JSON value other than an array.
	ErrSentencesNotArray = inputError("Invalid input: sentences must be an array")

	// ErrSentenceNotObject is returned when an array element is not a JSON object.
	ErrSentenceNotObject = inputError("Invalid input: each sentence must be an object")

	// ErrSentenceTextType is returned when a sentence carries a non-string text.
	ErrSentenceTextType = inputError("Invalid input: sentence text must be a string")
)

type validationError struct{ msg string }

func inputError(msg string) error { return &validationError{msg: msg} }

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrInvalidInput }
