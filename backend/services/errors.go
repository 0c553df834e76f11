package services

import "errors"

var (
	// ErrUpstream means the completion API was unreachable or returned
	// no usable text.
	ErrUpstream = errors.New("invalid response from completion API")
	// ErrNoQuestionsParsed means the model responded but no questions
	// could be recovered from the text.
	ErrNoQuestionsParsed = errors.New("could not parse any questions from model response")
	// ErrInvalidSession means the session token is unknown, expired or
	// already consumed.
	ErrInvalidSession = errors.New("invalid or expired session token")
)
