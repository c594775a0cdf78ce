package domain

import (
	"errors"
	"strings"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrFeatureNotFound     = errors.New("feature not found")
	ErrStoryNotFound       = errors.New("user story not found")
	ErrPromptNotFound      = errors.New("prompt not found")
)

// ValidationError lists the field messages of a rejected payload in field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// GenerationError wraps a breakdown generator failure. Committed reports
// whether the parent record had already been persisted when generation failed.
type GenerationError struct {
	Err       error
	Committed bool
}

func (e *GenerationError) Error() string {
	return "generate breakdown: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
