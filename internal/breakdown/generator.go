// Package breakdown drafts child records (features) from free-text product
// descriptions using an LLM provider.
package breakdown

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	// KindApplication drafts features for a newly created application.
	KindApplication Kind = "application"
	// KindFeature drafts features for the bulk-generate endpoint.
	KindFeature Kind = "feature"
)

var (
	ErrGeneratorDisabled = errors.New("breakdown generator disabled")
	ErrRateLimited       = errors.New("breakdown generator rate limited")
)

// Request is the context bundle handed to a provider.
type Request struct {
	Kind             Kind   `json:"kind"`
	EntityName       string `json:"entityName"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Specs            string `json:"specs"`
	KnownBreakdown   string `json:"knownBreakdown"`
	Type             string `json:"type,omitempty"`
}

// Draft is one generated child record.
type Draft struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	TechnicalDetail string `json:"featureSpecs"`
}

type Generator interface {
	Generate(ctx context.Context, req Request) ([]Draft, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) ([]Draft, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) ([]Draft, error) {
	return f(ctx, req)
}

// envelope is the structured output shape requested from every provider.
type envelope struct {
	Features []Draft `json:"features"`
}

func decodeDrafts(raw string) ([]Draft, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty generator response")
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}
	if env.Features == nil {
		return []Draft{}, nil
	}
	return env.Features, nil
}

// Disabled always fails; used when no provider is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, Request) ([]Draft, error) {
	return nil, ErrGeneratorDisabled
}
