package api

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
)

var (
	// ErrMissingAPIKey is returned without any network call when no credential is configured.
	ErrMissingAPIKey = errors.New("insight api key not configured")
	// ErrCircuitOpen is returned while the breaker rejects calls.
	ErrCircuitOpen = errors.New("insight circuit breaker open")
)

// InsightGateway defines the outbound text-generation call
type InsightGateway interface {
	// GenerateText sends prompt to the model once and returns the generated text, possibly empty
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Configured reports whether a credential is available
	Configured() bool

	// BreakerState returns the state of the circuit breaker guarding the upstream
	BreakerState() gobreaker.State
}
