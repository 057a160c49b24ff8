package insight

import (
	"context"

	"weather-pulse/internal/domain/entity"
)

const (
	UnavailableText = "AI services unavailable. Please check API Key."
	FailedText      = "Could not fetch AI insight at the moment."
	EmptyText       = "Stay cool and enjoy the weather!"
)

type UseCase interface {
	// Advise returns a short style tip for snapshot. It never fails: missing credentials, upstream
	// errors, an open circuit and rate limiting all map to fixed fallback texts.
	Advise(ctx context.Context, snapshot entity.WeatherSnapshot) string
}

// Limiter gates outbound calls. A non-nil error means the call must not be made.
type Limiter interface {
	Acquire(ctx context.Context) error
}
