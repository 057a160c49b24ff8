package http

import (
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig controls retries with exponential delay.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// RetryOn lists extra status codes worth retrying besides 429 and 5xx.
	RetryOn []int
}

// NoRetry is a policy of exactly one attempt.
var NoRetry = &BackoffConfig{}

func (b *BackoffConfig) delay(attempt int) time.Duration {
	d := time.Duration(float64(b.InitialInterval) * math.Pow(2, float64(attempt)))
	if b.MaxInterval > 0 && d > b.MaxInterval {
		d = b.MaxInterval
	}
	return d
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if b == nil || b.MaxRetries == 0 {
		return false
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		// transport error, nothing was answered
		return status == 0
	}
	if status == http.StatusTooManyRequests || status >= 500 {
		return true
	}
	for _, code := range b.RetryOn {
		if code == status {
			return true
		}
	}
	return false
}
