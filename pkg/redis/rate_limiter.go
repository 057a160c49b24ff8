package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrRateLimitExceeded is returned by Acquire when the current window is used up.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// Name identifies the limiter in keys and health details
	Name string
	// Limit is the number of calls allowed per window. Zero disables the limiter.
	Limit int
	// Window is the length of one counting window
	Window time.Duration
	// Clock decides which window a call falls in
	Clock clockwork.Clock
}

// RateLimiter is a fixed-window counter shared by every instance talking to the same Redis
type RateLimiter struct {
	client *Client
	opts   RateLimiterOptions
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, opts RateLimiterOptions) *RateLimiter {
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Name == "" {
		opts.Name = "default"
	}
	return &RateLimiter{client: client, opts: opts}
}

// Acquire counts one call in the current window and returns ErrRateLimitExceeded when the
// window already reached its limit.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	if rl.opts.Limit <= 0 {
		return nil
	}

	count, err := rl.increment(ctx)
	if err != nil {
		return fmt.Errorf("rate limiter %s: %w", rl.opts.Name, err)
	}
	if count > int64(rl.opts.Limit) {
		return ErrRateLimitExceeded
	}
	return nil
}

// Used returns how many calls the current window has counted.
func (rl *RateLimiter) Used(ctx context.Context) (int64, error) {
	value, err := rl.client.Get(ctx, rl.windowKey())
	if err != nil || value == "" {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// Limit returns the configured per-window limit
func (rl *RateLimiter) Limit() int {
	return rl.opts.Limit
}

func (rl *RateLimiter) increment(ctx context.Context) (int64, error) {
	key := rl.windowKey()

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// two windows so a slow clock on another instance still finds the counter
	pipe.Expire(ctx, key, 2*rl.opts.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (rl *RateLimiter) windowKey() string {
	window := rl.opts.Clock.Now().UnixNano() / int64(rl.opts.Window)
	return rl.client.Key("ratelimit", rl.opts.Name, strconv.FormatInt(window, 10))
}
