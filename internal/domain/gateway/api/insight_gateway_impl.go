package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-pulse/internal/domain/model/external"
	"weather-pulse/pkg/http"
	"weather-pulse/pkg/log"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

// GeminiOptions configures the Gemini gateway
type GeminiOptions struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	Transport   http.ClientOptions
}

// geminiGatewayImpl implements the InsightGateway interface over the Gemini REST API
type geminiGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	model      string
	circuit    *gobreaker.CircuitBreaker
}

var _ InsightGateway = (*geminiGatewayImpl)(nil)

// NewGeminiGateway creates a new instance of InsightGateway backed by generateContent
func NewGeminiGateway(opts GeminiOptions) InsightGateway {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultGeminiBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultGeminiModel
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = time.Minute
	}

	clientOptions := opts.Transport
	if opts.Timeout > 0 {
		clientOptions.ReadTimeout = opts.Timeout
	}
	clientOptions.Backoff = http.NoRetry
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "gemini"}
	}

	maxFailures := opts.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &geminiGatewayImpl{
		httpClient: http.NewHttpClient(opts.BaseURL, clientOptions),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		circuit:    cb,
	}
}

func (g *geminiGatewayImpl) Configured() bool {
	return g.apiKey != ""
}

func (g *geminiGatewayImpl) BreakerState() gobreaker.State {
	return g.circuit.State()
}

// GenerateText calls models/{model}:generateContent exactly once
func (g *geminiGatewayImpl) GenerateText(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", ErrMissingAPIKey
	}

	result, err := g.circuit.Execute(func() (interface{}, error) {
		return g.generateContent(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return "", err
	}

	return result.(string), nil
}

func (g *geminiGatewayImpl) generateContent(ctx context.Context, prompt string) (string, error) {
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", g.model)
	body := external.GenerateContentRequest{
		Contents: []external.Content{{Parts: []external.Part{{Text: prompt}}}},
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(path).
		WithHeaders(map[string]string{"x-goog-api-key": g.apiKey}).
		WithBody(body).
		WithSuccessResp(&external.GenerateContentResponse{}).
		WithErrorResp(&external.GeminiErrorResponse{}).
		WithBackoff(http.NoRetry).
		Execute()

	if err == nil {
		response := successResp.(*external.GenerateContentResponse)
		return response.Text(), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.GeminiErrorResponse)
		if errorResponse.Error.Message != "" {
			return "", fmt.Errorf("gemini %s: %s: %w", errorResponse.Error.Status, errorResponse.Error.Message, err)
		}
	}

	return "", fmt.Errorf("gemini generateContent: %w", err)
}
