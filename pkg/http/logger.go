package http

import (
	"weather-pulse/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger receives the events of an outbound call.
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after the last failed attempt
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapLogger writes outbound calls to the application log. Bodies are only logged at debug
// level since prompts and answers can be long.
type ZapLogger struct {
	Name string
}

var _ HTTPLogger = ZapLogger{}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("Outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("Outbound request succeeded",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("Outbound response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}

func (l ZapLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn("Retrying outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
