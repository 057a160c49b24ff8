package insight

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/gateway/api"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"go.uber.org/zap"
)

const promptTemplate = `You are a witty and helpful weather assistant.
The current weather in %s is %s.
Temperature: %s°C.
Humidity: %d%%.
Wind: %s km/h.

Give a short, fun, 2-sentence advice on what to wear and whether to go outside.`

type insightUseCase struct {
	gateway api.InsightGateway
	limiter Limiter
}

// NewInsightUseCase wires the advisory call. limiter may be nil.
func NewInsightUseCase(gateway api.InsightGateway, limiter Limiter) UseCase {
	return &insightUseCase{gateway: gateway, limiter: limiter}
}

func (uc *insightUseCase) Advise(ctx context.Context, snapshot entity.WeatherSnapshot) string {
	if !uc.gateway.Configured() {
		log.Debug(msg.GetMessage("insight.unavailable"))
		return UnavailableText
	}

	if uc.limiter != nil {
		if err := uc.limiter.Acquire(ctx); err != nil {
			log.Warn(msg.GetMessage("insight.limited", snapshot.Location), zap.Error(err))
			return FailedText
		}
	}

	text, err := uc.gateway.GenerateText(ctx, BuildPrompt(snapshot))
	if err != nil {
		if errors.Is(err, api.ErrMissingAPIKey) {
			return UnavailableText
		}
		log.Error(msg.GetMessage("insight.failed", snapshot.Location, err),
			zap.String("location", snapshot.Location), zap.Error(err))
		return FailedText
	}

	if strings.TrimSpace(text) == "" {
		return EmptyText
	}
	return text
}

// BuildPrompt renders the advice request for snapshot, always in metric units.
func BuildPrompt(snapshot entity.WeatherSnapshot) string {
	metric := snapshot.Convert(entity.Celsius)
	return fmt.Sprintf(promptTemplate,
		metric.Location,
		metric.Condition,
		formatNumber(metric.CurrentTemp),
		metric.Humidity,
		formatNumber(metric.WindSpeed),
	)
}

// formatNumber prints at most two decimals so unit round trips do not leak float noise.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
