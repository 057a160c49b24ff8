package health

import (
	"context"
	"strconv"
	"sync"

	"weather-pulse/internal/domain/gateway/api"
	"weather-pulse/internal/domain/gateway/db"
	"weather-pulse/internal/domain/model"

	"github.com/sony/gobreaker"
)

type healthUseCase struct {
	redisGateway   db.HealthDBGateway
	insightGateway api.InsightGateway
}

func NewHealthUseCase(redisGateway db.HealthDBGateway, insightGateway api.InsightGateway) UseCase {
	return &healthUseCase{
		redisGateway:   redisGateway,
		insightGateway: insightGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var wg sync.WaitGroup
	var redisHealth model.ComponentHealthStatus

	wg.Add(1)
	go func() {
		defer wg.Done()
		redisHealth = useCase.redisGateway.Health(ctx)
	}()

	insightHealth := useCase.insightHealth()
	wg.Wait()

	overallStatus := model.StatusUp
	if redisHealth.Status != model.StatusUp || insightHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Redis:   redisHealth,
		Insight: insightHealth,
	}
}

// insightHealth maps the breaker: closed and half-open are UP, open is DOWN.
func (useCase *healthUseCase) insightHealth() model.ComponentHealthStatus {
	state := useCase.insightGateway.BreakerState()
	details := map[string]string{
		"circuit":    state.String(),
		"configured": strconv.FormatBool(useCase.insightGateway.Configured()),
	}

	status := model.StatusUp
	if state == gobreaker.StateOpen {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
