package db

import (
	"context"

	"weather-pulse/internal/domain/model"
	"weather-pulse/pkg/redis"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type redisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthDBGateway = (*redisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) HealthDBGateway {
	return &redisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (g *redisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	result := g.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(result.Status),
		Details: result.Details,
	}
}

type disabledHealthGateway struct{}

// NewDisabledHealthGateway reports a component that is not configured.
func NewDisabledHealthGateway() HealthDBGateway {
	return disabledHealthGateway{}
}

func (disabledHealthGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"enabled": "false"},
	}
}
