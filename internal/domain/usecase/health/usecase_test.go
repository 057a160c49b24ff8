package health

import (
	"context"
	"testing"

	"weather-pulse/internal/domain/model"

	"github.com/sony/gobreaker"
)

type stubRedis struct{ status model.HealthStatus }

func (s stubRedis) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

type stubInsight struct{ state gobreaker.State }

func (s stubInsight) GenerateText(context.Context, string) (string, error) { return "", nil }
func (s stubInsight) Configured() bool                                     { return true }
func (s stubInsight) BreakerState() gobreaker.State                        { return s.state }

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name        string
		redis       model.HealthStatus
		breaker     gobreaker.State
		wantOverall model.HealthStatus
		wantInsight model.HealthStatus
	}{
		{"all up", model.StatusUp, gobreaker.StateClosed, model.StatusUp, model.StatusUp},
		{"half open is up", model.StatusUp, gobreaker.StateHalfOpen, model.StatusUp, model.StatusUp},
		{"open circuit", model.StatusUp, gobreaker.StateOpen, model.StatusDown, model.StatusDown},
		{"redis down", model.StatusDown, gobreaker.StateClosed, model.StatusDown, model.StatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHealthUseCase(stubRedis{tt.redis}, stubInsight{tt.breaker})
			got := uc.CheckHealth(context.Background())
			if got.Status != tt.wantOverall {
				t.Errorf("overall = %s, want %s", got.Status, tt.wantOverall)
			}
			if got.Insight.Status != tt.wantInsight {
				t.Errorf("insight = %s, want %s", got.Insight.Status, tt.wantInsight)
			}
			if got.Insight.Details["circuit"] != tt.breaker.String() {
				t.Errorf("circuit detail = %q", got.Insight.Details["circuit"])
			}
		})
	}
}
