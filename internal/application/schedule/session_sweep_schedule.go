package schedule

import (
	"context"
	"fmt"
	"time"

	"weather-pulse/internal/domain/usecase/session"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// SessionSweepScheduler closes sessions that have been idle past the registry timeout
type SessionSweepScheduler struct {
	scheduler gocron.Scheduler
	registry  *session.Registry
	interval  time.Duration
}

func NewSessionSweepScheduler(registry *session.Registry, clock clockwork.Clock, interval time.Duration) (*SessionSweepScheduler, error) {
	options := []gocron.SchedulerOption{}
	if clock != nil {
		options = append(options, gocron.WithClock(clock))
	}

	scheduler, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sweep scheduler: %w", err)
	}
	return &SessionSweepScheduler{scheduler: scheduler, registry: registry, interval: interval}, nil
}

// InitSessionSweepTasks registers the sweep every interval and starts the scheduler
func (s *SessionSweepScheduler) InitSessionSweepTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.SweepIdleSessions),
		gocron.WithName("session-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	s.scheduler.Start()
	log.Infof("Session sweep scheduler started, interval %s", s.interval)
	return nil
}

// SweepIdleSessions returns how many sessions were closed
func (s *SessionSweepScheduler) SweepIdleSessions() int {
	swept := s.registry.Sweep(context.Background())
	if swept > 0 {
		log.Info(msg.GetMessage("schedule.sweep", swept),
			zap.String("request_id", uuid.NewString()),
			zap.Int("sessions", swept),
			zap.Int("remaining", s.registry.Len()))
	}
	return swept
}

func (s *SessionSweepScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
