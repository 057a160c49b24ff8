package schedule

import (
	"context"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/usecase/session"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TimeOfDayScheduler moves every live session into the time-of-day bucket of the current hour
type TimeOfDayScheduler struct {
	cron           *cron.Cron
	registry       *session.Registry
	clock          clockwork.Clock
	cronExpression string
}

func NewTimeOfDayScheduler(registry *session.Registry, clock clockwork.Clock, cronExpression string) *TimeOfDayScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TimeOfDayScheduler{
		cron:           cron.New(),
		registry:       registry,
		clock:          clock,
		cronExpression: cronExpression,
	}
}

// InitTimeOfDayScheduleTasks registers the refresh under the configured cron expression and starts it
func (scheduler *TimeOfDayScheduler) InitTimeOfDayScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, func() { scheduler.RefreshTimeOfDay() }); err != nil {
		return err
	}
	scheduler.cron.Start()
	log.Infof("Time of day scheduler started with cron expression: %s", scheduler.cronExpression)
	return nil
}

// RefreshTimeOfDay returns the bucket applied to the sessions
func (scheduler *TimeOfDayScheduler) RefreshTimeOfDay() entity.TimeOfDay {
	tod := entity.TimeOfDayAt(scheduler.clock.Now())
	updated := scheduler.registry.SetTimeOfDay(tod)

	log.Info(msg.GetMessage("schedule.time-of-day", tod, updated),
		zap.String("request_id", uuid.NewString()),
		zap.String("time_of_day", string(tod)),
		zap.Int("sessions", updated))
	return tod
}

// Stop waits for a running refresh to finish
func (scheduler *TimeOfDayScheduler) Stop(ctx context.Context) {
	select {
	case <-scheduler.cron.Stop().Done():
	case <-ctx.Done():
	}
}
