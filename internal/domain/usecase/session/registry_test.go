package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/gateway/db"
	"weather-pulse/internal/domain/usecase/favorites"
)

func newTestRegistry(f *fixture) (*Registry, favorites.UseCase) {
	fav := favorites.NewFavoritesUseCase(db.NewMemoryFavoritesGateway(), f.deps.Forecast, nil)
	return NewRegistry(f.deps, fav, 30*time.Minute), fav
}

func TestRegistryLifecycle(t *testing.T) {
	f := newFixture(false, false)
	reg, fav := newTestRegistry(f)
	ctx := context.Background()

	s, err := reg.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got, err := reg.Get(s.ID()); err != nil || got != s {
		t.Fatalf("Get = %v, %v", got, err)
	}

	list, _ := fav.List(ctx, s.ID())
	if len(list) != len(favorites.DefaultLocations) {
		t.Errorf("favorites not seeded: %d", len(list))
	}

	if err := reg.Close(ctx, s.ID()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := reg.Get(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after close err = %v", err)
	}
	if err := reg.Close(ctx, s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Close err = %v", err)
	}
	if list, _ := fav.List(ctx, s.ID()); len(list) != 0 {
		t.Errorf("favorites kept after close: %v", list)
	}
}

func TestRegistrySweepsIdleSessions(t *testing.T) {
	f := newFixture(false, false)
	reg, _ := newTestRegistry(f)
	ctx := context.Background()

	active, _ := reg.Create(ctx)
	idle, _ := reg.Create(ctx)

	f.clock.Advance(20 * time.Minute)
	if _, err := reg.Get(active.ID()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	f.clock.Advance(15 * time.Minute)

	if n := reg.Sweep(ctx); n != 1 {
		t.Fatalf("swept %d sessions, want 1", n)
	}
	if _, err := reg.Get(idle.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session survived: %v", err)
	}
	if _, err := reg.Get(active.ID()); err != nil {
		t.Errorf("active session swept: %v", err)
	}
}

func TestRegistrySetTimeOfDayAndShutdown(t *testing.T) {
	f := newFixture(false, false)
	reg, _ := newTestRegistry(f)
	ctx := context.Background()

	a, _ := reg.Create(ctx)
	_, _ = reg.Create(ctx)

	if n := reg.SetTimeOfDay(entity.Evening); n != 2 {
		t.Errorf("updated %d sessions", n)
	}
	if a.State().TimeOfDay != entity.Evening {
		t.Errorf("TimeOfDay = %s", a.State().TimeOfDay)
	}

	reg.Shutdown(ctx)
	if reg.Len() != 0 {
		t.Errorf("Len after shutdown = %d", reg.Len())
	}
}
