package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/usecase/favorites"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or already expired session ids.
var ErrSessionNotFound = errors.New("session not found")

const DefaultIdleTimeout = 30 * time.Minute

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps the live sessions by id and expires the idle ones.
type Registry struct {
	deps        Dependencies
	favorites   favorites.UseCase
	clock       clockwork.Clock
	idleTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewRegistry returns an empty registry. favoritesUseCase may be nil.
func NewRegistry(deps Dependencies, favoritesUseCase favorites.UseCase, idleTimeout time.Duration) *Registry {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Registry{
		deps:        deps,
		favorites:   favoritesUseCase,
		clock:       deps.Clock,
		idleTimeout: idleTimeout,
		sessions:    make(map[string]*entry),
	}
}

// Create starts a new session and seeds its favorites.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()

	if r.favorites != nil {
		if err := r.favorites.Init(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	}

	s := New(id, r.deps)

	r.mu.Lock()
	r.sessions[id] = &entry{session: s, lastSeen: r.clock.Now()}
	r.mu.Unlock()

	log.Info(msg.GetMessage("session.created", id), zap.String("session_id", id))
	return s, nil
}

// Get returns the session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.clock.Now()
	return e.session, nil
}

// Close ends the session and forgets its favorites.
func (r *Registry) Close(ctx context.Context, id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	r.release(ctx, e.session)
	log.Info(msg.GetMessage("session.closed", id), zap.String("session_id", id))
	return nil
}

// Sweep closes every session idle for longer than the idle timeout and returns how many it closed.
func (r *Registry) Sweep(ctx context.Context) int {
	cutoff := r.clock.Now().Add(-r.idleTimeout)

	var expired []*Session
	r.mu.Lock()
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		r.release(ctx, s)
		log.Info(msg.GetMessage("session.expired", s.ID(), r.idleTimeout), zap.String("session_id", s.ID()))
	}
	return len(expired)
}

// SetTimeOfDay applies tod to every live session and returns how many were updated.
func (r *Registry) SetTimeOfDay(tod entity.TimeOfDay) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.sessions {
		e.session.SetTimeOfDay(tod)
	}
	return len(r.sessions)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Shutdown closes every session and waits for their in-flight calls.
func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	all := make([]*Session, 0, len(r.sessions))
	for id, e := range r.sessions {
		all = append(all, e.session)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	var wg sync.WaitGroup
	for _, s := range all {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			r.release(ctx, s)
		}(s)
	}
	wg.Wait()
}

func (r *Registry) release(ctx context.Context, s *Session) {
	s.Close()
	s.Wait()
	if r.favorites != nil {
		if err := r.favorites.Drop(ctx, s.ID()); err != nil {
			log.Warn("Failed to drop favorites", zap.String("session_id", s.ID()), zap.Error(err))
		}
	}
}
