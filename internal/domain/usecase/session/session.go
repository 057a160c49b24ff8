package session

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/usecase/forecast"
	"weather-pulse/internal/domain/usecase/insight"
	"weather-pulse/internal/domain/usecase/search"
	"weather-pulse/pkg/debounce"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	DefaultLocation       = "San Francisco, CA"
	DefaultDebounceWindow = 300 * time.Millisecond
)

// Dependencies are the collaborators every session talks to.
type Dependencies struct {
	Search          search.UseCase
	Forecast        forecast.UseCase
	Insight         insight.UseCase
	Clock           clockwork.Clock
	DebounceWindow  time.Duration
	DefaultLocation string
}

// Session owns the presentation state of one client. Search and insight calls run in the
// background; their results are applied only while the token they were issued with is
// still the latest one.
type Session struct {
	id     string
	deps   Dependencies
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	debouncer *debounce.Debouncer

	mu              sync.Mutex
	closed          bool
	debouncePending bool
	debounceSeq     uint64
	searchToken     uint64
	insightToken    uint64

	tab            entity.NavTab
	darkMode       bool
	unit           entity.TempUnit
	notifications  bool
	timeOfDay      entity.TimeOfDay
	weather        entity.WeatherSnapshot
	insight        string
	insightLoading bool
	searchOpen     bool
	searchTerm     string
	suggestions    []string
	searchLoading  bool
}

// New creates a session showing the default location and issues its first insight request.
func New(id string, deps Dependencies) *Session {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.DebounceWindow <= 0 {
		deps.DebounceWindow = DefaultDebounceWindow
	}
	if deps.DefaultLocation == "" {
		deps.DefaultLocation = DefaultLocation
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:            id,
		deps:          deps,
		logger:        log.With(zap.String("session_id", id)),
		ctx:           ctx,
		cancel:        cancel,
		debouncer:     debounce.New(deps.DebounceWindow, deps.Clock),
		tab:           entity.TabHome,
		darkMode:      true,
		unit:          entity.Celsius,
		notifications: true,
		timeOfDay:     entity.TimeOfDayAt(deps.Clock.Now()),
		suggestions:   []string{},
	}
	s.SelectLocation(deps.DefaultLocation)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		ID:             s.id,
		Tab:            s.tab,
		DarkMode:       s.darkMode,
		Unit:           s.unit,
		Notifications:  s.notifications,
		TimeOfDay:      s.timeOfDay,
		Weather:        s.weather.Convert(s.unit),
		Insight:        s.insight,
		InsightLoading: s.insightLoading,
		Search: SearchState{
			Open:        s.searchOpen,
			Term:        s.searchTerm,
			Suggestions: append([]string{}, s.suggestions...),
			Loading:     s.searchLoading,
		},
	}
}

func (s *Session) OpenSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchOpen = true
}

// CloseSearch dismisses the search box. Results still in flight are discarded on arrival.
func (s *Session) CloseSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetSearchLocked()
}

// TypeSearch stores term and schedules a lookup once typing has paused for the debounce window.
func (s *Session) TypeSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.searchTerm = term
	if !s.debouncePending {
		s.debouncePending = true
		s.wg.Add(1)
	}
	s.debounceSeq++
	seq := s.debounceSeq
	s.debouncer.Trigger(func() { s.debounceElapsed(seq) })
}

// SubmitSearch selects the typed term, as typed, when it is not blank.
func (s *Session) SubmitSearch() {
	s.mu.Lock()
	term := s.searchTerm
	s.mu.Unlock()

	if strings.TrimSpace(term) == "" {
		return
	}
	s.SelectSuggestion(term)
}

// SelectSuggestion selects city and resets the search box.
func (s *Session) SelectSuggestion(city string) {
	s.SelectLocation(city)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetSearchLocked()
}

// SelectLocation replaces the snapshot, clears the insight and asks for a new one.
func (s *Session) SelectLocation(location string) {
	snapshot := s.deps.Forecast.Generate(location)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.weather = snapshot
	s.issueInsightLocked()
}

// RefreshInsight asks again for the current snapshot.
func (s *Session) RefreshInsight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.issueInsightLocked()
}

func (s *Session) SetTab(tab entity.NavTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

func (s *Session) ToggleTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
}

func (s *Session) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = enabled
}

func (s *Session) SetUnit(unit entity.TempUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unit = unit
}

func (s *Session) SetNotifications(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = enabled
}

func (s *Session) SetTimeOfDay(tod entity.TimeOfDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeOfDay = tod
}

// SelectFavorite shows location on the home tab.
func (s *Session) SelectFavorite(location string) {
	s.SelectLocation(location)
	s.SetTab(entity.TabHome)
}

// Wait blocks until pending debounced lookups and in-flight calls have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close drops the pending lookup and makes the session ignore any later result.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancelDebounceLocked()
	s.searchToken++
	s.insightToken++
	s.mu.Unlock()

	s.cancel()
}

// debounceElapsed runs the lookup armed by keystroke seq. A callback that lost the race
// against a newer keystroke or a cancel finds a different seq and does nothing.
func (s *Session) debounceElapsed(seq uint64) {
	s.mu.Lock()
	if !s.debouncePending || seq != s.debounceSeq {
		s.mu.Unlock()
		return
	}
	s.debouncePending = false
	defer s.wg.Done()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	term := strings.TrimSpace(s.searchTerm)
	s.searchToken++
	if !s.searchOpen || utf8.RuneCountInString(term) < search.MinQueryLength {
		s.suggestions = []string{}
		s.searchLoading = false
		return
	}

	token := s.searchToken
	s.searchLoading = true
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		results := s.deps.Search.Search(s.ctx, term)
		s.applySearch(token, results)
	}()
}

func (s *Session) applySearch(token uint64, results []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.searchToken || !s.searchOpen || s.closed {
		s.logger.Debug(msg.GetMessage("session.stale-search", token), zap.Uint64("token", token))
		return
	}
	s.suggestions = append([]string{}, results...)
	s.searchLoading = false
}

func (s *Session) issueInsightLocked() {
	s.insightToken++
	token := s.insightToken
	snapshot := s.weather
	s.insight = ""
	s.insightLoading = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		text := s.deps.Insight.Advise(s.ctx, snapshot)
		s.applyInsight(token, text)
	}()
}

func (s *Session) applyInsight(token uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.insightToken || s.closed {
		s.logger.Debug(msg.GetMessage("session.stale-insight", token), zap.Uint64("token", token))
		return
	}
	s.insight = text
	s.insightLoading = false
}

func (s *Session) resetSearchLocked() {
	s.cancelDebounceLocked()
	s.searchOpen = false
	s.searchTerm = ""
	s.suggestions = []string{}
	s.searchLoading = false
	s.searchToken++
}

func (s *Session) cancelDebounceLocked() {
	s.debouncer.Cancel()
	s.debounceSeq++
	if s.debouncePending {
		s.debouncePending = false
		s.wg.Done()
	}
}
