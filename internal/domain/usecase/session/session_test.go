package session

import (
	"context"
	"math"
	"math/rand/v2"
	"reflect"
	"sync"
	"testing"
	"time"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/usecase/forecast"

	"github.com/jonboulle/clockwork"
)

// gated lets a test decide when each fake call returns. Calls with no gate answer at once.
type gated struct {
	blocking bool
	started  chan string

	mu    sync.Mutex
	calls []string
	gates map[string]chan struct{}
}

func newGated(blocking bool) *gated {
	return &gated{blocking: blocking, started: make(chan string, 32), gates: make(map[string]chan struct{})}
}

func (g *gated) gate(key string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[key]
	if !ok {
		ch = make(chan struct{}, 1)
		g.gates[key] = ch
	}
	return ch
}

func (g *gated) release(key string) {
	g.gate(key) <- struct{}{}
}

// enter records the call and blocks until released. It reports false when ctx ended first.
func (g *gated) enter(ctx context.Context, key string) bool {
	g.mu.Lock()
	g.calls = append(g.calls, key)
	g.mu.Unlock()
	g.started <- key

	if !g.blocking {
		return true
	}
	select {
	case <-g.gate(key):
		return true
	case <-ctx.Done():
		return false
	}
}

func (g *gated) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type fakeSearch struct{ *gated }

func (f fakeSearch) Search(ctx context.Context, query string) []string {
	if !f.enter(ctx, query) {
		return []string{}
	}
	return []string{"result for " + query}
}

func (f fakeSearch) MaxResults() int { return 8 }

type fakeInsight struct{ *gated }

func (f fakeInsight) Advise(ctx context.Context, snapshot entity.WeatherSnapshot) string {
	if !f.enter(ctx, snapshot.Location) {
		return "cancelled"
	}
	return "tip for " + snapshot.Location
}

type fixture struct {
	clock   *clockwork.FakeClock
	search  fakeSearch
	insight fakeInsight
	deps    Dependencies
}

func newFixture(blockSearch, blockInsight bool) *fixture {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC))
	f := &fixture{
		clock:   clock,
		search:  fakeSearch{newGated(blockSearch)},
		insight: fakeInsight{newGated(blockInsight)},
	}
	f.deps = Dependencies{
		Search:         f.search,
		Forecast:       forecast.NewForecastUseCase(rand.New(rand.NewPCG(1, 1)), clock),
		Insight:        f.insight,
		Clock:          clock,
		DebounceWindow: 300 * time.Millisecond,
	}
	return f
}

func expectStarted(t *testing.T, g *gated, want string) {
	t.Helper()
	select {
	case got := <-g.started:
		if got != want {
			t.Fatalf("started %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("call for %q never started", want)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	st := s.State()
	if st.Tab != entity.TabHome || !st.DarkMode || st.Unit != entity.Celsius || !st.Notifications {
		t.Errorf("unexpected defaults %+v", st)
	}
	if st.TimeOfDay != entity.Day {
		t.Errorf("TimeOfDay = %s, want Day at 14:00", st.TimeOfDay)
	}
	if st.Weather.Location != DefaultLocation {
		t.Errorf("location = %q", st.Weather.Location)
	}
	if st.Insight != "tip for "+DefaultLocation || st.InsightLoading {
		t.Errorf("insight = %q loading %v", st.Insight, st.InsightLoading)
	}
}

func TestTypeSearchIssuesOneLookupAfterPause(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.OpenSearch()
	for _, term := range []string{"t", "to", "tok"} {
		s.TypeSearch(term)
		f.clock.Advance(50 * time.Millisecond)
	}
	if f.search.callCount() != 0 {
		t.Fatalf("lookup issued while typing")
	}

	f.clock.Advance(250 * time.Millisecond)
	expectStarted(t, f.search.gated, "tok")
	s.Wait()

	if f.search.callCount() != 1 {
		t.Errorf("lookups = %d, want 1", f.search.callCount())
	}
	st := s.State()
	if !reflect.DeepEqual(st.Search.Suggestions, []string{"result for tok"}) || st.Search.Loading {
		t.Errorf("search state %+v", st.Search)
	}
}

func TestStaleSearchResultIsDiscarded(t *testing.T) {
	f := newFixture(true, false)
	s := New("s1", f.deps)
	s.Wait()
	s.OpenSearch()

	s.TypeSearch("to")
	f.clock.Advance(300 * time.Millisecond)
	expectStarted(t, f.search.gated, "to")
	if !s.State().Search.Loading {
		t.Errorf("suggestions not marked loading")
	}

	s.TypeSearch("tok")
	f.clock.Advance(300 * time.Millisecond)
	expectStarted(t, f.search.gated, "tok")

	f.search.release("tok")
	f.search.release("to")
	s.Wait()

	if got := s.State().Search.Suggestions; !reflect.DeepEqual(got, []string{"result for tok"}) {
		t.Errorf("suggestions = %v, want the latest lookup only", got)
	}
}

func TestDismissedSearchDiscardsResult(t *testing.T) {
	f := newFixture(true, false)
	s := New("s1", f.deps)
	s.Wait()
	s.OpenSearch()

	s.TypeSearch("tok")
	f.clock.Advance(300 * time.Millisecond)
	expectStarted(t, f.search.gated, "tok")

	s.CloseSearch()
	f.search.release("tok")
	s.Wait()

	st := s.State().Search
	if st.Open || st.Term != "" || len(st.Suggestions) != 0 || st.Loading {
		t.Errorf("search state after dismiss %+v", st)
	}
}

func TestShortTermClearsSuggestions(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()
	s.OpenSearch()

	s.TypeSearch("tok")
	f.clock.Advance(300 * time.Millisecond)
	s.Wait()
	if len(s.State().Search.Suggestions) == 0 {
		t.Fatal("no suggestions for tok")
	}

	s.TypeSearch(" t ")
	f.clock.Advance(300 * time.Millisecond)
	s.Wait()
	if got := s.State().Search.Suggestions; len(got) != 0 {
		t.Errorf("suggestions = %v, want empty", got)
	}
	if f.search.callCount() != 1 {
		t.Errorf("lookups = %d, want 1", f.search.callCount())
	}
}

func TestSelectLocationClearsInsightAndDropsLateAnswers(t *testing.T) {
	f := newFixture(false, true)
	s := New("s1", f.deps)
	expectStarted(t, f.insight.gated, DefaultLocation)
	f.insight.release(DefaultLocation)
	s.Wait()

	s.SelectLocation("Oslo, NO")
	st := s.State()
	if st.Insight != "" || !st.InsightLoading || st.Weather.Location != "Oslo, NO" {
		t.Fatalf("insight not cleared on location change: %+v", st)
	}
	expectStarted(t, f.insight.gated, "Oslo, NO")

	s.SelectLocation("Lima, PE")
	expectStarted(t, f.insight.gated, "Lima, PE")

	f.insight.release("Lima, PE")
	f.insight.release("Oslo, NO")
	s.Wait()

	st = s.State()
	if st.Insight != "tip for Lima, PE" || st.InsightLoading {
		t.Errorf("insight = %q loading %v", st.Insight, st.InsightLoading)
	}
}

func TestRefreshInsight(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.RefreshInsight()
	s.Wait()
	if f.insight.callCount() != 2 {
		t.Errorf("insight calls = %d, want 2", f.insight.callCount())
	}
	if s.State().Insight != "tip for "+DefaultLocation {
		t.Errorf("insight = %q", s.State().Insight)
	}
}

func TestSubmitSearch(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.OpenSearch()
	s.SubmitSearch()
	if s.State().Weather.Location != DefaultLocation || !s.State().Search.Open {
		t.Fatal("blank submit changed state")
	}

	s.TypeSearch("  Tokyo, JP ")
	s.SubmitSearch()
	s.Wait()

	st := s.State()
	if st.Weather.Location != "  Tokyo, JP " {
		t.Errorf("location = %q, want the term as typed", st.Weather.Location)
	}
	if want := forecast.ConditionAt(forecast.Seed("  Tokyo, JP "), 0); st.Weather.Condition != want {
		t.Errorf("condition = %v, want %v from the untrimmed length", st.Weather.Condition, want)
	}
	if st.Search.Open || st.Search.Term != "" {
		t.Errorf("search not reset: %+v", st.Search)
	}
	if f.search.callCount() != 0 {
		t.Errorf("pending lookup survived submit")
	}
}

func TestSelectSuggestionAndFavorite(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.OpenSearch()
	s.SelectSuggestion("Rome, IT")
	s.Wait()
	if st := s.State(); st.Weather.Location != "Rome, IT" || st.Search.Open {
		t.Errorf("after suggestion %+v", st)
	}

	s.SetTab(entity.TabFavorites)
	s.SelectFavorite("Oslo, NO")
	s.Wait()
	if st := s.State(); st.Tab != entity.TabHome || st.Weather.Location != "Oslo, NO" {
		t.Errorf("after favorite tab %s location %q", st.Tab, st.Weather.Location)
	}
}

func TestSettings(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.ToggleTheme()
	s.SetUnit(entity.Fahrenheit)
	s.SetNotifications(false)
	s.SetTimeOfDay(entity.Night)

	st := s.State()
	if st.DarkMode || st.Notifications || st.TimeOfDay != entity.Night {
		t.Errorf("settings %+v", st)
	}
	if st.Unit != entity.Fahrenheit || st.Weather.Unit != entity.Fahrenheit || math.Abs(st.Weather.CurrentTemp-71.6) > 1e-9 {
		t.Errorf("weather not converted: unit %s temp %v", st.Weather.Unit, st.Weather.CurrentTemp)
	}

	s.SetDarkMode(true)
	if !s.State().DarkMode {
		t.Errorf("SetDarkMode ignored")
	}
}

func TestCloseIgnoresLateResults(t *testing.T) {
	f := newFixture(false, true)
	s := New("s1", f.deps)
	expectStarted(t, f.insight.gated, DefaultLocation)

	s.OpenSearch()
	s.TypeSearch("tok")
	s.Close()
	s.Wait()

	st := s.State()
	if st.Insight != "" {
		t.Errorf("insight applied after close: %q", st.Insight)
	}
	f.clock.Advance(time.Second)
	if f.search.callCount() != 0 {
		t.Errorf("debounced lookup ran after close")
	}

	s.SelectLocation("Oslo, NO")
	if s.State().Weather.Location != DefaultLocation {
		t.Errorf("closed session accepted a new location")
	}
}

func TestSupersededDebounceCallbackDoesNotSearch(t *testing.T) {
	f := newFixture(false, false)
	s := New("s1", f.deps)
	s.Wait()

	s.OpenSearch()
	s.TypeSearch("tok")
	s.mu.Lock()
	first := s.debounceSeq
	s.mu.Unlock()

	// A timer callback for "tok" that was already running when "toky" re-armed the debouncer.
	s.TypeSearch("toky")
	s.debounceElapsed(first)
	if f.search.callCount() != 0 {
		t.Fatalf("superseded callback issued a lookup")
	}

	f.clock.Advance(299 * time.Millisecond)
	if f.search.callCount() != 0 {
		t.Fatalf("lookup issued before the window elapsed")
	}
	f.clock.Advance(time.Millisecond)
	expectStarted(t, f.search.gated, "toky")
	s.Wait()

	if f.search.callCount() != 1 {
		t.Errorf("lookups = %d, want 1", f.search.callCount())
	}
}
