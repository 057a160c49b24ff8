package search

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"weather-pulse/internal/domain/gateway/directory"
	"weather-pulse/pkg/log"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	// MinQueryLength is the shortest trimmed query worth matching.
	MinQueryLength    = 2
	DefaultMaxResults = 8
)

// Options tunes the search. Zero latency bounds disable the simulated delay.
type Options struct {
	MaxResults int
	MinLatency time.Duration
	MaxLatency time.Duration
	Clock      clockwork.Clock
	Rand       *rand.Rand
}

type searchUseCase struct {
	directory  directory.CityDirectory
	maxResults int
	minLatency time.Duration
	maxLatency time.Duration
	clock      clockwork.Clock

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewSearchUseCase(dir directory.CityDirectory, opts Options) UseCase {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.MinLatency < 0 {
		opts.MinLatency = 0
	}
	if opts.MaxLatency < opts.MinLatency {
		opts.MaxLatency = opts.MinLatency
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &searchUseCase{
		directory:  dir,
		maxResults: opts.MaxResults,
		minLatency: opts.MinLatency,
		maxLatency: opts.MaxLatency,
		clock:      opts.Clock,
		rand:       opts.Rand,
	}
}

func (uc *searchUseCase) MaxResults() int {
	return uc.maxResults
}

// Search filters the directory by case-insensitive substring, ranks start-matches first
// and waits the simulated latency before answering.
func (uc *searchUseCase) Search(ctx context.Context, query string) []string {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return []string{}
	}

	if !uc.wait(ctx) {
		log.Debug("Search abandoned before latency elapsed", zap.String("query", trimmed))
		return []string{}
	}

	results := Rank(uc.directory.All(), trimmed, uc.maxResults)
	log.Debug("Search completed", zap.String("query", trimmed), zap.Int("results", len(results)))
	return results
}

// wait sleeps a uniformly random duration in [minLatency, maxLatency]. It reports false
// when ctx ended first.
func (uc *searchUseCase) wait(ctx context.Context) bool {
	delay := uc.latency()
	if delay <= 0 {
		return ctx.Err() == nil
	}

	select {
	case <-ctx.Done():
		return false
	case <-uc.clock.After(delay):
		return true
	}
}

func (uc *searchUseCase) latency() time.Duration {
	if uc.maxLatency <= 0 {
		return 0
	}
	spread := uc.maxLatency - uc.minLatency
	if spread <= 0 {
		return uc.minLatency
	}

	uc.randMu.Lock()
	defer uc.randMu.Unlock()
	return uc.minLatency + time.Duration(uc.rand.Int64N(int64(spread)+1))
}

// Rank returns the entries whose lower-cased form contains the lower-cased query, with
// entries starting with it first. Order within each tier follows entries. At most limit
// results are returned; limit <= 0 means no cap.
func Rank(entries []string, query string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []string{}
	}

	var starts, contains []string
	for _, entry := range entries {
		folded := strings.ToLower(entry)
		switch {
		case strings.HasPrefix(folded, needle):
			starts = append(starts, entry)
		case strings.Contains(folded, needle):
			contains = append(contains, entry)
		}
	}

	ranked := append(starts, contains...)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		return []string{}
	}
	return ranked
}
