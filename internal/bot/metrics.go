package bot

import (
	"sync/atomic"
	"time"

	"github.com/nao1215/lookupbot/internal/present"
)

// Metrics holds the process-wide counters shown by the stats command.
type Metrics struct {
	start    time.Time
	searches atomic.Int64
}

// NewMetrics returns Metrics whose uptime is measured from start.
func NewMetrics(start time.Time) *Metrics {
	return &Metrics{start: start}
}

// IncSearches records one search that passed validation and returns the
// new total.
func (m *Metrics) IncSearches() int64 {
	return m.searches.Add(1)
}

// Searches returns the number of searches recorded so far.
func (m *Metrics) Searches() int64 {
	return m.searches.Load()
}

// Snapshot returns uptime and search count as of now.
// Guild and user counts are filled in by the caller.
func (m *Metrics) Snapshot(now time.Time) present.Stats {
	return present.Stats{
		Uptime:   now.Sub(m.start),
		Searches: m.searches.Load(),
	}
}
