package bot

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/lookupbot/internal/model"
)

// resultSet is a completed search kept for export.
type resultSet struct {
	number  string
	records []model.Record
	expires time.Time
}

// exportStore keeps result sets until their export buttons time out.
type exportStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	sets map[string]resultSet
}

func newExportStore(ttl time.Duration) *exportStore {
	return &exportStore{
		ttl:  ttl,
		sets: make(map[string]resultSet),
	}
}

// Put stores records and returns the ID of the new result set.
func (s *exportStore) Put(number string, records []model.Record, now time.Time) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[id] = resultSet{
		number:  number,
		records: records,
		expires: now.Add(s.ttl),
	}
	return id
}

// Get returns the result set with the given ID unless it has expired.
func (s *exportStore) Get(id string, now time.Time) (resultSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[id]
	if !ok {
		return resultSet{}, false
	}
	if !now.Before(set.expires) {
		delete(s.sets, id)
		return resultSet{}, false
	}
	return set, true
}

// Sweep removes every expired result set and returns how many were removed.
func (s *exportStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, set := range s.sets {
		if !now.Before(set.expires) {
			delete(s.sets, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored result sets, expired or not.
func (s *exportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sets)
}

// RunSweeper removes expired result sets every interval until ctx is done.
func (b *Bot) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := b.exports.Sweep(b.now()); n > 0 {
				b.logger.Debug("expired result sets removed", "count", n)
			}
		}
	}
}
