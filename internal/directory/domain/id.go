package domain

import (
	"sync"
	"time"
)

// IDSource hands out time-derived ids that strictly increase, so an id is
// never reused even when two profiles are created in the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource(floor int64) *IDSource {
	return &IDSource{last: floor, now: time.Now}
}

// NewIDSourceWithClock is used by tests that need deterministic ids.
func NewIDSourceWithClock(floor int64, now func() time.Time) *IDSource {
	return &IDSource{last: floor, now: now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
