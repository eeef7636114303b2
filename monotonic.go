package ulid

import "sync"

// Monotonic hands out strictly increasing ULIDs to concurrent callers by
// holding a lock around NextMonotonic.
//
// If the clock moves backwards, Monotonic keeps using the last timestamp it
// issued and increments from there.
type Monotonic struct {
	mu      sync.Mutex
	now     func() uint64
	last    ULID
	started bool
}

// NewMonotonic creates a Monotonic reading time from now. A nil now uses the
// wall clock.
func NewMonotonic(now func() uint64) *Monotonic {
	if now == nil {
		now = Now
	}
	return &Monotonic{now: now}
}

// Next returns the next ULID in the sequence.
func (m *Monotonic) Next() (ULID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := m.now()

	var (
		next ULID
		err  error
	)
	switch {
	case !m.started:
		next, err = NewAt(ms)
	case ms < m.last.Timestamp():
		next, err = NextMonotonic(m.last, m.last.Timestamp())
	default:
		next, err = NextMonotonic(m.last, ms)
	}
	if err != nil {
		return ULID{}, err
	}

	m.last = next
	m.started = true
	return next, nil
}

// Last returns the most recently issued ULID and whether one was issued.
func (m *Monotonic) Last() (ULID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.started
}
