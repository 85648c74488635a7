package service

import "sync"

// Locks serializes read-compute-write cycles per household. Different
// households proceed in parallel.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*householdLock
}

type householdLock struct {
	mu   sync.Mutex
	refs int
}

// NewLocks creates an empty lock set.
func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*householdLock)}
}

// Lock acquires the household's lock and returns its release func.
func (l *Locks) Lock(householdID string) func() {
	l.mu.Lock()
	hl := l.locks[householdID]
	if hl == nil {
		hl = &householdLock{}
		l.locks[householdID] = hl
	}
	hl.refs++
	l.mu.Unlock()

	hl.mu.Lock()
	return func() {
		hl.mu.Unlock()

		l.mu.Lock()
		hl.refs--
		if hl.refs == 0 {
			delete(l.locks, householdID)
		}
		l.mu.Unlock()
	}
}

// held returns the number of households with a waiter or holder.
func (l *Locks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
