package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per player id so actions on the same
// player run one at a time while different players proceed in parallel.
// An id's mutex lives only while someone holds or waits for it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*refLock)}
}

// Lock acquires the mutex for key and returns its release function.
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &refLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		lm.release(key, l)
	}
}

func (lm *LockManager) release(key string, l *refLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// size reports how many keys currently have a mutex.
func (lm *LockManager) size() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
