package lockmap

import (
	"sort"
	"sync"
)

// LockMap hands out one mutex per key so that writers contending on the same
// key serialize while unrelated keys proceed in parallel. Mutexes are created
// lazily and never reclaimed; the key space here (experience/date pairs with
// recent traffic) stays small enough that this is not a concern.
type LockMap struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *LockMap {
	return &LockMap{
		locks: map[string]*sync.Mutex{},
	}
}

func (l *LockMap) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}

	return lock
}

// Lock acquires the mutex for key and returns the matching unlock func.
func (l *LockMap) Lock(key string) func() {
	lock := l.get(key)
	lock.Lock()

	return lock.Unlock
}

// LockAll acquires the mutexes for every distinct key in ascending key order,
// so two callers locking overlapping key sets cannot deadlock. The returned
// func releases them in reverse order.
func (l *LockMap) LockAll(keys ...string) func() {
	distinct := map[string]struct{}{}
	for _, key := range keys {
		distinct[key] = struct{}{}
	}

	ordered := make([]string, 0, len(distinct))
	for key := range distinct {
		ordered = append(ordered, key)
	}

	sort.Strings(ordered)

	unlocks := make([]func(), 0, len(ordered))
	for _, key := range ordered {
		unlocks = append(unlocks, l.Lock(key))
	}

	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}
