package lockmap_test

import (
	"sync"
	"testing"
	"time"
	"wander/shared/lockmap"

	"github.com/stretchr/testify/assert"
)

func TestLockMap_SerializesSameKey(t *testing.T) {
	locks := lockmap.New()

	const workers = 16

	counter := 0

	var wg sync.WaitGroup

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			unlock := locks.Lock("experience-1|2025-06-01")
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLockMap_IndependentKeysDoNotBlock(t *testing.T) {
	locks := lockmap.New()

	unlockA := locks.Lock("experience-1|2025-06-01")
	defer unlockA()

	done := make(chan struct{})

	go func() {
		unlockB := locks.Lock("experience-2|2025-06-01")
		defer unlockB()

		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on an unrelated key blocked")
	}
}

func TestLockMap_LockAllOverlappingKeys(t *testing.T) {
	locks := lockmap.New()

	var wg sync.WaitGroup

	counter := 0

	wg.Add(2)

	go func() {
		defer wg.Done()

		unlock := locks.LockAll("b", "a")
		defer unlock()

		counter++
	}()

	go func() {
		defer wg.Done()

		unlock := locks.LockAll("a", "b")
		defer unlock()

		counter++
	}()

	wg.Wait()

	assert.Equal(t, 2, counter)
}

func TestLockMap_LockAllDeduplicatesKeys(t *testing.T) {
	locks := lockmap.New()

	// Same key twice must not self-deadlock.
	unlock := locks.LockAll("a", "a")
	unlock()

	unlock = locks.Lock("a")
	unlock()
}
