package concurrency

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/testing/leaktest"
)

func TestLock_ReleasesIdleKeys(t *testing.T) {
	lm := NewLockManager()

	for i := 0; i < 50; i++ {
		unlock := lm.Lock(fmt.Sprintf("ghost-%d", i))
		unlock()
	}

	assert.Zero(t, lm.size())
}

func TestLock_KeepsKeyWhileContended(t *testing.T) {
	leaktest.Verify(t, 0)
	lm := NewLockManager()

	unlock := lm.Lock("alice")
	acquired := make(chan func())
	go func() { acquired <- lm.Lock("alice") }()

	require.Eventually(t, func() bool {
		lm.mu.Lock()
		defer lm.mu.Unlock()
		return lm.locks["alice"] != nil && lm.locks["alice"].refs == 2
	}, time.Second, time.Millisecond)

	unlock()
	second := <-acquired
	assert.Equal(t, 1, lm.size(), "the waiter still holds the key")
	second()
	assert.Zero(t, lm.size())
}

func TestLock_SerializesSameKey(t *testing.T) {
	leaktest.Verify(t, 0)
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("alice")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Zero(t, lm.size())
}

func TestLock_DifferentKeysIndependent(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.Lock("alice")
	defer unlockA()

	// Would deadlock if keys shared a mutex
	unlockB := lm.Lock("bob")
	unlockB()
}
