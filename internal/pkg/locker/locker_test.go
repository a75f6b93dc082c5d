package locker_test

import (
	"sync"
	"testing"
	"time"

	"fieldservice/internal/pkg/locker"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := locker.NewKeyedMutex()

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("crew-a")
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	km := locker.NewKeyedMutex()

	unlockA := km.Lock("crew-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("crew-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent key was blocked")
	}
}

func TestKeyedMutex_OverlappingSetsDoNotDeadlock(t *testing.T) {
	km := locker.NewKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := km.Lock("crew-a", "crew-b")
			time.Sleep(time.Microsecond)
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := km.Lock("crew-b", "crew-a")
			time.Sleep(time.Microsecond)
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock between overlapping key sets")
	}
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	km := locker.NewKeyedMutex()

	unlock := km.Lock("crew-a")
	unlock()
	assert.NotPanics(t, func() { unlock() })

	unlock = km.Lock("crew-a")
	unlock()
}

func TestKeyedMutex_DuplicateKeysAreCollapsed(t *testing.T) {
	km := locker.NewKeyedMutex()

	unlock := km.Lock("crew-a", "crew-a", "crew-a")
	unlock()
}
