package library

import (
	"sync"
	"testing"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := newKeyMutex()

	const n = 100
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("a")
			defer km.Unlock("a")
			counter++
		}()
	}
	wg.Wait()

	if counter != n {
		t.Errorf("expected counter %d, got %d", n, counter)
	}
}

func TestKeyMutex_DistinctKeysIndependent(t *testing.T) {
	km := newKeyMutex()

	km.Lock("a")
	// A second key must not block while "a" is held.
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()
	<-done
	km.Unlock("a")
}

func TestKeyMutex_EntriesReleased(t *testing.T) {
	km := newKeyMutex()

	km.Lock("a")
	km.Unlock("a")

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Errorf("expected empty lock table, got %d entries", len(km.locks))
	}
}
