// Package locker provides an in-process keyed mutex used to serialize
// scheduling decisions that touch the same crew members. Keys are acquired in
// sorted order so two writers locking overlapping key sets can never deadlock.
package locker

import (
	"sort"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex is a set of named mutexes that are created on demand and dropped
// once the last holder releases them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Lock acquires the mutexes for every key in the set and returns a function
// releasing all of them. Keys are deduplicated and acquired in ascending order.
func (k *KeyedMutex) Lock(keys ...string) (unlock func()) {
	ordered := sortedUnique(keys)

	acquired := make([]*entry, 0, len(ordered))
	for _, key := range ordered {
		e := k.retain(key)
		e.mu.Lock()
		acquired = append(acquired, e)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(acquired) - 1; i >= 0; i-- {
				acquired[i].mu.Unlock()
				k.release(ordered[i])
			}
		})
	}
}

func (k *KeyedMutex) retain(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedMutex) release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}

func sortedUnique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
