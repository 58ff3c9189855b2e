package session

import (
	"context"
	"sync"
	"time"
)

// fakeStore is a map-backed Store for tests. Entries written with a
// non-positive TTL are treated as already reaped.
type fakeStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	putErr  error
	getErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*Record)}
}

func (f *fakeStore) Put(_ context.Context, key string, r *Record, ttl time.Duration) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if ttl <= 0 {
		delete(f.records, key)
		return nil
	}
	rec := *r
	f.records[key] = &rec
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (*Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	rec := *r
	return &rec, nil
}

// expire simulates the store reaping a key after its TTL elapsed.
func (f *fakeStore) expire(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, key)
}
