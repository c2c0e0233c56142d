package testtools

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Stash holds identifiers shared by the tests of one package, such as the
// ARN of a topic created once and reused.
type Stash struct {
	mu     sync.Mutex
	values map[string]string
	flight singleflight.Group
}

func NewStash() *Stash {
	return &Stash{values: make(map[string]string)}
}

func (s *Stash) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Stash) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Take removes key and returns its value.
func (s *Stash) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	delete(s.values, key)
	return v, ok
}

// GetOrCreate returns the stashed value of key, calling create and stashing
// its result when there is none. Concurrent callers for the same key share
// one create call. create runs without the stash locked, so it may read and
// write other keys, but must not call GetOrCreate for key itself. A failed
// create stashes nothing.
func (s *Stash) GetOrCreate(key string, create func() (string, error)) (string, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err, _ := s.flight.Do(key, func() (any, error) {
		// a flight for key may have finished since the lookup above
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		v, err := create()
		if err != nil {
			return "", err
		}
		s.Set(key, v)
		return v, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
