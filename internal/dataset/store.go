package dataset

import (
	"errors"
	"sync"
)

// ErrAlreadyPublished is returned when a second dataset is published.
var ErrAlreadyPublished = errors.New("dataset already published")

// Store hands the current dataset to concurrent readers. It serves Empty
// until Publish is called, and accepts exactly one Publish.
type Store struct {
	mu        sync.RWMutex
	current   *Dataset
	published bool
}

func NewStore() *Store {
	return &Store{current: Empty()}
}

func (s *Store) Publish(ds *Dataset) error {
	if ds == nil {
		return errors.New("dataset: nil dataset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.published {
		return ErrAlreadyPublished
	}
	s.current = ds
	s.published = true
	return nil
}

func (s *Store) Current() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Loaded() bool {
	return s.Current().Loaded()
}
