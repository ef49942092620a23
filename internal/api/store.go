package api

import (
	"sync"

	"slidecraft/internal/slides"
)

// DeckStore holds the most recently generated deck. Concurrent generation
// requests race on completion order, not start order, so each request takes
// a sequence number up front and only the highest-numbered completion is
// kept. A slow older response can never clobber a newer one.
type DeckStore struct {
	mu      sync.Mutex
	nextSeq uint64
	seq     uint64
	deck    *slides.Deck
}

func NewDeckStore() *DeckStore {
	return &DeckStore{}
}

// Begin reserves a sequence number for a generation request that is about
// to start.
func (s *DeckStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Complete records the finished deck unless a request that started later
// has already completed. Returns whether the deck was kept.
func (s *DeckStore) Complete(seq uint64, deck *slides.Deck) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.seq {
		return false
	}
	s.seq = seq
	s.deck = deck
	return true
}

// Current returns the stored deck, or nil when nothing has been generated.
func (s *DeckStore) Current() *slides.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck
}
