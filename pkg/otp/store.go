package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Store is an in-memory one-time-password store keyed by phone number.
// Entries expire after a fixed TTL and are removed on first successful verify.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	done    chan struct{}
}

type entry struct {
	code      string
	expiresAt time.Time
}

// NewStore creates a store with the given code TTL and starts a background
// sweep that drops expired entries.
func NewStore(ttl time.Duration, sweepInterval time.Duration) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.sweepLoop(sweepInterval)
	return s
}

// GenerateCode returns a random 6-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Put stores a code for the phone, replacing any previous one.
func (s *Store) Put(phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = entry{
		code:      code,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Verify checks the code for the phone. A matching, unexpired code is consumed
// so it cannot be replayed. Expired entries are dropped on access.
func (s *Store) Verify(phone, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[phone]
	if !ok {
		return false
	}

	if time.Now().After(e.expiresAt) {
		delete(s.entries, phone)
		return false
	}

	if e.code != code {
		return false
	}

	delete(s.entries, phone)
	return true
}

// Close stops the background sweep.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for phone, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, phone)
		}
	}
}
