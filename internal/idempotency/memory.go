package idempotency

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps records in process. It suits tests and single-instance deployments.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	record    Record
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Reserve(_ context.Context, key, fingerprint string, now time.Time, ttl time.Duration) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	entry, ok := s.records[key]
	if !ok || !now.Before(entry.expiresAt) {
		record := Record{Fingerprint: fingerprint, Status: StatusPending, CreatedAt: now}
		s.records[key] = memoryEntry{record: record, expiresAt: now.Add(ttl)}
		return Reservation{State: ReservationStateNew, Record: record}, nil
	}
	return reservationFor(entry.record, fingerprint)
}

func (s *MemoryStore) SaveResponse(_ context.Context, key, fingerprint string, resp Response, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if entry, ok := s.records[key]; ok && entry.record.Fingerprint != fingerprint {
		return ErrFingerprintMismatch
	}
	now := s.now()
	s.records[key] = memoryEntry{record: completedRecord(fingerprint, resp, now), expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
