// Package localstore implements storage.Store over a slot.Backend.
//
// Each collection lives in a single namespaced slot ("coversync_<entity>")
// holding the whole collection as one JSON array. Every operation is a
// read-modify-write of its collection's slot, serialized by a per-collection
// mutex: the read-whole/write-whole protocol is not safe under concurrent
// mutation (two concurrent creates would compute the same next id from a
// stale read).
//
// Collections are seeded lazily: the first read of a slot that has never
// been written materializes the seed dataset and persists it, so subsequent
// reads are stable. A slot holding an empty array is not reseeded.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/coversync/coversync/internal/storage"
	"github.com/coversync/coversync/internal/storage/slot"
)

// keyPrefix namespaces every slot key.
const keyPrefix = "coversync_"

// Collection names. Each maps to the slot key keyPrefix + name.
const (
	colClients      = "clients"
	colPolicies     = "policies"
	colClaims       = "claims"
	colPolicyTypes  = "policy_types"
	colUsers        = "users"
	colSmsTemplates = "sms_templates"
	colPartners     = "partners"
	colAudit        = "audit_log"
)

var collections = []string{
	colClients, colPolicies, colClaims, colPolicyTypes,
	colUsers, colSmsTemplates, colPartners, colAudit,
}

// Ensure Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store over a slot backend.
type Store struct {
	backend slot.Backend
	seed    Seed
	now     func() time.Time
	locks   map[string]*sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the store's clock. Used by tests to pin the renewal
// window and timestamp stamping.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed overrides the dataset materialized into never-written slots.
// Pass a zero Seed to start every collection empty.
func WithSeed(seed Seed) Option {
	return func(s *Store) { s.seed = seed }
}

// New creates a Store over the given backend. By default slots are seeded
// from DefaultSeed and timestamps come from time.Now.
func New(backend slot.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		seed:    DefaultSeed(),
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex, len(collections)),
	}
	for _, col := range collections {
		s.locks[col] = &sync.Mutex{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lock acquires the collection's mutex and returns the unlock function,
// for use as `defer s.lock(col)()`.
func (s *Store) lock(collection string) func() {
	mu := s.locks[collection]
	mu.Lock()
	return mu.Unlock
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// load reads a collection from its slot, seeding it on first access.
// The caller must hold the collection's lock.
func load[T any](ctx context.Context, s *Store, collection string, seed []T) ([]T, error) {
	payload, ok, err := s.backend.Get(ctx, keyPrefix+collection)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	if !ok {
		records := slices.Clone(seed)
		if records == nil {
			records = []T{}
		}
		if err := save(ctx, s, collection, records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", storage.ErrCorruptRecord, collection, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// save serializes the whole collection and overwrites its slot.
// The caller must hold the collection's lock.
func save[T any](ctx context.Context, s *Store, collection string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := s.backend.Put(ctx, keyPrefix+collection, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// nextID computes the max-scan sequential id: 1 + the highest existing id,
// or 1 for an empty collection.
func nextID[T any](records []T, id func(T) int64) int64 {
	var max int64
	for _, r := range records {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}
