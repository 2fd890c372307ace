package oid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/golang-lru/arc/v2"
)

const defaultStoreCapacity = 1024

// Store is a bounded, in-memory content-addressed object store.
//
// Objects are keyed by the ObjectID of their content and grouped into
// shards following the Path convention. The backing Adaptive Replacement
// Cache (ARC) balances recency and frequency; once Capacity objects are
// resident, inserting another evicts one, so Store is a cache and never a
// system of record.
//
// All methods are safe for concurrent use by multiple goroutines.
type Store struct {
	capacity int
	alg      Algorithm

	// cache holds object contents. A slice must not be mutated once it has
	// been added.
	cache *arc.ARCCache[ObjectID, []byte]
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithCapacity bounds the number of resident objects.
func WithCapacity(n int) StoreOption {
	return func(s *Store) { s.capacity = n }
}

// WithAlgorithm selects the hash used to name stored objects.
func WithAlgorithm(alg Algorithm) StoreOption {
	return func(s *Store) { s.alg = alg }
}

// NewStore returns an empty Store. By default it holds 1024 objects named
// by SHA-1.
//
// Error semantics:
//   - ErrInvalidCapacity when WithCapacity was given a value < 1.
//   - ErrUnknownAlgorithm when WithAlgorithm names no supported variant.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{capacity: defaultStoreCapacity, alg: AlgSHA1}
	for _, opt := range opts {
		opt(s)
	}

	if s.capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, s.capacity)
	}
	if s.alg.Size() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, s.alg)
	}

	var err error
	s.cache, err = arc.NewARC[ObjectID, []byte](s.capacity)
	if err != nil {
		return nil, fmt.Errorf("create object cache: %w", err)
	}
	return s, nil
}

// Algorithm reports the hash the store names objects with.
func (s *Store) Algorithm() Algorithm { return s.alg }

// Put stores a copy of data and returns its identifier.
// Storing identical content again returns the same id.
func (s *Store) Put(data []byte) ObjectID {
	id, err := Sum(s.alg, data)
	if err != nil {
		// The algorithm was validated in NewStore.
		panic(err)
	}
	if !s.cache.Contains(id) {
		s.cache.Add(id, append([]byte(nil), data...))
	}
	return id
}

// Get returns the content stored under id.
// The returned slice is shared with the store and must not be modified.
func (s *Store) Get(id ObjectID) ([]byte, bool) {
	if id.IsZero() {
		return nil, false
	}
	return s.cache.Get(id)
}

// Has reports whether id is resident without touching its recency.
func (s *Store) Has(id ObjectID) bool {
	if id.IsZero() {
		return false
	}
	return s.cache.Contains(id)
}

// Remove evicts id if present.
func (s *Store) Remove(id ObjectID) {
	if id.IsZero() {
		return
	}
	s.cache.Remove(id)
}

// Len returns the number of resident objects.
func (s *Store) Len() int { return s.cache.Len() }

// Shards returns the sorted, distinct shard names of resident objects.
func (s *Store) Shards() []string {
	seen := make(map[string]struct{})
	for _, id := range s.cache.Keys() {
		seen[Shard(id)] = struct{}{}
	}
	shards := make([]string, 0, len(seen))
	for sh := range seen {
		shards = append(shards, sh)
	}
	slices.Sort(shards)
	return shards
}

// List returns the resident ids in shard, ordered by display string.
// An unknown shard yields an empty result.
func (s *Store) List(shard string) []ObjectID {
	var ids []ObjectID
	for _, id := range s.cache.Keys() {
		if Shard(id) == shard {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b ObjectID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
