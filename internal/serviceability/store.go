package serviceability

import (
	"slices"
	"sync"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
)

const storeShards = 32

// Presence describes how a merchant id resolves in the store at one instant.
type Presence uint8

const (
	// PresenceGone means the record does not exist or is being deleted.
	PresenceGone Presence = iota
	// PresencePending means the record is staged by an in-flight create and not yet readable.
	PresencePending
	// PresenceLive means the record is fully committed.
	PresenceLive
)

type recordState uint8

const (
	statePending recordState = iota
	stateLive
	stateDeleting
)

type record struct {
	merchant *entity.Merchant
	state    recordState
}

// Store owns merchant records. Records are sharded by id; every shard has
// its own RW lock so writers on different merchants rarely meet.
//
// A record moves pending -> live -> deleting -> removed. Only live records
// are visible to Get and List.
type Store struct {
	shards [storeShards]storeShard
}

type storeShard struct {
	mu      sync.RWMutex
	records map[entity.MerchantID]*record
}

// NewStore creates an empty store.
func NewStore() *Store {
	store := &Store{}
	for i := range store.shards {
		store.shards[i].records = make(map[entity.MerchantID]*record)
	}

	return store
}

func (s *Store) shard(id entity.MerchantID) *storeShard {
	return &s.shards[uint64(id)%storeShards]
}

// stage inserts a record that readers cannot see yet.
func (s *Store) stage(merchant *entity.Merchant) {
	shard := s.shard(merchant.ID)
	shard.mu.Lock()
	shard.records[merchant.ID] = &record{merchant: merchant.Clone(), state: statePending}
	shard.mu.Unlock()
}

func (s *Store) setState(id entity.MerchantID, state recordState) {
	shard := s.shard(id)
	shard.mu.Lock()
	if rec, ok := shard.records[id]; ok {
		rec.state = state
	}
	shard.mu.Unlock()
}

// publish makes a staged record visible.
func (s *Store) publish(id entity.MerchantID) {
	s.setState(id, stateLive)
}

// hide makes a record invisible ahead of its removal.
func (s *Store) hide(id entity.MerchantID) {
	s.setState(id, stateDeleting)
}

func (s *Store) remove(id entity.MerchantID) {
	shard := s.shard(id)
	shard.mu.Lock()
	delete(shard.records, id)
	shard.mu.Unlock()
}

// mutate applies fn to a live record under the shard write lock.
func (s *Store) mutate(id entity.MerchantID, fn func(merchant *entity.Merchant)) bool {
	shard := s.shard(id)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	rec, ok := shard.records[id]
	if !ok || rec.state != stateLive {
		return false
	}
	fn(rec.merchant)

	return true
}

// Get returns a copy of a live merchant.
func (s *Store) Get(id entity.MerchantID) (*entity.Merchant, error) {
	shard := s.shard(id)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	rec, ok := shard.records[id]
	if !ok || rec.state != stateLive {
		return nil, domainerrors.ErrMerchantNotFound.WithDetails("merchant " + id.String() + " does not exist")
	}

	return rec.merchant.Clone(), nil
}

// List returns the summaries of all live merchants in insertion (id) order.
func (s *Store) List() []entity.MerchantSummary {
	summaries := make([]entity.MerchantSummary, 0)
	for i := range s.shards {
		shard := &s.shards[i]
		shard.mu.RLock()
		for _, rec := range shard.records {
			if rec.state == stateLive {
				summaries = append(summaries, rec.merchant.Summary())
			}
		}
		shard.mu.RUnlock()
	}

	slices.SortFunc(summaries, func(a, b entity.MerchantSummary) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return summaries
}

// Entry is the result of looking an id up in the store.
type Entry struct {
	Presence Presence
	Merchant *entity.Merchant // Set only for PresenceLive.
}

// Lookup resolves ids in one pass. Unknown ids map to PresenceGone.
func (s *Store) Lookup(ids []entity.MerchantID) map[entity.MerchantID]Entry {
	entries := make(map[entity.MerchantID]Entry, len(ids))
	for _, id := range ids {
		if _, done := entries[id]; done {
			continue
		}
		entries[id] = s.presence(id)
	}

	return entries
}

func (s *Store) presence(id entity.MerchantID) Entry {
	shard := s.shard(id)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	rec, ok := shard.records[id]
	if !ok {
		return Entry{Presence: PresenceGone}
	}

	switch rec.state {
	case stateLive:
		return Entry{Presence: PresenceLive, Merchant: rec.merchant.Clone()}
	case statePending:
		return Entry{Presence: PresencePending}
	default:
		return Entry{Presence: PresenceGone}
	}
}

// Len returns the number of live merchants.
func (s *Store) Len() int {
	total := 0
	for i := range s.shards {
		shard := &s.shards[i]
		shard.mu.RLock()
		for _, rec := range shard.records {
			if rec.state == stateLive {
				total++
			}
		}
		shard.mu.RUnlock()
	}

	return total
}
