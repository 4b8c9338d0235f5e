package serviceability

import (
	"hash/fnv"
	"slices"
	"sync"

	"serviceability/internal/domain/entity"
)

const indexShards = 64

// Index is the pincode -> merchant id reverse mapping. It holds ids only;
// merchant data is always read back through the Store.
//
// Buckets keep ids in the order they were linked. A bucket that becomes
// empty is dropped, so a pincode nobody services and a pincode never seen
// look the same to every reader.
type Index struct {
	shards [indexShards]indexShard
}

type indexShard struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
}

type bucket struct {
	order   []entity.MerchantID
	members map[entity.MerchantID]struct{}
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	index := &Index{}
	for i := range index.shards {
		index.shards[i].buckets = make(map[string]*bucket)
	}

	return index
}

func (i *Index) shard(pincode string) *indexShard {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(pincode))

	return &i.shards[hasher.Sum32()%indexShards]
}

// link adds id to the bucket of every pincode. Already linked pairs are left alone.
func (i *Index) link(id entity.MerchantID, pincodes []string) {
	for _, pincode := range pincodes {
		shard := i.shard(pincode)
		shard.mu.Lock()
		b, ok := shard.buckets[pincode]
		if !ok {
			b = &bucket{members: make(map[entity.MerchantID]struct{})}
			shard.buckets[pincode] = b
		}
		if _, linked := b.members[id]; !linked {
			b.members[id] = struct{}{}
			b.order = append(b.order, id)
		}
		shard.mu.Unlock()
	}
}

// unlink removes id from the bucket of every pincode. Missing pairs are ignored.
func (i *Index) unlink(id entity.MerchantID, pincodes []string) {
	for _, pincode := range pincodes {
		shard := i.shard(pincode)
		shard.mu.Lock()
		if b, ok := shard.buckets[pincode]; ok {
			if _, linked := b.members[id]; linked {
				delete(b.members, id)
				b.order = slices.DeleteFunc(b.order, func(member entity.MerchantID) bool {
					return member == id
				})
			}
			if len(b.members) == 0 {
				delete(shard.buckets, pincode)
			}
		}
		shard.mu.Unlock()
	}
}

// Query returns one entry per distinct input pincode. Unknown pincodes map
// to an empty, non-nil slice.
func (i *Index) Query(pincodes []string) map[string][]entity.MerchantID {
	result := make(map[string][]entity.MerchantID, len(pincodes))
	for _, pincode := range pincodes {
		if _, done := result[pincode]; done {
			continue
		}
		result[pincode] = i.Bucket(pincode)
	}

	return result
}

// Bucket returns a copy of the ids linked to pincode, in link order.
func (i *Index) Bucket(pincode string) []entity.MerchantID {
	shard := i.shard(pincode)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	b, ok := shard.buckets[pincode]
	if !ok {
		return []entity.MerchantID{}
	}

	return slices.Clone(b.order)
}

// Size returns the number of non-empty buckets.
func (i *Index) Size() int {
	total := 0
	for n := range i.shards {
		shard := &i.shards[n]
		shard.mu.RLock()
		total += len(shard.buckets)
		shard.mu.RUnlock()
	}

	return total
}
