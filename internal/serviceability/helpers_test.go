package serviceability

import (
	"io"
	"log/slog"
	"slices"
	"testing"

	"serviceability/internal/domain/entity"
	"serviceability/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	validator, err := NewValidator("")
	require.NoError(t, err)

	return validator
}

func newMemoryRegistry(t *testing.T) *Registry {
	t.Helper()

	return NewRegistry(newTestValidator(t), nil, nil, newDiscardLogger(), Options{})
}

func newBackedRegistry(
	t *testing.T,
	txManager repository.TransactionManager,
	mirror repository.ServiceabilityMirror,
) *Registry {
	t.Helper()

	return NewRegistry(newTestValidator(t), txManager, mirror, newDiscardLogger(), Options{})
}

func profile(name string) entity.MerchantProfile {
	return entity.MerchantProfile{Name: name, BusinessCategory: "grocery", PhoneNumber: "9876543210"}
}

func mustCreate(t *testing.T, r *Registry, name string, pincodes ...string) *entity.Merchant {
	t.Helper()

	result, err := r.Create(t.Context(), NewMerchant{Profile: profile(name), Pincodes: pincodes})
	require.NoError(t, err)

	return result.Merchant
}

// requireLockstep fails when the store and the index disagree in either direction.
func requireLockstep(t *testing.T, r *Registry) {
	t.Helper()

	for _, summary := range r.store.List() {
		merchant, err := r.store.Get(summary.ID)
		require.NoError(t, err)
		for _, pincode := range merchant.Pincodes {
			require.Truef(t, r.index.contains(pincode, merchant.ID),
				"merchant %s services %s but is missing from its bucket", merchant.ID, pincode)
		}
	}

	for _, pincode := range r.index.pincodes() {
		bucket := r.index.Bucket(pincode)
		require.NotEmptyf(t, bucket, "empty bucket kept for %s", pincode)
		for _, id := range bucket {
			merchant, err := r.store.Get(id)
			require.NoErrorf(t, err, "bucket %s references unknown merchant %s", pincode, id)
			require.Truef(t, slices.Contains(merchant.Pincodes, pincode),
				"bucket %s holds merchant %s which does not service it", pincode, id)
		}
	}
}

// contains reports whether id is linked under pincode.
func (i *Index) contains(pincode string, id entity.MerchantID) bool {
	shard := i.shard(pincode)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	b, ok := shard.buckets[pincode]
	if !ok {
		return false
	}
	_, linked := b.members[id]

	return linked
}

// pincodes returns every pincode with at least one merchant, unordered.
func (i *Index) pincodes() []string {
	pincodes := make([]string, 0)
	for n := range i.shards {
		shard := &i.shards[n]
		shard.mu.RLock()
		for pincode := range shard.buckets {
			pincodes = append(pincodes, pincode)
		}
		shard.mu.RUnlock()
	}

	return pincodes
}
