package impl

import (
	"context"
	"testing"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/errors"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticDirectory serves fixed buckets and entries, standing in for a registry
// caught between the index read and the store read.
type staticDirectory struct {
	buckets map[string][]entity.MerchantID
	entries map[entity.MerchantID]serviceability.Entry
}

func (d *staticDirectory) Query(pincodes []string) map[string][]entity.MerchantID {
	return d.Buckets(pincodes)
}

func (d *staticDirectory) Buckets(pincodes []string) map[string][]entity.MerchantID {
	result := make(map[string][]entity.MerchantID, len(pincodes))
	for _, pincode := range entity.UniquePincodes(pincodes) {
		result[pincode] = append([]entity.MerchantID{}, d.buckets[pincode]...)
	}

	return result
}

func (d *staticDirectory) Lookup(ids []entity.MerchantID) map[entity.MerchantID]serviceability.Entry {
	result := make(map[entity.MerchantID]serviceability.Entry, len(ids))
	for _, id := range ids {
		result[id] = d.entries[id]
	}

	return result
}

func (d *staticDirectory) Get(id entity.MerchantID) (*entity.Merchant, error) {
	entry, ok := d.entries[id]
	if !ok || entry.Presence != serviceability.PresenceLive {
		return nil, domainerrors.ErrMerchantNotFound
	}

	return entry.Merchant, nil
}

func TestQueryService_Query(t *testing.T) {
	registry := newTestRegistry(t)
	a := seedMerchant(t, registry, "A", "110001")
	m := newTestMetrics()
	srv := NewQueryService(registry, m, newDiscardLogger())

	result, err := srv.Query(context.Background(), []string{"110001", "999999", "110001"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]entity.MerchantID{
		"110001": {a.ID},
		"999999": {},
	}, result)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("raw")))
}

func TestQueryService_ResolveServiceability(t *testing.T) {
	registry := newTestRegistry(t)
	a := seedMerchant(t, registry, "A", "110001", "110002")
	b := seedMerchant(t, registry, "B", "110001")
	srv := NewQueryService(registry, newTestMetrics(), newDiscardLogger())

	result, err := srv.ResolveServiceability(context.Background(), []string{"110001", "110002", "999999"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]usecase.ServiceableMerchant{
		"110001": {{ID: a.ID, Name: "A"}, {ID: b.ID, Name: "B"}},
		"110002": {{ID: a.ID, Name: "A"}},
		"999999": {},
	}, result)
}

func TestQueryService_ResolveServiceability_TombstonesAndPending(t *testing.T) {
	live := &entity.Merchant{ID: 1, Name: "Live"}
	directory := &staticDirectory{
		buckets: map[string][]entity.MerchantID{
			"110001": {1, 2, 3},
		},
		entries: map[entity.MerchantID]serviceability.Entry{
			1: {Presence: serviceability.PresenceLive, Merchant: live},
			2: {Presence: serviceability.PresenceGone},
			3: {Presence: serviceability.PresencePending},
		},
	}
	m := newTestMetrics()
	srv := &queryService{directory: directory, metrics: m, logger: newDiscardLogger()}

	result, err := srv.ResolveServiceability(context.Background(), []string{"110001"})
	require.NoError(t, err)

	assert.Equal(t, []usecase.ServiceableMerchant{
		{ID: 1, Name: "Live"},
		{ID: 2, Tombstone: true},
	}, result["110001"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Tombstones))
}

func TestQueryService_ResolveServiceability_CancelledContext(t *testing.T) {
	srv := NewQueryService(newTestRegistry(t), newTestMetrics(), newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := srv.ResolveServiceability(ctx, []string{"110001"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domainerrors.ErrRequestCanceled)
}

func TestQueryService_Detail(t *testing.T) {
	registry := newTestRegistry(t)
	a := seedMerchant(t, registry, "A", "110001")
	srv := NewQueryService(registry, newTestMetrics(), newDiscardLogger())

	merchant, err := srv.Detail(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, merchant.ID)
	assert.Equal(t, []string{"110001"}, merchant.Pincodes)

	_, err = srv.Detail(context.Background(), entity.MerchantID(404))
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantNotFound))
}
