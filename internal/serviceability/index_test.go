package serviceability

import (
	"testing"

	"serviceability/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_LinkKeepsInsertionOrderAndIgnoresDuplicates(t *testing.T) {
	index := NewIndex()
	index.link(3, []string{"110001"})
	index.link(1, []string{"110001"})
	index.link(3, []string{"110001"})
	index.link(2, []string{"110001"})

	assert.Equal(t, []entity.MerchantID{3, 1, 2}, index.Bucket("110001"))
}

func TestIndex_UnlinkDropsEmptyBuckets(t *testing.T) {
	index := NewIndex()
	index.link(1, []string{"110001", "110002"})
	index.link(2, []string{"110002"})

	index.unlink(1, []string{"110001", "110002", "560001"})

	assert.False(t, index.contains("110001", 1))
	assert.Equal(t, []entity.MerchantID{2}, index.Bucket("110002"))
	assert.Equal(t, 1, index.Size())
	assert.ElementsMatch(t, []string{"110002"}, index.pincodes())

	index.unlink(2, []string{"110002"})
	assert.Zero(t, index.Size())
}

func TestIndex_QueryReturnsOneEntryPerDistinctPincode(t *testing.T) {
	index := NewIndex()
	index.link(7, []string{"110001"})

	result := index.Query([]string{"110001", "999999", "110001"})

	require.Len(t, result, 2)
	assert.Equal(t, []entity.MerchantID{7}, result["110001"])
	require.NotNil(t, result["999999"])
	assert.Empty(t, result["999999"])
}

func TestIndex_BucketIsACopy(t *testing.T) {
	index := NewIndex()
	index.link(1, []string{"110001"})

	bucket := index.Bucket("110001")
	bucket[0] = 99

	assert.Equal(t, []entity.MerchantID{1}, index.Bucket("110001"))
}
