package redis

import (
	"context"
	"strconv"

	"serviceability/internal/domain/entity"
	"serviceability/internal/domain/repository"
	"serviceability/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// serviceabilityMirror keeps one set per pincode, "<prefix><pincode>",
// whose members are merchant ids.
type serviceabilityMirror struct {
	client    goredis.Cmdable
	keyPrefix string
}

// NewServiceabilityMirror writes pincode sets through client.
func NewServiceabilityMirror(client goredis.Cmdable, keyPrefix string) repository.ServiceabilityMirror {
	return &serviceabilityMirror{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Link adds id to every pincode set in a single MULTI/EXEC.
func (m *serviceabilityMirror) Link(ctx context.Context, id entity.MerchantID, pincodes []string) error {
	if len(pincodes) == 0 {
		return nil
	}

	member := memberOf(id)
	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, pincode := range pincodes {
			pipe.SAdd(ctx, m.key(pincode), member)
		}

		return nil
	})

	return errors.Wrapf(err, "link merchant %d to %d pincode sets", id, len(pincodes))
}

// Unlink removes id from every pincode set in a single MULTI/EXEC.
// Redis drops a set once its last member is removed.
func (m *serviceabilityMirror) Unlink(ctx context.Context, id entity.MerchantID, pincodes []string) error {
	if len(pincodes) == 0 {
		return nil
	}

	member := memberOf(id)
	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, pincode := range pincodes {
			pipe.SRem(ctx, m.key(pincode), member)
		}

		return nil
	})

	return errors.Wrapf(err, "unlink merchant %d from %d pincode sets", id, len(pincodes))
}

func (m *serviceabilityMirror) key(pincode string) string {
	return m.keyPrefix + pincode
}

func memberOf(id entity.MerchantID) string {
	return strconv.FormatInt(int64(id), 10)
}
