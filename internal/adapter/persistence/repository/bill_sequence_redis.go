package repository

import (
	"context"

	"bookshop_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const billSequenceKey = "bookshop:sequence:bill_id"

// BillSequenceRedis hands out bill ids with INCR, which is atomic across
// every process sharing the Redis instance.
type BillSequenceRedis struct {
	client *redis.Client
	key    string
}

var _ interfaces.IBillSequence = (*BillSequenceRedis)(nil)

func NewBillSequenceRedis(client *redis.Client) *BillSequenceRedis {
	return &BillSequenceRedis{client: client, key: billSequenceKey}
}

func (s *BillSequenceRedis) Next(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, s.key).Result()
}
