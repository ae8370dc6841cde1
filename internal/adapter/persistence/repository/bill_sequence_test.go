package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

func TestBillSequenceDynamo_Next(t *testing.T) {
	var counter int64
	fake := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if in.Key["name"].(*types.AttributeValueMemberS).Value != billCounterName {
				t.Fatalf("unexpected counter key")
			}
			counter++
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberN{Value: strconv.FormatInt(counter, 10)},
			}}, nil
		},
	}
	seq := NewBillSequenceDynamo(fake)

	for want := int64(1); want <= 3; want++ {
		got, err := seq.Next(context.Background())
		if err != nil || got != want {
			t.Fatalf("expected %d, got %d err=%v", want, got, err)
		}
	}
}

func TestBillSequenceDynamo_Errors(t *testing.T) {
	t.Run("update error", func(t *testing.T) {
		boom := errors.New("unavailable")
		seq := NewBillSequenceDynamo(&fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) { return nil, boom },
		})
		if _, err := seq.Next(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected unavailable, got %v", err)
		}
	})

	t.Run("missing value attribute", func(t *testing.T) {
		seq := NewBillSequenceDynamo(&fakeDynamo{})
		if _, err := seq.Next(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestBillSequenceRedis_StrictlyIncreasing(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	seq := NewBillSequenceRedis(client)
	seq.key = "test:sequence:bill_id"
	client.Del(ctx, seq.key)

	var last int64
	for i := 0; i < 5; i++ {
		id, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id <= last {
			t.Fatalf("id %d not greater than %d", id, last)
		}
		last = id
	}
	if last != 5 {
		t.Fatalf("expected 5 after five calls, got %d", last)
	}
}
