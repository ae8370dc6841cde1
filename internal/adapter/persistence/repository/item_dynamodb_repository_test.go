package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleItem() entities.Item {
	return entities.Item{
		ID:                "i-1",
		Code:              "BOOK001",
		Name:              "Mathematics Grade 10",
		Category:          entities.ItemCategoryTextbook,
		UnitPrice:         decimal.RequireFromString("25.99"),
		StockQuantity:     50,
		MinStockThreshold: 10,
		CreatedAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func marshalItem(t *testing.T, it entities.Item) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toCatalogItem(it))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestCatalogItemMapping(t *testing.T) {
	in := sampleItem()
	av := marshalItem(t, in)

	price, ok := av["unit_price"].(*types.AttributeValueMemberS)
	if !ok || price.Value != "25.99" {
		t.Fatalf("unit_price must be stored as exact string, got %#v", av["unit_price"])
	}
	if _, ok := av["stock_quantity"].(*types.AttributeValueMemberN); !ok {
		t.Fatalf("stock_quantity must be a number attribute, got %#v", av["stock_quantity"])
	}

	var raw catalogItem
	if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := fromCatalogItem(raw)
	if out.ID != in.ID || !out.UnitPrice.Equal(in.UnitPrice) || out.StockQuantity != 50 || !out.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestItemDynamoRepository_AdjustStock(t *testing.T) {
	t.Run("success returns updated item", func(t *testing.T) {
		updated := sampleItem()
		updated.StockQuantity = 48
		fake := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				if v := in.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value; v != "-2" {
					t.Fatalf("unexpected delta %s", v)
				}
				if v := in.ExpressionAttributeValues[":min"].(*types.AttributeValueMemberN).Value; v != "2" {
					t.Fatalf("unexpected guard %s", v)
				}
				return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, updated)}, nil
			},
		}
		repo := NewItemDynamoRepository(fake)

		res, err := repo.AdjustStock(context.Background(), "i-1", -2)
		if err != nil || res.StockQuantity != 48 {
			t.Fatalf("unexpected result err=%v item=%+v", err, res)
		}
	})

	t.Run("condition failure on existing item is negative stock", func(t *testing.T) {
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: marshalItem(t, sampleItem())}, nil
			},
		}
		repo := NewItemDynamoRepository(fake)

		_, err := repo.AdjustStock(context.Background(), "i-1", -99)
		if !errors.Is(err, interfaces.ErrNegativeStock) {
			t.Fatalf("expected ErrNegativeStock, got %v", err)
		}
	})

	t.Run("condition failure on missing item is zero value", func(t *testing.T) {
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewItemDynamoRepository(fake)

		res, err := repo.AdjustStock(context.Background(), "gone", -1)
		if err != nil || res.ID != "" {
			t.Fatalf("expected zero item, got err=%v item=%+v", err, res)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) { return nil, boom },
		}
		repo := NewItemDynamoRepository(fake)

		if _, err := repo.AdjustStock(context.Background(), "i-1", 1); !errors.Is(err, boom) {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})
}

func TestItemDynamoRepository_ListPaginatesAndSorts(t *testing.T) {
	a, b, c := sampleItem(), sampleItem(), sampleItem()
	a.ID, a.Code = "1", "STAT001"
	b.ID, b.Code = "2", "BOOK002"
	c.ID, c.Code = "3", "BOOK001"

	calls := 0
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			calls++
			if calls == 1 {
				if in.ExclusiveStartKey != nil {
					t.Fatalf("first page must not carry a start key")
				}
				return &dynamodb.ScanOutput{
					Items:            []map[string]types.AttributeValue{marshalItem(t, a), marshalItem(t, b)},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "2"}},
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("second page must carry the start key")
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{marshalItem(t, c)}}, nil
		},
	}
	repo := NewItemDynamoRepository(fake)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(items) != 3 {
		t.Fatalf("expected 3 items over 2 pages, got %d items over %d pages", len(items), calls)
	}
	if items[0].Code != "BOOK001" || items[1].Code != "BOOK002" || items[2].Code != "STAT001" {
		t.Fatalf("unexpected order: %s %s %s", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestItemDynamoRepository_UpdateMissing(t *testing.T) {
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if *in.ConditionExpression != "attribute_exists(#id)" {
				t.Fatalf("update must require an existing item")
			}
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewItemDynamoRepository(fake)

	res, err := repo.Update(context.Background(), sampleItem())
	if err != nil || res.ID != "" {
		t.Fatalf("expected zero item, got err=%v item=%+v", err, res)
	}
}
