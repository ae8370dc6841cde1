package repository

import (
	"context"
	"testing"
	"time"

	"bookshop_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleBill(id int64) entities.Bill {
	return entities.Bill{
		ID:                    id,
		CustomerID:            "c-1",
		CustomerName:          "John Doe",
		CustomerAccountNumber: "CUST001",
		Date:                  "2024-05-01",
		Lines: []entities.CartLine{
			{ItemID: "i-1", ItemCode: "BOOK001", Name: "Mathematics Grade 10", UnitPrice: decimal.RequireFromString("25.99"), Quantity: 2},
		},
		Subtotal:  decimal.RequireFromString("51.98"),
		TaxRate:   decimal.RequireFromString("0.1"),
		Tax:       decimal.RequireFromString("5.2"),
		Total:     decimal.RequireFromString("57.18"),
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func marshalBill(t *testing.T, b entities.Bill) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestBillDynamoRepository_AppendIsConditional(t *testing.T) {
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if *in.ConditionExpression != "attribute_not_exists(#id)" {
				t.Fatalf("append must never overwrite a bill")
			}
			if id, ok := in.Item["id"].(*types.AttributeValueMemberN); !ok || id.Value != "7" {
				t.Fatalf("bill id must be a number key, got %#v", in.Item["id"])
			}
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewBillDynamoRepository(fake)

	b, err := repo.Append(context.Background(), sampleBill(7))
	if err != nil || b.ID != 7 {
		t.Fatalf("unexpected result err=%v bill=%+v", err, b)
	}
}

func TestBillDynamoRepository_GetByID(t *testing.T) {
	fake := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberN).Value == "7" {
				return &dynamodb.GetItemOutput{Item: marshalBill(t, sampleBill(7))}, nil
			}
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	repo := NewBillDynamoRepository(fake)

	b, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Total.Equal(decimal.RequireFromString("57.18")) || len(b.Lines) != 1 || b.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected bill: %+v", b)
	}
	if !b.Lines[0].UnitPrice.Equal(decimal.RequireFromString("25.99")) {
		t.Fatalf("line price lost: %s", b.Lines[0].UnitPrice)
	}

	missing, err := repo.GetByID(context.Background(), 8)
	if err != nil || missing.ID != 0 {
		t.Fatalf("expected zero bill, got err=%v bill=%+v", err, missing)
	}
}

func TestBillDynamoRepository_ListInIDOrder(t *testing.T) {
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if in.ConsistentRead == nil || !*in.ConsistentRead {
				t.Fatalf("bill scan must be strongly consistent")
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				marshalBill(t, sampleBill(3)),
				marshalBill(t, sampleBill(1)),
				marshalBill(t, sampleBill(2)),
			}}, nil
		},
	}
	repo := NewBillDynamoRepository(fake)

	bills, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range bills {
		if b.ID != int64(i+1) {
			t.Fatalf("position %d holds bill %d", i, b.ID)
		}
	}
}

func TestBillDynamoRepository_ListByCustomerIDQueriesIndex(t *testing.T) {
	calls := 0
	fake := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if *in.IndexName != billsCustomerIDIndex {
				t.Fatalf("unexpected index %s", *in.IndexName)
			}
			if v := in.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value; v != "c-1" {
				t.Fatalf("unexpected customer key %s", v)
			}
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{marshalBill(t, sampleBill(4))},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberN{Value: "4"}},
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("second page must resume from the last key")
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalBill(t, sampleBill(2))}}, nil
		},
	}
	repo := NewBillDynamoRepository(fake)

	bills, err := repo.ListByCustomerID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(bills) != 2 || bills[0].ID != 2 || bills[1].ID != 4 {
		t.Fatalf("unexpected bills after %d calls: %+v", calls, bills)
	}
}
