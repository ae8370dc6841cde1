package repository

import (
	"context"
	"fmt"
	"strconv"

	"bookshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	billCounterName          = "bill_id"
)

// BillSequenceDynamo hands out bill ids from an atomic counter item.
//
// Table requirements:
//   - PK: name (string)
type BillSequenceDynamo struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillSequence = (*BillSequenceDynamo)(nil)

func NewBillSequenceDynamo(ddb DynamoAPI) *BillSequenceDynamo {
	return &BillSequenceDynamo{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (s *BillSequenceDynamo) Next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: billCounterName},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing value attribute", billCounterName)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
