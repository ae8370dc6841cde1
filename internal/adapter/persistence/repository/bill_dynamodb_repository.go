package repository

import (
	"context"
	"sort"
	"strconv"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName = "bills"
	billsCustomerIDIndex  = "customer_id-index"
)

type billLineItem struct {
	ItemID    string `dynamodbav:"item_id"`
	ItemCode  string `dynamodbav:"item_code"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
}

type billItem struct {
	ID                    int64          `dynamodbav:"id"`
	CustomerID            string         `dynamodbav:"customer_id"`
	CustomerName          string         `dynamodbav:"customer_name"`
	CustomerAccountNumber string         `dynamodbav:"customer_account_number"`
	Date                  string         `dynamodbav:"date"`
	Lines                 []billLineItem `dynamodbav:"lines"`
	Subtotal              string         `dynamodbav:"subtotal"`
	TaxRate               string         `dynamodbav:"tax_rate"`
	Tax                   string         `dynamodbav:"tax"`
	Total                 string         `dynamodbav:"total"`
	CreatedAt             string         `dynamodbav:"created_at"`
}

// BillDynamoRepository is the Bill Ledger on DynamoDB. Bills are written once
// and never updated.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: customer_id-index (PK: customer_id)
type BillDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb DynamoAPI) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Append(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return b.Clone(), nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

// List returns every bill in insertion order. Ids come from a strictly
// increasing sequence, so id order is insertion order.
func (r *BillDynamoRepository) List(ctx context.Context) ([]entities.Bill, error) {
	bills := make([]entities.Bill, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bills = append(bills, fromBillItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(bills, func(i, j int) bool { return bills[i].ID < bills[j].ID })
	return bills, nil
}

// ListByCustomerID queries the customer_id GSI. Index reads are eventually
// consistent, so a bill committed a moment ago may not show up yet.
func (r *BillDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Bill, error) {
	bills := make([]entities.Bill, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(billsCustomerIDIndex),
			KeyConditionExpression: aws.String("customer_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bills = append(bills, fromBillItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(bills, func(i, j int) bool { return bills[i].ID < bills[j].ID })
	return bills, nil
}

func toBillItem(b entities.Bill) billItem {
	lines := make([]billLineItem, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = billLineItem{
			ItemID:    l.ItemID,
			ItemCode:  l.ItemCode,
			Name:      l.Name,
			UnitPrice: decimalToString(l.UnitPrice),
			Quantity:  l.Quantity,
		}
	}
	return billItem{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		CustomerName:          b.CustomerName,
		CustomerAccountNumber: b.CustomerAccountNumber,
		Date:                  b.Date,
		Lines:                 lines,
		Subtotal:              decimalToString(b.Subtotal),
		TaxRate:               decimalToString(b.TaxRate),
		Tax:                   decimalToString(b.Tax),
		Total:                 decimalToString(b.Total),
		CreatedAt:             formatTime(b.CreatedAt),
	}
}

func fromBillItem(it billItem) entities.Bill {
	lines := make([]entities.CartLine, len(it.Lines))
	for i, l := range it.Lines {
		lines[i] = entities.CartLine{
			ItemID:    l.ItemID,
			ItemCode:  l.ItemCode,
			Name:      l.Name,
			UnitPrice: parseDecimal(l.UnitPrice),
			Quantity:  l.Quantity,
		}
	}
	return entities.Bill{
		ID:                    it.ID,
		CustomerID:            it.CustomerID,
		CustomerName:          it.CustomerName,
		CustomerAccountNumber: it.CustomerAccountNumber,
		Date:                  it.Date,
		Lines:                 lines,
		Subtotal:              parseDecimal(it.Subtotal),
		TaxRate:               parseDecimal(it.TaxRate),
		Tax:                   parseDecimal(it.Tax),
		Total:                 parseDecimal(it.Total),
		CreatedAt:             parseTime(it.CreatedAt),
	}
}
