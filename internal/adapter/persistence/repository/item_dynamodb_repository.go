package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemsTableName = "items"
	itemsCodeIndex        = "code-index"
)

type catalogItem struct {
	ID                string `dynamodbav:"id"`
	Code              string `dynamodbav:"code"`
	Name              string `dynamodbav:"name"`
	Category          string `dynamodbav:"category"`
	Description       string `dynamodbav:"description,omitempty"`
	UnitPrice         string `dynamodbav:"unit_price"`
	StockQuantity     int    `dynamodbav:"stock_quantity"`
	MinStockThreshold int    `dynamodbav:"min_stock_threshold"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ItemDynamoRepository persists catalog Items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// stock_quantity is a number attribute so AdjustStock can change it
// atomically with a guarded ADD.
type ItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb DynamoAPI) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(it))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *ItemDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Item, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Items) == 0 {
		return entities.Item{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Item{}, err
	}
	return fromCatalogItem(it), nil
}

// List returns the catalog ordered by item code.
func (r *ItemDynamoRepository) List(ctx context.Context) ([]entities.Item, error) {
	items := make([]entities.Item, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCatalogItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, nil
}

func (r *ItemDynamoRepository) Update(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(it))
	if err != nil {
		return entities.Item{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// AdjustStock adds delta to stock_quantity in a single conditional update.
// The condition keeps the stock non-negative; when it fails the item is
// re-read to tell a missing item (zero value) from a negative result
// (ErrNegativeStock).
func (r *ItemDynamoRepository) AdjustStock(ctx context.Context, id string, delta int) (entities.Item, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :min"),
		UpdateExpression:    aws.String("ADD #stock :delta SET #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
			":min":        &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#stock": "stock_quantity", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Item{}, err
		}
		current, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return entities.Item{}, getErr
		}
		if current.ID == "" {
			return entities.Item{}, nil
		}
		return entities.Item{}, interfaces.ErrNegativeStock
	}
	if len(out.Attributes) == 0 {
		return entities.Item{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Item{}, err
	}
	return fromCatalogItem(it), nil
}

func toCatalogItem(it entities.Item) catalogItem {
	return catalogItem{
		ID:                it.ID,
		Code:              it.Code,
		Name:              it.Name,
		Category:          string(it.Category),
		Description:       it.Description,
		UnitPrice:         decimalToString(it.UnitPrice),
		StockQuantity:     it.StockQuantity,
		MinStockThreshold: it.MinStockThreshold,
		CreatedAt:         formatTime(it.CreatedAt),
		UpdatedAt:         formatTime(it.UpdatedAt),
	}
}

func fromCatalogItem(it catalogItem) entities.Item {
	return entities.Item{
		ID:                it.ID,
		Code:              it.Code,
		Name:              it.Name,
		Category:          entities.ItemCategory(it.Category),
		Description:       it.Description,
		UnitPrice:         parseDecimal(it.UnitPrice),
		StockQuantity:     it.StockQuantity,
		MinStockThreshold: it.MinStockThreshold,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
