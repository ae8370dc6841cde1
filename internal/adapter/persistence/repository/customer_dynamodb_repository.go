package repository

import (
	"context"
	"errors"
	"sort"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName   = "customers"
	customersAccountNumberIndex = "account_number-index"
)

type customerItem struct {
	ID               string `dynamodbav:"id"`
	AccountNumber    string `dynamodbav:"account_number"`
	Name             string `dynamodbav:"name"`
	Address          string `dynamodbav:"address"`
	Phone            string `dynamodbav:"phone"`
	Email            string `dynamodbav:"email,omitempty"`
	RegistrationDate string `dynamodbav:"registration_date"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: account_number-index (PK: account_number)
type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersAccountNumberIndex),
		KeyConditionExpression: aws.String("account_number = :acc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc": &types.AttributeValueMemberS{Value: accountNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

// List returns customers ordered by account number.
func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var (
		customers []entities.Customer
		startKey  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it customerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			customers = append(customers, fromCustomerItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].AccountNumber < customers[j].AccountNumber
	})
	if customers == nil {
		customers = []entities.Customer{}
	}
	return customers, nil
}

// Update replaces the stored customer. A missing customer yields a zero value.
func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:               c.ID,
		AccountNumber:    c.AccountNumber,
		Name:             c.Name,
		Address:          c.Address,
		Phone:            c.Phone,
		Email:            c.Email,
		RegistrationDate: c.RegistrationDate,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:               it.ID,
		AccountNumber:    it.AccountNumber,
		Name:             it.Name,
		Address:          it.Address,
		Phone:            it.Phone,
		Email:            it.Email,
		RegistrationDate: it.RegistrationDate,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
