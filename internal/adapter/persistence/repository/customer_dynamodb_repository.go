package repository

import (
	"context"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	SourceKey           string `dynamodbav:"source_key"`
	ConfigID            string `dynamodbav:"payment_method_config_id"`
	SourceType          string `dynamodbav:"source_type"`
	SourceID            string `dynamodbav:"source_id"`
	ProcessorCustomerID string `dynamodbav:"processor_customer_id"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists Customer join rows in DynamoDB.
//
// Table requirements:
//   - PK: source_key (string, config#source_type#source_id)
//
// The conditional PutItem on source_key is the uniqueness constraint the
// find-or-create race relies on.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetBySource(ctx context.Context, configID string, source entities.CustomerSource) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"source_key": &types.AttributeValueMemberS{Value: source.Key(configID)},
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

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) error {
	it := customerItem{
		SourceKey:           entities.CustomerSource{Type: c.SourceType, ID: c.SourceID}.Key(c.ConfigID),
		ConfigID:            c.ConfigID,
		SourceType:          string(c.SourceType),
		SourceID:            c.SourceID,
		ProcessorCustomerID: c.ProcessorCustomerID,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "source_key",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrDuplicateRecord
	}
	return err
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Customer{
		ConfigID:            it.ConfigID,
		SourceType:          entities.CustomerSourceType(it.SourceType),
		SourceID:            it.SourceID,
		ProcessorCustomerID: it.ProcessorCustomerID,
		CreatedAt:           createdAt,
	}
}
