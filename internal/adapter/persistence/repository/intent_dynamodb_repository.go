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

const (
	defaultPaymentIntentsTableName = "payment_intents"
	defaultSetupIntentsTableName   = "setup_intents"
)

type intentItem struct {
	BindingKey        string `dynamodbav:"binding_key"`
	OrderID           string `dynamodbav:"order_id"`
	ConfigID          string `dynamodbav:"payment_method_config_id"`
	Kind              string `dynamodbav:"kind"`
	ProcessorIntentID string `dynamodbav:"processor_intent_id"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// IntentDynamoRepository persists intent bindings for one kind; the payment
// and setup kinds get separate tables behind two instances.
//
// Table requirements:
//   - PK: binding_key (string, config#order)
//
// The conditional PutItem in Create enforces "at most one live intent per
// (order, config)"; Replace swaps the binding only while the stored
// processor intent id still matches the caller's snapshot.

type IntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	kind      entities.IntentKind
}

var _ interfaces.IIntentRepository = (*IntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *IntentDynamoRepository {
	return &IntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
		kind:      entities.IntentKindPayment,
	}
}

func NewSetupIntentDynamoRepository(ddb *dynamodb.Client) *IntentDynamoRepository {
	return &IntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETUP_INTENTS_TABLE", defaultSetupIntentsTableName),
		kind:      entities.IntentKindSetup,
	}
}

func (r *IntentDynamoRepository) GetByOrder(ctx context.Context, configID, orderID string) (entities.Intent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"binding_key": &types.AttributeValueMemberS{Value: configID + "#" + orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Intent{}, err
	}
	if len(out.Item) == 0 {
		return entities.Intent{}, nil
	}

	var it intentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Intent{}, err
	}
	return fromIntentItem(it), nil
}

func (r *IntentDynamoRepository) Create(ctx context.Context, i entities.Intent) error {
	it := intentItem{
		BindingKey:        i.BindingKey(),
		OrderID:           i.OrderID,
		ConfigID:          i.ConfigID,
		Kind:              string(i.Kind),
		ProcessorIntentID: i.ProcessorIntentID,
		CreatedAt:         i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#bk)"),
		ExpressionAttributeNames: map[string]string{
			"#bk": "binding_key",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrDuplicateRecord
	}
	return err
}

func (r *IntentDynamoRepository) Replace(ctx context.Context, i entities.Intent, priorProcessorIntentID string) error {
	it := intentItem{
		BindingKey:        i.BindingKey(),
		OrderID:           i.OrderID,
		ConfigID:          i.ConfigID,
		Kind:              string(i.Kind),
		ProcessorIntentID: i.ProcessorIntentID,
		CreatedAt:         i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#pid = :prior"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "processor_intent_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prior": &types.AttributeValueMemberS{Value: priorProcessorIntentID},
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrStateNotCurrent
	}
	return err
}

func fromIntentItem(it intentItem) entities.Intent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Intent{
		OrderID:           it.OrderID,
		ConfigID:          it.ConfigID,
		Kind:              entities.IntentKind(it.Kind),
		ProcessorIntentID: it.ProcessorIntentID,
		CreatedAt:         createdAt,
	}
}
