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
	defaultPaymentLogTableName = "payment_log_entries"
	paymentLogPaymentIDIndex   = "payment_id-index"
)

type paymentLogItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
	Success   bool   `dynamodbav:"success"`
	Message   string `dynamodbav:"message"`
	Raw       string `dynamodbav:"raw,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentLogDynamoRepository is the append-only audit trail per payment.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)

type PaymentLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLogRepository = (*PaymentLogDynamoRepository)(nil)

func NewPaymentLogDynamoRepository(ddb *dynamodb.Client) *PaymentLogDynamoRepository {
	return &PaymentLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_LOG_TABLE", defaultPaymentLogTableName),
	}
}

func (r *PaymentLogDynamoRepository) Append(ctx context.Context, e entities.PaymentLogEntry) error {
	it := paymentLogItem{
		ID:        e.ID,
		PaymentID: e.PaymentID,
		Success:   e.Success,
		Message:   e.Message,
		Raw:       string(e.Raw),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentLogDynamoRepository) ListByPayment(ctx context.Context, paymentID string) ([]entities.PaymentLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentLogPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		items = append(items, entities.PaymentLogEntry{
			ID:        it.ID,
			PaymentID: it.PaymentID,
			Success:   it.Success,
			Message:   it.Message,
			Raw:       []byte(it.Raw),
			CreatedAt: createdAt,
		})
	}
	return items, nil
}
