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
	defaultRefundsTableName = "refunds"
	refundsPaymentIDIndex   = "payment_id-index"
)

type refundItem struct {
	TransactionReference string `dynamodbav:"transaction_reference"`
	PaymentID            string `dynamodbav:"payment_id"`
	Amount               int64  `dynamodbav:"amount"`
	Currency             string `dynamodbav:"currency"`
	Reason               string `dynamodbav:"reason"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// RefundDynamoRepository persists Refund entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_reference (string, the processor refund id)
//   - GSI: payment_id-index (PK: payment_id)
//
// Making the processor refund id the PK is what de-duplicates imports: a
// replayed refund event turns into a rejected conditional write.

type RefundDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRefundRepository = (*RefundDynamoRepository)(nil)

func NewRefundDynamoRepository(ddb *dynamodb.Client) *RefundDynamoRepository {
	return &RefundDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFUNDS_TABLE", defaultRefundsTableName),
	}
}

func (r *RefundDynamoRepository) Create(ctx context.Context, ref entities.Refund) error {
	it := refundItem{
		TransactionReference: ref.TransactionReference,
		PaymentID:            ref.PaymentID,
		Amount:               ref.Amount,
		Currency:             ref.Currency,
		Reason:               ref.Reason,
		CreatedAt:            ref.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tr)"),
		ExpressionAttributeNames: map[string]string{
			"#tr": "transaction_reference",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrDuplicateRecord
	}
	return err
}

func (r *RefundDynamoRepository) GetByTransactionReference(ctx context.Context, ref string) (entities.Refund, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_reference": &types.AttributeValueMemberS{Value: ref},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Refund{}, err
	}
	if len(out.Item) == 0 {
		return entities.Refund{}, nil
	}

	var it refundItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Refund{}, err
	}
	return fromRefundItem(it), nil
}

func (r *RefundDynamoRepository) ListByPayment(ctx context.Context, paymentID string) ([]entities.Refund, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(refundsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Refund, 0, len(out.Items))
	for _, raw := range out.Items {
		var it refundItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRefundItem(it))
	}
	return items, nil
}

func fromRefundItem(it refundItem) entities.Refund {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Refund{
		TransactionReference: it.TransactionReference,
		PaymentID:            it.PaymentID,
		Amount:               it.Amount,
		Currency:             it.Currency,
		Reason:               it.Reason,
		CreatedAt:            createdAt,
	}
}
