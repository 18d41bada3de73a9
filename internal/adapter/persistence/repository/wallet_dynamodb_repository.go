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
	defaultWalletTableName = "wallet_sources"
	walletUserIDIndex      = "user_id-index"
)

type walletSourceItem struct {
	WalletKey                string `dynamodbav:"wallet_key"`
	UserID                   string `dynamodbav:"user_id"`
	ConfigID                 string `dynamodbav:"payment_method_config_id"`
	ProcessorPaymentMethodID string `dynamodbav:"processor_payment_method_id"`
	ProcessorCustomerID      string `dynamodbav:"processor_customer_id"`
	CreatedAt                string `dynamodbav:"created_at"`
}

// WalletDynamoRepository stores saved payment methods per user.
//
// Table requirements:
//   - PK: wallet_key (string, user#config#payment_method)
//   - GSI: user_id-index (PK: user_id)

type WalletDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWalletRepository = (*WalletDynamoRepository)(nil)

func NewWalletDynamoRepository(ddb *dynamodb.Client) *WalletDynamoRepository {
	return &WalletDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WALLET_SOURCES_TABLE", defaultWalletTableName),
	}
}

func (r *WalletDynamoRepository) Enroll(ctx context.Context, w entities.WalletSource) error {
	it := walletSourceItem{
		WalletKey:                w.WalletKey(),
		UserID:                   w.UserID,
		ConfigID:                 w.ConfigID,
		ProcessorPaymentMethodID: w.ProcessorPaymentMethodID,
		ProcessorCustomerID:      w.ProcessorCustomerID,
		CreatedAt:                w.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#wk)"),
		ExpressionAttributeNames: map[string]string{
			"#wk": "wallet_key",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrDuplicateRecord
	}
	return err
}

func (r *WalletDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.WalletSource, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(walletUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WalletSource, 0, len(out.Items))
	for _, raw := range out.Items {
		var it walletSourceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		items = append(items, entities.WalletSource{
			UserID:                   it.UserID,
			ConfigID:                 it.ConfigID,
			ProcessorPaymentMethodID: it.ProcessorPaymentMethodID,
			ProcessorCustomerID:      it.ProcessorCustomerID,
			CreatedAt:                createdAt,
		})
	}
	return items, nil
}
