package repository

import (
	"context"
	"time"

	"storegate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookSlugsTableName = "webhook_slugs"
	webhookSlugsConfigIDIndex    = "config_id-index"
)

type webhookSlugItem struct {
	Slug      string `dynamodbav:"slug"`
	ConfigID  string `dynamodbav:"payment_method_config_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// WebhookSlugDynamoRepository maps opaque routing slugs to configurations.
//
// Table requirements:
//   - PK: slug (string, an opaque generated token)
//   - GSI: config_id-index (PK: payment_method_config_id)

type WebhookSlugDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookSlugRepository = (*WebhookSlugDynamoRepository)(nil)

func NewWebhookSlugDynamoRepository(ddb *dynamodb.Client) *WebhookSlugDynamoRepository {
	return &WebhookSlugDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_SLUGS_TABLE", defaultWebhookSlugsTableName),
	}
}

func (r *WebhookSlugDynamoRepository) GetConfigIDBySlug(ctx context.Context, slug string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slug": &types.AttributeValueMemberS{Value: slug},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it webhookSlugItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.ConfigID, nil
}

func (r *WebhookSlugDynamoRepository) GetSlugByConfigID(ctx context.Context, configID string) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookSlugsConfigIDIndex),
		KeyConditionExpression: aws.String("payment_method_config_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: configID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var it webhookSlugItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.Slug, nil
}

func (r *WebhookSlugDynamoRepository) Create(ctx context.Context, slug, configID string) error {
	it := webhookSlugItem{
		Slug:      slug,
		ConfigID:  configID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#s)"),
		ExpressionAttributeNames: map[string]string{
			"#s": "slug",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrDuplicateRecord
	}
	return err
}
