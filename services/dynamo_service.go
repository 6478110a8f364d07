package services

import (
	"context"
	"errors"
	"fmt"

	"commulink_server/models"
	"commulink_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// API is the part of the DynamoDB client the record store uses. *dynamodb.Client satisfies it;
// tests inject an in-memory implementation.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoService is the record store: one table, every community in its own partition.
//
// Writes are whole-item overwrites. Two writers of the same key race and the last one wins;
// nothing here locks, versions or merges.
type DynamoService struct {
	Client    API
	TableName string
	Logger    *zap.Logger
}

// LoadAWSConfig loads the shared AWS configuration for the given region.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoService(client API, tableName string, logger *zap.Logger) *DynamoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DynamoService{Client: client, TableName: tableName, Logger: logger}
}

// CheckTable verifies that the table exists, is active, and has the composite PK/SK key
// schema the key encoding relies on.
func (ds *DynamoService) CheckTable(ctx context.Context) error {
	output, err := ds.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(ds.TableName),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return fmt.Errorf("table %s does not exist", ds.TableName)
		}
		return fmt.Errorf("failed to describe table %s: %w", ds.TableName, err)
	}

	table := output.Table
	if table == nil {
		return fmt.Errorf("table %s has no description", ds.TableName)
	}

	var hashKey, rangeKey string
	for _, k := range table.KeySchema {
		switch k.KeyType {
		case types.KeyTypeHash:
			hashKey = aws.ToString(k.AttributeName)
		case types.KeyTypeRange:
			rangeKey = aws.ToString(k.AttributeName)
		}
	}

	if hashKey != models.PartitionKeyAttr {
		return fmt.Errorf("table %s has partition key %q, expected %q", ds.TableName, hashKey, models.PartitionKeyAttr)
	}
	if rangeKey != models.SortKeyAttr {
		return fmt.Errorf("table %s has sort key %q, expected %q", ds.TableName, rangeKey, models.SortKeyAttr)
	}
	if table.TableStatus != types.TableStatusActive {
		return fmt.Errorf("table %s is not active (status: %s)", ds.TableName, table.TableStatus)
	}

	return nil
}

// GetItem returns the item stored at key, or nil when there is none.
func (ds *DynamoService) GetItem(ctx context.Context, key models.Key) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(ds.TableName),
		Key:       keyAttributes(key),
	})
	if err != nil {
		return nil, &StoreError{Op: "GetItem", Err: fmt.Errorf("table '%s': %w", ds.TableName, err)}
	}

	if len(output.Item) == 0 {
		return nil, nil
	}
	return output.Item, nil
}

// PutItem writes record at key, replacing whatever was there.
func (ds *DynamoService) PutItem(ctx context.Context, key models.Key, entity models.EntityType, record any) error {
	return ds.putItem(ctx, key, entity, record, false)
}

// PutItemIfAbsent writes record at key only if the key is free, returning ErrItemExists otherwise.
func (ds *DynamoService) PutItemIfAbsent(ctx context.Context, key models.Key, entity models.EntityType, record any) error {
	return ds.putItem(ctx, key, entity, record, true)
}

func (ds *DynamoService) putItem(ctx context.Context, key models.Key, entity models.EntityType, record any, ifAbsent bool) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return &StoreError{Op: "PutItem", Err: fmt.Errorf("failed to marshal %s record: %w", entity, err)}
	}
	item[models.PartitionKeyAttr] = utils.StringAttr(key.PK)
	item[models.SortKeyAttr] = utils.StringAttr(key.SK)
	item[models.EntityTypeAttr] = utils.StringAttr(string(entity))

	input := &dynamodb.PutItemInput{
		TableName: aws.String(ds.TableName),
		Item:      item,
	}
	if ifAbsent {
		input.ConditionExpression = aws.String("attribute_not_exists(#sk)")
		input.ExpressionAttributeNames = map[string]string{"#sk": models.SortKeyAttr}
	}

	ds.Logger.Debug("putting item",
		zap.String("table", ds.TableName),
		zap.String("pk", key.PK),
		zap.String("sk", key.SK),
		zap.Bool("conditional", ifAbsent),
	)

	if _, err := ds.Client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrItemExists
		}
		return &StoreError{Op: "PutItem", Err: fmt.Errorf("table '%s': %w", ds.TableName, err)}
	}
	return nil
}

// QueryByPrefix returns every item in partition pk whose sort key begins with prefix, in
// ascending sort-key order. All result pages are read.
func (ds *DynamoService) QueryByPrefix(ctx context.Context, pk, prefix string) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(ds.TableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :sk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": models.PartitionKeyAttr,
			"#sk": models.SortKeyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": utils.StringAttr(pk),
			":sk": utils.StringAttr(prefix),
		},
	}

	items := make([]map[string]types.AttributeValue, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := ds.Client.Query(ctx, input)
		if err != nil {
			return nil, &StoreError{Op: "Query", Err: fmt.Errorf("table '%s': %w", ds.TableName, err)}
		}
		items = append(items, output.Items...)

		if len(output.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}

	ds.Logger.Debug("queried items",
		zap.String("pk", pk),
		zap.String("prefix", prefix),
		zap.Int("count", len(items)),
	)
	return items, nil
}

func keyAttributes(key models.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.PartitionKeyAttr: utils.StringAttr(key.PK),
		models.SortKeyAttr:      utils.StringAttr(key.SK),
	}
}
