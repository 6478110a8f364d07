package services

import (
	"context"
	"fmt"

	"commulink_server/models"
	"commulink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RecordStore is what the domain services need from storage: exact-key get, whole-item put,
// and a range query on a sort-key prefix. There is no delete and no multi-key transaction.
type RecordStore interface {
	GetItem(ctx context.Context, key models.Key) (map[string]types.AttributeValue, error)
	PutItem(ctx context.Context, key models.Key, entity models.EntityType, record any) error
	PutItemIfAbsent(ctx context.Context, key models.Key, entity models.EntityType, record any) error
	QueryByPrefix(ctx context.Context, pk, prefix string) ([]map[string]types.AttributeValue, error)
}

var _ RecordStore = (*DynamoService)(nil)

// entityOf reads the discriminant of a stored item. Items written before the discriminant
// existed are classified by their sort-key prefix.
func entityOf(item map[string]types.AttributeValue) (models.EntityType, bool) {
	if tag := utils.ExtractString(item, models.EntityTypeAttr); tag != "" {
		return models.EntityType(tag), true
	}
	return models.EntityFromSortKey(utils.ExtractString(item, models.SortKeyAttr))
}

// decodeRecord unmarshals item into out after checking that it holds a want record.
func decodeRecord(item map[string]types.AttributeValue, want models.EntityType, out any) error {
	got, ok := entityOf(item)
	if !ok || got != want {
		return fmt.Errorf("%w: item %q is %q, expected %q", ErrRecordType,
			utils.ExtractString(item, models.SortKeyAttr), got, want)
	}
	if err := attributevalue.UnmarshalMap(item, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s record: %w", want, err)
	}
	return nil
}

// decodeRecords decodes a query result into a non-nil slice.
func decodeRecords[T any](items []map[string]types.AttributeValue, want models.EntityType) ([]T, error) {
	records := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		if err := decodeRecord(item, want, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
