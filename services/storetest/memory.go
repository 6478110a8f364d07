// Package storetest provides an in-memory stand-in for the DynamoDB API used by the record store.
package storetest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Memory keeps items per partition and sort key. It understands exactly the requests the
// record store sends: key lookups, whole-item puts (optionally guarded by attribute_not_exists)
// and begins_with queries bound to :pk and :sk.
type Memory struct {
	mu    sync.Mutex
	items map[string]map[string]map[string]types.AttributeValue

	// PageSize splits query results into pages when greater than zero.
	PageSize int

	// Errors returned instead of performing the call, when set.
	GetErr      error
	PutErr      error
	QueryErr    error
	DescribeErr error

	// Table is returned by DescribeTable. NewMemory fills in a valid PK/SK table.
	Table *types.TableDescription

	Gets    int
	Puts    int
	Queries int
}

func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]map[string]map[string]types.AttributeValue),
		Table: &types.TableDescription{
			TableName: aws.String("CommuLinkData"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("SK"), KeyType: types.KeyTypeRange},
			},
			TableStatus: types.TableStatusActive,
		},
	}
}

func (m *Memory) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	pk, sk := stringValue(params.Key["PK"]), stringValue(params.Key["SK"])
	item, ok := m.items[pk][sk]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: clone(item)}, nil
}

func (m *Memory) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Puts++

	if m.PutErr != nil {
		return nil, m.PutErr
	}

	pk, sk := stringValue(params.Item["PK"]), stringValue(params.Item["SK"])
	if pk == "" || sk == "" {
		return nil, errors.New("item is missing its key attributes")
	}

	partition, ok := m.items[pk]
	if !ok {
		partition = make(map[string]map[string]types.AttributeValue)
		m.items[pk] = partition
	}

	if cond := aws.ToString(params.ConditionExpression); strings.HasPrefix(cond, "attribute_not_exists") {
		if _, exists := partition[sk]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}

	partition[sk] = clone(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (m *Memory) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries++

	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	pk := stringValue(params.ExpressionAttributeValues[":pk"])
	prefix := stringValue(params.ExpressionAttributeValues[":sk"])

	partition := m.items[pk]
	keys := make([]string, 0, len(partition))
	for sk := range partition {
		if strings.HasPrefix(sk, prefix) {
			keys = append(keys, sk)
		}
	}
	sort.Strings(keys)

	if start := stringValue(params.ExclusiveStartKey["SK"]); start != "" {
		i := sort.SearchStrings(keys, start)
		if i < len(keys) && keys[i] == start {
			i++
		}
		keys = keys[i:]
	}

	output := &dynamodb.QueryOutput{}
	if m.PageSize > 0 && len(keys) > m.PageSize {
		keys = keys[:m.PageSize]
		last := partition[keys[len(keys)-1]]
		output.LastEvaluatedKey = map[string]types.AttributeValue{"PK": last["PK"], "SK": last["SK"]}
	}

	for _, sk := range keys {
		output.Items = append(output.Items, clone(partition[sk]))
	}
	output.Count = int32(len(output.Items))
	return output, nil
}

func (m *Memory) DescribeTable(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.DescribeErr != nil {
		return nil, m.DescribeErr
	}
	return &dynamodb.DescribeTableOutput{Table: m.Table}, nil
}

// Seed stores an item as-is, bypassing the record store.
func (m *Memory) Seed(item map[string]types.AttributeValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk, sk := stringValue(item["PK"]), stringValue(item["SK"])
	if m.items[pk] == nil {
		m.items[pk] = make(map[string]map[string]types.AttributeValue)
	}
	m.items[pk][sk] = clone(item)
}

// Item returns a copy of the stored item, or nil.
func (m *Memory) Item(pk, sk string) map[string]types.AttributeValue {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[pk][sk]
	if !ok {
		return nil
	}
	return clone(item)
}

// Len counts the items stored in partition pk.
func (m *Memory) Len(pk string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items[pk])
}

func clone(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func stringValue(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
