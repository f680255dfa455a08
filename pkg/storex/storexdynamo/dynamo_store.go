package storexdynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/staffhive/staffhive/pkg/storex"
)

// DynamoStore implements storex.RecordStore on top of DynamoDB
type DynamoStore struct {
	client      *dynamodb.Client
	tablePrefix string
}

// NewDynamoStore creates a new DynamoDB-backed record store. The prefix is
// prepended to every table name so multiple environments can share one
// account.
func NewDynamoStore(client *dynamodb.Client, tablePrefix string) *DynamoStore {
	return &DynamoStore{
		client:      client,
		tablePrefix: tablePrefix,
	}
}

func (s *DynamoStore) tableName(table string) *string {
	return aws.String(s.tablePrefix + table)
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// GetItem loads a single item by id
func (s *DynamoStore) GetItem(ctx context.Context, table, id string, out any) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: s.tableName(table),
		Key:       keyOf(id),
	})
	if err != nil {
		return fmt.Errorf("get item %s/%s: %w", table, id, err)
	}

	if result.Item == nil {
		return storex.ErrItemNotFound
	}

	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("unmarshal item %s/%s: %w", table, id, err)
	}

	return nil
}

// PutItem writes the full item
func (s *DynamoStore) PutItem(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal item for %s: %w", table, err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: s.tableName(table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put item in %s: %w", table, err)
	}

	return nil
}

// DeleteItem removes an item by id; absent items are not an error
func (s *DynamoStore) DeleteItem(ctx context.Context, table, id string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.tableName(table),
		Key:       keyOf(id),
	}); err != nil {
		return fmt.Errorf("delete item %s/%s: %w", table, id, err)
	}
	return nil
}

// ScanItems reads the whole table into out. The store has no secondary
// indexes, so every filtered lookup above this layer is a scan.
func (s *DynamoStore) ScanItems(ctx context.Context, table string, out any) error {
	var items []map[string]types.AttributeValue

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: s.tableName(table),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("unmarshal scan of %s: %w", table, err)
	}

	return nil
}

// UpdateItem applies a shallow attribute patch to an existing item
func (s *DynamoStore) UpdateItem(ctx context.Context, table, id string, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}

	// Build the SET expression in sorted attribute order
	attrs := make([]string, 0, len(patch))
	for attr := range patch {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	names := make(map[string]string, len(patch))
	values := make(map[string]types.AttributeValue, len(patch))
	expr := "SET "

	for i, attr := range attrs {
		av, err := attributevalue.Marshal(patch[attr])
		if err != nil {
			return fmt.Errorf("marshal patch attribute %s: %w", attr, err)
		}

		nameKey := fmt.Sprintf("#a%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = attr
		values[valueKey] = av

		if i > 0 {
			expr += ", "
		}
		expr += nameKey + " = " + valueKey
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 s.tableName(table),
		Key:                       keyOf(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return storex.ErrItemNotFound
		}
		return fmt.Errorf("update item %s/%s: %w", table, id, err)
	}

	return nil
}
