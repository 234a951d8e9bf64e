package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoConfig holds configuration for the DynamoDB backend.
type DynamoConfig struct {
	// Table is the DynamoDB table holding one item per slot key.
	// The table needs a string partition key named "pk".
	// Default: "shopfront_slots"
	Table string
}

// DefaultDynamoConfig returns sensible defaults.
func DefaultDynamoConfig() DynamoConfig {
	return DynamoConfig{Table: "shopfront_slots"}
}

// validate ensures config values are within acceptable bounds.
func (c *DynamoConfig) validate() {
	if c.Table == "" {
		c.Table = "shopfront_slots"
	}
}

// slotRecord is the DynamoDB item layout for a slot.
type slotRecord struct {
	PK  string `dynamodbav:"pk"`
	Doc []byte `dynamodbav:"doc"`
}

// DynamoBackend stores each slot key as a single DynamoDB item. The whole
// snapshot travels as one blob attribute, preserving the store layer's
// replace-the-collection write semantics.
type DynamoBackend struct {
	client *dynamodb.Client
	config DynamoConfig
}

// NewDynamoBackend creates a DynamoDB backend over an existing client.
func NewDynamoBackend(client *dynamodb.Client, config DynamoConfig) *DynamoBackend {
	config.validate()
	return &DynamoBackend{client: client, config: config}
}

// Read returns the stored bytes for key.
func (d *DynamoBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.config.Table),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, false, err
	}
	if result.Item == nil {
		return nil, false, nil
	}

	var record slotRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, false, fmt.Errorf("unmarshal slot %s: %w", key, err)
	}
	return record.Doc, true, nil
}

// Write replaces the stored bytes for key.
func (d *DynamoBackend) Write(ctx context.Context, key string, data []byte) error {
	item, err := attributevalue.MarshalMap(slotRecord{PK: key, Doc: data})
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.config.Table),
		Item:      item,
	})
	return err
}

// Delete removes key. Deleting a missing key is a no-op.
func (d *DynamoBackend) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.config.Table),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
