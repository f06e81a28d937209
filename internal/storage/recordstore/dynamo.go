package recordstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hyejin/scholarhub/internal/app/models"
	"github.com/hyejin/scholarhub/internal/pkg/logger"
)

// marshaledPartitionKey is the attribute name produced by the struct
// tags on models.StudentRecord.
const marshaledPartitionKey = "studentId"

// DynamoStore keeps one item per student in a DynamoDB table
type DynamoStore struct {
	client       *dynamodb.Client
	table        string
	partitionKey string
}

// NewDynamoStore creates a DynamoStore for the given table. partitionKey
// is the table's partition key attribute name; it holds the student
// identity.
func NewDynamoStore(client *dynamodb.Client, table, partitionKey string) *DynamoStore {
	return &DynamoStore{
		client:       client,
		table:        table,
		partitionKey: partitionKey,
	}
}

func (d *DynamoStore) key(studentID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		d.partitionKey: &types.AttributeValueMemberS{Value: studentID},
	}
}

// GetItem fetches the student's record; a missing item is (nil, nil)
func (d *DynamoStore) GetItem(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(studentID),
	})
	if err != nil {
		logger.Error().Err(err).Str("table", d.table).Str("studentId", studentID).Msg("DynamoDB get failed")
		return nil, fmt.Errorf("failed to get item for %s: %w", studentID, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	item := out.Item
	if d.partitionKey != marshaledPartitionKey {
		item[marshaledPartitionKey] = item[d.partitionKey]
	}

	record := &models.StudentRecord{}
	if err := attributevalue.UnmarshalMap(item, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item for %s: %w", studentID, err)
	}
	return record, nil
}

// PutItem writes the student's record, replacing any previous item
func (d *DynamoStore) PutItem(ctx context.Context, record *models.StudentRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal item for %s: %w", record.StudentID, err)
	}
	if d.partitionKey != marshaledPartitionKey {
		item[d.partitionKey] = item[marshaledPartitionKey]
		delete(item, marshaledPartitionKey)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		logger.Error().Err(err).Str("table", d.table).Str("studentId", record.StudentID).Msg("DynamoDB put failed")
		return fmt.Errorf("failed to put item for %s: %w", record.StudentID, err)
	}
	return nil
}

// AddSavedID adds a scholarship id to the saved set as a single atomic
// update; the table's per-key atomicity makes concurrent saves safe.
func (d *DynamoStore) AddSavedID(ctx context.Context, studentID, scholarshipID string) error {
	return d.updateSavedSet(ctx, studentID, scholarshipID, "ADD")
}

// RemoveSavedID removes a scholarship id from the saved set. Removing an
// absent id succeeds.
func (d *DynamoStore) RemoveSavedID(ctx context.Context, studentID, scholarshipID string) error {
	return d.updateSavedSet(ctx, studentID, scholarshipID, "DELETE")
}

func (d *DynamoStore) updateSavedSet(ctx context.Context, studentID, scholarshipID, action string) error {
	_, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(d.table),
		Key:              d.key(studentID),
		UpdateExpression: aws.String(action + " savedScholarshipIds :ids"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ids": &types.AttributeValueMemberSS{Value: []string{scholarshipID}},
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("table", d.table).Str("studentId", studentID).Str("scholarshipId", scholarshipID).Msg("DynamoDB saved-set update failed")
		return fmt.Errorf("failed to update saved set for %s: %w", studentID, err)
	}
	return nil
}
