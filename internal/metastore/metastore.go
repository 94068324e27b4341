// Package metastore persists one FileMetadata row per upload attempt in
// DynamoDB.
package metastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mwhitfield/user_uploads/internal/model"
)

// ErrNotFound is returned by Get when no row exists for the file ID.
var ErrNotFound = errors.New("file metadata not found")

// Client is the subset of the DynamoDB API the store uses.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Store reads and writes upload metadata rows.
type Store struct {
	client Client
	table  string
}

func New(client Client, table string) *Store {
	return &Store{client: client, table: table}
}

// Record writes the row for one upload attempt, overwriting any previous
// row with the same file ID.
func (s *Store) Record(ctx context.Context, meta model.FileMetadata) error {
	item, err := attributevalue.MarshalMap(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item %q: %w", meta.FileID, err)
	}
	return nil
}

// Get fetches the row for a file ID.
func (s *Store) Get(ctx context.Context, fileID string) (*model.FileMetadata, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"fileId": &types.AttributeValueMemberS{Value: fileID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item %q: %w", fileID, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var meta model.FileMetadata
	if err := attributevalue.UnmarshalMap(out.Item, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return &meta, nil
}
