package metastore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mwhitfield/user_uploads/internal/metastore"
	"github.com/mwhitfield/user_uploads/internal/model"
)

type fakeClient struct {
	putInput *dynamodb.PutItemInput
	putErr   error
	getInput *dynamodb.GetItemInput
	getItem  map[string]types.AttributeValue
	getErr   error
}

func (f *fakeClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInput = params
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func TestRecord(t *testing.T) {
	fake := &fakeClient{}
	store := metastore.New(fake, "uploads-table")

	meta := model.FileMetadata{
		FileID:        "file-001",
		UserID:        "u1",
		FileName:      "a.png",
		FileSizeBytes: 9,
		ObjectKey:     "users/u1/a.png",
		Status:        model.StatusUploaded,
		ContentType:   "image/png",
		CreatedAt:     "2026-02-25T12:00:00Z",
		UpdatedAt:     "2026-02-25T12:00:00Z",
	}
	if err := store.Record(context.Background(), meta); err != nil {
		t.Fatalf("Record: %v", err)
	}

	in := fake.putInput
	if in == nil {
		t.Fatal("PutItem was not called")
	}
	if got := aws.ToString(in.TableName); got != "uploads-table" {
		t.Errorf("table = %q, want %q", got, "uploads-table")
	}

	id, ok := in.Item["fileId"].(*types.AttributeValueMemberS)
	if !ok || id.Value != "file-001" {
		t.Errorf("fileId attribute = %#v, want S \"file-001\"", in.Item["fileId"])
	}
	status, ok := in.Item["status"].(*types.AttributeValueMemberS)
	if !ok || status.Value != model.StatusUploaded {
		t.Errorf("status attribute = %#v, want S %q", in.Item["status"], model.StatusUploaded)
	}
}

func TestRecordError(t *testing.T) {
	cause := errors.New("table throttled")
	store := metastore.New(&fakeClient{putErr: cause}, "uploads-table")

	err := store.Record(context.Background(), model.FileMetadata{FileID: "f1"})
	if !errors.Is(err, cause) {
		t.Errorf("Record error = %v, want wrapped %v", err, cause)
	}
}

func TestGet(t *testing.T) {
	want := model.FileMetadata{
		FileID:    "file-001",
		UserID:    "u1",
		ObjectKey: "users/u1/a.png",
		Status:    model.StatusUploaded,
	}
	item, err := attributevalue.MarshalMap(want)
	if err != nil {
		t.Fatalf("MarshalMap: %v", err)
	}

	fake := &fakeClient{getItem: item}
	store := metastore.New(fake, "uploads-table")

	got, err := store.Get(context.Background(), "file-001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != want {
		t.Errorf("Get = %+v, want %+v", *got, want)
	}

	key, ok := fake.getInput.Key["fileId"].(*types.AttributeValueMemberS)
	if !ok || key.Value != "file-001" {
		t.Errorf("key = %#v, want S \"file-001\"", fake.getInput.Key["fileId"])
	}
}

func TestGetNotFound(t *testing.T) {
	store := metastore.New(&fakeClient{}, "uploads-table")

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, metastore.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}
