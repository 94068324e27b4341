package model

// FileMetadata represents a single item in the uploads DynamoDB table.
// One row is written per upload attempt, keyed by FileID.
type FileMetadata struct {
	FileID        string `dynamodbav:"fileId"`
	UserID        string `dynamodbav:"userId"`
	FileName      string `dynamodbav:"fileName"`
	FileSizeBytes int64  `dynamodbav:"fileSizeBytes"`
	ObjectKey     string `dynamodbav:"objectKey"`
	Status        string `dynamodbav:"status"`
	ContentType   string `dynamodbav:"contentType"`
	CreatedAt     string `dynamodbav:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt"`
	TTL           int64  `dynamodbav:"ttl"`
}

// Status constants for FileMetadata.Status. Every attempt ends in exactly
// one of these: the flow writes the object directly, so there is no pending
// state.
const (
	StatusUploaded = "UPLOADED"
	StatusRejected = "REJECTED"
	StatusFailed   = "FAILED"
)
