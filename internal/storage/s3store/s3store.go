// Package s3store implements the object store on AWS S3.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/mwhitfield/user_uploads/internal/storage"
)

// Client is the subset of the S3 API the store uses.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Store writes objects to a single S3 bucket.
type Store struct {
	client        Client
	bucket        string
	publicBaseURL string
}

// New returns a Store for the given bucket. publicBaseURL overrides the
// default virtual-hosted URL when objects are served through a CDN; pass ""
// to use the bucket's own endpoint.
func New(client Client, bucket, publicBaseURL string) *Store {
	return &Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (s *Store) Write(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

func (s *Store) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func (s *Store) Metadata(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr smithy.APIError
		if errors.As(err, &aerr) && (aerr.ErrorCode() == "NotFound" || aerr.ErrorCode() == "NoSuchKey") {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("head object %q: %w", key, err)
	}

	return &storage.ObjectInfo{
		Name:        path.Base(key),
		SizeBytes:   aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
		CreatedAt:   aws.ToTime(out.LastModified),
		FullPath:    key,
	}, nil
}
