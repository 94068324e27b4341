// Package uploader runs the upload flow: validate the target path, write
// the object once, refetch its metadata, and classify any failure. There is
// no retry or backoff anywhere; one attempt, one outcome.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/user_uploads/internal/classify"
	"github.com/mwhitfield/user_uploads/internal/diag"
	"github.com/mwhitfield/user_uploads/internal/model"
	"github.com/mwhitfield/user_uploads/internal/pathguard"
	"github.com/mwhitfield/user_uploads/internal/storage"
)

// Result describes a completed upload.
type Result struct {
	FileID    string
	Path      string
	PublicURL string
	Info      storage.ObjectInfo
}

// MetadataRecorder persists one row per upload attempt. A nil recorder
// disables persistence.
type MetadataRecorder interface {
	Record(ctx context.Context, meta model.FileMetadata) error
}

// Service orchestrates uploads against one object store.
type Service struct {
	store storage.ObjectStore
	meta  MetadataRecorder
	sess  *diag.Session

	now   func() time.Time
	newID func() string
}

func New(store storage.ObjectStore, meta MetadataRecorder, sess *diag.Session) *Service {
	if sess == nil {
		sess = diag.NewSession(nil)
	}
	return &Service{
		store: store,
		meta:  meta,
		sess:  sess,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Upload validates req, writes the object, and returns the stored result.
//
// A validation failure is fatal to the request: it is returned immediately,
// the store is never called, and a REJECTED row is recorded. A write
// failure records a FAILED row and is returned wrapped with its classified
// category; every attempt therefore leaves exactly one row. A metadata
// refetch failure after a successful write degrades to the request-local
// values instead of failing the upload.
func (s *Service) Upload(ctx context.Context, req model.UploadRequest) (*Result, error) {
	fileID := s.newID()

	if err := pathguard.Validate(req.UserID, req.TargetPath); err != nil {
		s.record(ctx, fileID, req, model.StatusRejected)
		return nil, fmt.Errorf("invalid path %q: %w", req.TargetPath, err)
	}

	if err := s.store.Write(ctx, req.TargetPath, req.Data, req.ContentType); err != nil {
		wrapped := classify.Wrap(err)
		var cerr *classify.CategoryError
		if errors.As(wrapped, &cerr) {
			s.sess.RecordFailure(cerr.Category, err)
		}
		s.record(ctx, fileID, req, model.StatusFailed)
		return nil, wrapped
	}

	info, err := s.store.Metadata(ctx, req.TargetPath)
	if err != nil {
		s.sess.Logger().Warn("metadata refetch failed, using request values",
			"path", req.TargetPath, "error", err)
		info = &storage.ObjectInfo{
			Name:        path.Base(req.TargetPath),
			SizeBytes:   int64(len(req.Data)),
			ContentType: req.ContentType,
			CreatedAt:   s.now().UTC(),
			FullPath:    req.TargetPath,
		}
	}

	s.record(ctx, fileID, req, model.StatusUploaded)

	return &Result{
		FileID:    fileID,
		Path:      req.TargetPath,
		PublicURL: s.store.PublicURL(req.TargetPath),
		Info:      *info,
	}, nil
}

// record persists the attempt row. Persistence failures are logged, never
// surfaced: the upload outcome is already decided by this point.
func (s *Service) record(ctx context.Context, fileID string, req model.UploadRequest, status string) {
	if s.meta == nil {
		return
	}

	now := s.now().UTC().Format(time.RFC3339)
	meta := model.FileMetadata{
		FileID:        fileID,
		UserID:        req.UserID,
		FileName:      path.Base(req.TargetPath),
		FileSizeBytes: int64(len(req.Data)),
		ObjectKey:     req.TargetPath,
		Status:        status,
		ContentType:   req.ContentType,
		CreatedAt:     now,
		UpdatedAt:     now,
		TTL:           s.now().Unix() + model.MetadataTTLSeconds,
	}
	if err := s.meta.Record(ctx, meta); err != nil {
		s.sess.Logger().Warn("metadata record failed",
			"fileId", fileID, "status", status, "error", err)
	}
}
