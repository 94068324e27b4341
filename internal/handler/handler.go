// Package handler exposes the upload flow as an API Gateway Lambda handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mwhitfield/user_uploads/internal/classify"
	"github.com/mwhitfield/user_uploads/internal/identity"
	"github.com/mwhitfield/user_uploads/internal/model"
	"github.com/mwhitfield/user_uploads/internal/pathguard"
	"github.com/mwhitfield/user_uploads/internal/uploader"
)

// Error codes for request-level failures; classified storage failures use
// the category's presentation code instead.
const (
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeUnauthorized     = "UNAUTHORIZED"
	codeBadRequest       = "BAD_REQUEST"
	codeEmptyFile        = "EMPTY_FILE"
	codeFileTooLarge     = "FILE_TOO_LARGE"
	codeInvalidPath      = "INVALID_PATH"
	codeWrongNamespace   = "WRONG_NAMESPACE"
)

// Handler serves POST /uploads.
type Handler struct {
	verifier identity.Verifier
	uploads  *uploader.Service
	log      *slog.Logger
}

func New(verifier identity.Verifier, uploads *uploader.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{verifier: verifier, uploads: uploads, log: log}
}

// Handle is the Lambda entrypoint for API Gateway proxy events.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod != http.MethodPost {
		return respondError(http.StatusMethodNotAllowed, codeMethodNotAllowed, "only POST is supported"), nil
	}

	token := bearerToken(req.Headers)
	if token == "" {
		return respondError(http.StatusUnauthorized, codeUnauthorized, "missing bearer token"), nil
	}

	uid, err := h.verifier.Verify(ctx, token)
	if err != nil {
		h.log.Warn("token verification failed", "error", err)
		return respondError(http.StatusUnauthorized, codeUnauthorized, "token verification failed"), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return respondError(http.StatusBadRequest, codeBadRequest, "request body is not valid base64"), nil
		}
	}

	var upload model.UploadRequest
	if err := json.Unmarshal(body, &upload); err != nil {
		return respondError(http.StatusBadRequest, codeBadRequest, "request body is not valid JSON"), nil
	}

	// The caller's identity comes from the verified token, never the body.
	upload.UserID = uid

	if len(upload.Data) == 0 {
		return respondError(http.StatusBadRequest, codeEmptyFile, "no file data provided"), nil
	}
	if int64(len(upload.Data)) > model.MaxFileSizeBytes {
		return respondError(http.StatusRequestEntityTooLarge, codeFileTooLarge, "file exceeds size limit"), nil
	}
	if upload.ContentType == "" {
		upload.ContentType = model.ContentTypeOctetStream
	}

	res, err := h.uploads.Upload(ctx, upload)
	if err != nil {
		return h.failureResponse(err), nil
	}

	return respondJSON(http.StatusCreated, model.UploadResponse{
		FileID:    res.FileID,
		Path:      res.Path,
		PublicURL: res.PublicURL,
		SizeBytes: res.Info.SizeBytes,
		CreatedAt: res.Info.CreatedAt.UTC().Format(time.RFC3339),
	}), nil
}

func (h *Handler) failureResponse(err error) events.APIGatewayProxyResponse {
	switch {
	case errors.Is(err, pathguard.ErrWrongNamespace):
		return respondError(http.StatusForbidden, codeWrongNamespace, "path is outside the caller's namespace")
	case errors.Is(err, pathguard.ErrPathTraversal):
		return respondError(http.StatusBadRequest, codeInvalidPath, "path contains a traversal sequence")
	}

	var cerr *classify.CategoryError
	if errors.As(err, &cerr) {
		status := http.StatusBadGateway
		if cerr.Category == classify.Permission {
			status = http.StatusForbidden
		}
		return respondError(status, cerr.Category.Presentation().Code, "upload failed")
	}

	h.log.Error("unhandled upload failure", "error", err)
	return respondError(http.StatusInternalServerError, "INTERNAL_ERROR", "upload failed")
}

func bearerToken(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, "Authorization") {
			if rest, ok := strings.CutPrefix(v, "Bearer "); ok {
				return strings.TrimSpace(rest)
			}
			return ""
		}
	}
	return ""
}

func respondJSON(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error":"INTERNAL_ERROR","message":"response encoding failed"}`,
			Headers:    map[string]string{"Content-Type": "application/json"},
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func respondError(status int, code, message string) events.APIGatewayProxyResponse {
	return respondJSON(status, model.ErrorResponse{Error: code, Message: message})
}
