// Package classify maps upload failures into a small, fixed set of
// categories for logging and telemetry.
//
// Structured error codes are consulted first (HTTP status from the Google
// API client, API error codes from the AWS SDK, net.Error), then a
// best-effort match against the error text. The text fallback has no
// knowledge of any transport's actual error taxonomy and is not exhaustive;
// that is a documented limitation of this classifier, not a defect.
package classify

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/aws/smithy-go"
	"google.golang.org/api/googleapi"
)

// Category is the failure bucket assigned to an upload error.
type Category string

const (
	Permission Category = "permission"
	Network    Category = "network"
	Quota      Category = "quota"
	Unknown    Category = "unknown"
)

// Categories lists every category in classification priority order.
var Categories = []Category{Permission, Network, Quota, Unknown}

// Classify assigns exactly one category to err. Priority order is fixed:
// permission, then network, then quota, then unknown; the first match wins.
// Classify is pure: identical errors always classify identically.
func Classify(err error) Category {
	if err == nil {
		return Unknown
	}

	text := strings.ToLower(err.Error())
	switch {
	case isPermission(err, text):
		return Permission
	case isNetwork(err, text):
		return Network
	case isQuota(err, text):
		return Quota
	}
	return Unknown
}

func isPermission(err error, text string) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 401 || gerr.Code == 403) {
		return true
	}

	var aerr smithy.APIError
	if errors.As(err, &aerr) {
		switch aerr.ErrorCode() {
		case "AccessDenied", "Forbidden", "AccessDeniedException":
			return true
		}
	}

	return strings.Contains(text, "permission")
}

func isNetwork(err error, text string) bool {
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	return strings.Contains(text, "network")
}

func isQuota(err error, text string) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 429 || gerr.Code == 507) {
		return true
	}

	var aerr smithy.APIError
	if errors.As(err, &aerr) {
		switch aerr.ErrorCode() {
		case "SlowDown", "ServiceQuotaExceededException":
			return true
		}
	}

	return strings.Contains(text, "quota")
}
