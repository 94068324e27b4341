// Package pathguard validates storage keys before any write reaches the
// object store. Every key must stay inside the requesting user's namespace
// and must not carry escape sequences.
package pathguard

import (
	"errors"
	"strings"
)

var (
	// ErrWrongNamespace is returned when a path does not live under the
	// caller's users/<uid>/ prefix.
	ErrWrongNamespace = errors.New("path outside caller namespace")

	// ErrPathTraversal is returned when a path contains ".." or a doubled
	// separator.
	ErrPathTraversal = errors.New("path contains traversal sequence")
)

// NamespacePrefix is the root under which all user objects are stored.
const NamespacePrefix = "users/"

// Validate reports whether targetPath is an acceptable storage key for the
// given user. It is a pure function over its two string inputs: no I/O, no
// state, identical inputs always produce identical results.
func Validate(userID, targetPath string) error {
	if !strings.HasPrefix(targetPath, NamespacePrefix+userID+"/") {
		return ErrWrongNamespace
	}
	if strings.Contains(targetPath, "..") || strings.Contains(targetPath, "//") {
		return ErrPathTraversal
	}
	return nil
}
