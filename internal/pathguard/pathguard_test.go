package pathguard_test

import (
	"errors"
	"testing"

	"github.com/mwhitfield/user_uploads/internal/pathguard"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		path    string
		wantErr error
	}{
		{
			name:   "well-formed path",
			userID: "abc123",
			path:   "users/abc123/avatar.png",
		},
		{
			name:   "nested folders",
			userID: "abc123",
			path:   "users/abc123/photos/2026/img.jpg",
		},
		{
			name:    "wrong namespace",
			userID:  "abc123",
			path:    "users/xyz999/avatar.png",
			wantErr: pathguard.ErrWrongNamespace,
		},
		{
			name:    "missing namespace prefix",
			userID:  "abc123",
			path:    "avatar.png",
			wantErr: pathguard.ErrWrongNamespace,
		},
		{
			name:    "prefix without trailing separator",
			userID:  "abc123",
			path:    "users/abc123",
			wantErr: pathguard.ErrWrongNamespace,
		},
		{
			name:    "uid prefix of another uid",
			userID:  "abc",
			path:    "users/abc123/file.txt",
			wantErr: pathguard.ErrWrongNamespace,
		},
		{
			name:    "traversal segment",
			userID:  "abc123",
			path:    "users/abc123/../secret.txt",
			wantErr: pathguard.ErrPathTraversal,
		},
		{
			name:    "traversal in file name",
			userID:  "abc123",
			path:    "users/abc123/..hidden",
			wantErr: pathguard.ErrPathTraversal,
		},
		{
			name:    "doubled separator",
			userID:  "abc123",
			path:    "users/abc123//avatar.png",
			wantErr: pathguard.ErrPathTraversal,
		},
		{
			name:    "empty path",
			userID:  "abc123",
			path:    "",
			wantErr: pathguard.ErrWrongNamespace,
		},
		{
			name:    "empty user id",
			userID:  "",
			path:    "users//avatar.png",
			wantErr: pathguard.ErrPathTraversal,
		},
		{
			name:    "empty user id and path",
			userID:  "",
			path:    "",
			wantErr: pathguard.ErrWrongNamespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pathguard.Validate(tt.userID, tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.userID, tt.path, err, tt.wantErr)
			}

			// Pure function: a second call must agree with the first.
			again := pathguard.Validate(tt.userID, tt.path)
			if !errors.Is(again, tt.wantErr) {
				t.Errorf("second Validate(%q, %q) = %v, want %v", tt.userID, tt.path, again, tt.wantErr)
			}
		})
	}
}
