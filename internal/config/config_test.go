package config_test

import (
	"testing"

	"github.com/mwhitfield/user_uploads/internal/config"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("UPLOADS_PROVIDER", "firebase")
	t.Setenv("UPLOADS_BUCKET", "demo.appspot.com")
	t.Setenv("UPLOADS_TABLE", "uploads-table")
	t.Setenv("FIREBASE_PROJECT_ID", "demo-project")

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Provider != config.ProviderFirebase {
		t.Errorf("provider = %q, want firebase", cfg.Provider)
	}
	if cfg.Bucket != "demo.appspot.com" {
		t.Errorf("bucket = %q", cfg.Bucket)
	}
	if cfg.TableName != "uploads-table" {
		t.Errorf("table = %q", cfg.TableName)
	}
	if !cfg.HasFirebase() {
		t.Error("HasFirebase = false with project id set")
	}
}

func TestFromEnvDefaultsToS3(t *testing.T) {
	t.Setenv("UPLOADS_PROVIDER", "")
	t.Setenv("UPLOADS_BUCKET", "uploads-bucket")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Provider != config.ProviderS3 {
		t.Errorf("provider = %q, want s3", cfg.Provider)
	}
	if cfg.HasFirebase() {
		t.Error("HasFirebase = true with no project id")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "valid s3",
			cfg:  config.Config{Provider: config.ProviderS3, Bucket: "b"},
		},
		{
			name: "valid firebase",
			cfg: config.Config{
				Provider: config.ProviderFirebase,
				Bucket:   "b",
				Firebase: config.Firebase{ProjectID: "p"},
			},
		},
		{
			name:    "missing bucket",
			cfg:     config.Config{Provider: config.ProviderS3},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     config.Config{Provider: "ftp", Bucket: "b"},
			wantErr: true,
		},
		{
			name:    "firebase without project",
			cfg:     config.Config{Provider: config.ProviderFirebase, Bucket: "b"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
