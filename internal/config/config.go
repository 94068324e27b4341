// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Provider selects the object-storage backend.
type Provider string

const (
	ProviderS3       Provider = "s3"
	ProviderFirebase Provider = "firebase"
)

// Firebase holds the Firebase project settings used for identity
// verification and, when selected, object storage.
type Firebase struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
}

// Config is the full service configuration.
type Config struct {
	Provider      Provider
	Bucket        string
	PublicBaseURL string
	AWSRegion     string
	TableName     string // empty disables metadata persistence
	Firebase      Firebase
}

// FromEnv builds a Config from UPLOADS_* and Firebase environment
// variables and validates it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:      Provider(envOr("UPLOADS_PROVIDER", string(ProviderS3))),
		Bucket:        os.Getenv("UPLOADS_BUCKET"),
		PublicBaseURL: os.Getenv("UPLOADS_PUBLIC_BASE_URL"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		TableName:     os.Getenv("UPLOADS_TABLE"),
		Firebase: Firebase{
			ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			CredentialsJSON: os.Getenv("FIREBASE_SERVICE_ACCOUNT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for the selected provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderS3, ProviderFirebase:
	default:
		return fmt.Errorf("unknown storage provider %q", c.Provider)
	}

	if c.Bucket == "" {
		return errors.New("UPLOADS_BUCKET must be set")
	}
	if c.Provider == ProviderFirebase && c.Firebase.ProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID must be set for the firebase provider")
	}
	return nil
}

// HasFirebase reports whether a Firebase project is configured; identity
// verification requires it.
func (c *Config) HasFirebase() bool {
	return c.Firebase.ProjectID != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
