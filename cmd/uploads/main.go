// Lambda entrypoint for the uploads API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	firebase "firebase.google.com/go/v4"

	"github.com/mwhitfield/user_uploads/internal/config"
	"github.com/mwhitfield/user_uploads/internal/diag"
	"github.com/mwhitfield/user_uploads/internal/fbapp"
	"github.com/mwhitfield/user_uploads/internal/handler"
	"github.com/mwhitfield/user_uploads/internal/identity"
	"github.com/mwhitfield/user_uploads/internal/metastore"
	"github.com/mwhitfield/user_uploads/internal/storage"
	"github.com/mwhitfield/user_uploads/internal/storage/gcsstore"
	"github.com/mwhitfield/user_uploads/internal/storage/s3store"
	"github.com/mwhitfield/user_uploads/internal/uploader"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	if !cfg.HasFirebase() {
		logger.Error("FIREBASE_PROJECT_ID must be set for token verification")
		os.Exit(1)
	}

	app, err := fbapp.New(ctx, cfg.Firebase)
	if err != nil {
		logger.Error("firebase init failed", "error", err)
		os.Exit(1)
	}

	verifier, err := identity.NewFirebaseVerifier(ctx, app)
	if err != nil {
		logger.Error("verifier init failed", "error", err)
		os.Exit(1)
	}

	store, recorder, err := buildBackends(ctx, cfg, app)
	if err != nil {
		logger.Error("backend init failed", "error", err)
		os.Exit(1)
	}

	sess := diag.NewSession(logger)
	svc := uploader.New(store, recorder, sess)

	logger.Info("uploads service starting",
		"provider", string(cfg.Provider),
		"bucket", cfg.Bucket,
		"session", sess.ID(),
	)
	lambda.Start(handler.New(verifier, svc, logger).Handle)
}

func buildBackends(ctx context.Context, cfg *config.Config, app *firebase.App) (storage.ObjectStore, uploader.MetadataRecorder, error) {
	needsAWS := cfg.Provider == config.ProviderS3 || cfg.TableName != ""

	var store storage.ObjectStore
	var recorder uploader.MetadataRecorder

	if needsAWS {
		opts := []func(*awsconfig.LoadOptions) error{}
		if cfg.AWSRegion != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		ac, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, nil, err
		}

		if cfg.Provider == config.ProviderS3 {
			store = s3store.New(s3.NewFromConfig(ac), cfg.Bucket, cfg.PublicBaseURL)
		}
		if cfg.TableName != "" {
			recorder = metastore.New(dynamodb.NewFromConfig(ac), cfg.TableName)
		}
	}

	if cfg.Provider == config.ProviderFirebase {
		gs, err := gcsstore.New(ctx, app, cfg.Bucket)
		if err != nil {
			return nil, nil, err
		}
		store = gs
	}

	return store, recorder, nil
}
