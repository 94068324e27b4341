// uploadctl uploads a single local file through the same validation and
// classification flow the service runs, using admin credentials, or looks
// up a recorded upload by file ID. Useful for smoke-testing a bucket and
// table configuration.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	dotenv "github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/mwhitfield/user_uploads/internal/classify"
	"github.com/mwhitfield/user_uploads/internal/config"
	"github.com/mwhitfield/user_uploads/internal/diag"
	"github.com/mwhitfield/user_uploads/internal/fbapp"
	"github.com/mwhitfield/user_uploads/internal/metastore"
	"github.com/mwhitfield/user_uploads/internal/model"
	"github.com/mwhitfield/user_uploads/internal/storage"
	"github.com/mwhitfield/user_uploads/internal/storage/gcsstore"
	"github.com/mwhitfield/user_uploads/internal/storage/s3store"
	"github.com/mwhitfield/user_uploads/internal/uploader"
)

func main() {
	var (
		file        = flag.String("file", "", "local file to upload")
		target      = flag.String("path", "", "target storage path (users/<uid>/...)")
		user        = flag.String("user", "", "uid owning the target path")
		contentType = flag.String("content-type", "", "content type (detected from the file when empty)")
		get         = flag.String("get", "", "look up a recorded upload by file id instead of uploading")
	)
	flag.Parse()

	// A missing .env is fine; the environment may already be populated.
	_ = dotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	if *get != "" {
		if err := runGet(context.Background(), *get, os.Stdout); err != nil {
			logger.Error("lookup failed", "fileId", *get, "error", err)
			os.Exit(1)
		}
		return
	}

	if *file == "" || *target == "" || *user == "" {
		fmt.Fprintln(os.Stderr, "usage: uploadctl -file <path> -path users/<uid>/... -user <uid> [-content-type <mime>]")
		fmt.Fprintln(os.Stderr, "       uploadctl -get <fileId>")
		os.Exit(2)
	}

	if err := run(context.Background(), logger, *file, *target, *user, *contentType); err != nil {
		var cerr *classify.CategoryError
		if errors.As(err, &cerr) {
			p := cerr.Category.Presentation()
			logger.Error("upload failed", "code", p.Code, "category", string(cerr.Category), "error", err)
		} else {
			logger.Error("upload failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, file, target, user, contentType string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(file))
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	store, recorder, err := buildBackends(ctx, cfg)
	if err != nil {
		return err
	}

	sess := diag.NewSession(logger)
	svc := uploader.New(store, recorder, sess)

	res, err := svc.Upload(ctx, model.UploadRequest{
		UserID:      user,
		TargetPath:  target,
		Data:        data,
		ContentType: contentType,
	})
	if err != nil {
		return err
	}

	logger.Info("uploaded",
		"fileId", res.FileID,
		"path", res.Path,
		"size", res.Info.SizeBytes,
		"contentType", res.Info.ContentType,
		"createdAt", res.Info.CreatedAt,
	)
	fmt.Println(res.PublicURL)
	return nil
}

func runGet(ctx context.Context, fileID string, w io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cfg.TableName == "" {
		return errors.New("UPLOADS_TABLE must be set for lookups")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	ac, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return err
	}

	return lookupMetadata(ctx, metastore.New(dynamodb.NewFromConfig(ac), cfg.TableName), fileID, w)
}

func lookupMetadata(ctx context.Context, store *metastore.Store, fileID string, w io.Writer) error {
	meta, err := store.Get(ctx, fileID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func buildBackends(ctx context.Context, cfg *config.Config) (storage.ObjectStore, uploader.MetadataRecorder, error) {
	var store storage.ObjectStore
	var recorder uploader.MetadataRecorder

	if cfg.Provider == config.ProviderS3 || cfg.TableName != "" {
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
		app, err := fbapp.New(ctx, cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		gs, err := gcsstore.New(ctx, app, cfg.Bucket)
		if err != nil {
			return nil, nil, err
		}
		store = gs
	}

	return store, recorder, nil
}
