// Package storage keeps uploaded files in a gocloud.dev bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"foodsafe/config"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	keyPrefix     string
	stagingDir    string
	maxFileSize   int64
	logger        *slog.Logger
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	if cfg.StagingDir != "" {
		if err := os.MkdirAll(cfg.StagingDir, 0o750); err != nil {
			bucket.Close()

			return nil, errors.Wrap(err, "failed to create staging directory")
		}
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("key_prefix", cfg.KeyPrefix),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return New(bucket, cfg, params.Logger), nil
}

// New wraps an already opened bucket.
func New(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) service.BlobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		keyPrefix:     cfg.KeyPrefix,
		stagingDir:    cfg.StagingDir,
		maxFileSize:   cfg.MaxFileSize,
		logger:        logger,
	}
}

// Upload spools r to a staging file, enforcing the size limit, then copies it into the bucket.
// The staging file is removed on every path.
func (s *blobStorage) Upload(ctx context.Context, r io.Reader, name, contentType string) (string, error) {
	if strings.TrimSpace(name) == "" || r == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("upload requires a file and a destination name")
	}

	staged, err := os.CreateTemp(s.stagingDir, "upload-*")
	if err != nil {
		return "", uploadError(name, "create staging file", err)
	}
	defer func() {
		staged.Close()
		if rmErr := os.Remove(staged.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.WarnContext(ctx, "Failed to remove staging file",
				slog.String("path", staged.Name()),
				slog.Any("error", rmErr),
			)
		}
	}()

	src := r
	if s.maxFileSize > 0 {
		src = io.LimitReader(r, s.maxFileSize+1)
	}
	size, err := io.Copy(staged, src)
	if err != nil {
		return "", uploadError(name, "stage payload", err)
	}
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s exceeds the %s upload limit", name, util.FormatBytes(s.maxFileSize)),
		)
	}
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		return "", uploadError(name, "rewind staging file", err)
	}

	key := s.keyPrefix + name
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", uploadError(name, "open bucket writer", err)
	}
	if _, err := io.Copy(w, staged); err != nil {
		w.Close()

		return "", uploadError(name, "write object", err)
	}
	// The object becomes visible only when Close succeeds.
	if err := w.Close(); err != nil {
		return "", uploadError(name, "commit object", err)
	}

	s.logger.DebugContext(ctx, "Blob uploaded",
		slog.String("key", key),
		slog.Int64("size", size),
	)

	return s.publicURL(key), nil
}

// Delete removes the object stored under name.
func (s *blobStorage) Delete(ctx context.Context, name string) error {
	err := s.bucket.Delete(ctx, s.keyPrefix+name)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", name)
	}

	return nil
}

// Open streams the object stored under key.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound.WithDetails(key)
		}

		return nil, "", errors.Wrapf(err, "open object %s", key)
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// uploadError keeps the upload kind while carrying the provider failure in the message.
func uploadError(name, step string, cause error) error {
	return errors.Wrapf(domainerrors.ErrUploadFailed.WithDetails(name), "%s: %v", step, cause)
}
