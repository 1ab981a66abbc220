package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"foodsafe/config"
	domainerrors "foodsafe/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type storageFixture struct {
	bucket  *blob.Bucket
	staging string
	storage *blobStorage
}

func newFixture(t *testing.T, maxFileSize int64) *storageFixture {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	staging := t.TempDir()
	cfg := &config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com/",
		KeyPrefix:     "uploads/",
		StagingDir:    staging,
		MaxFileSize:   maxFileSize,
	}

	return &storageFixture{
		bucket:  bucket,
		staging: staging,
		storage: New(bucket, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobStorage),
	}
}

func (f *storageFixture) stagedFiles(t *testing.T) []os.DirEntry {
	t.Helper()

	entries, err := os.ReadDir(f.staging)
	require.NoError(t, err)

	return entries
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestBlobStorage_Upload(t *testing.T) {
	f := newFixture(t, 1024)
	ctx := context.Background()

	url, err := f.storage.Upload(ctx, strings.NewReader("png-bytes"), "business_LIC1_logo.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/business_LIC1_logo.png", url)

	data, err := f.bucket.ReadAll(ctx, "uploads/business_LIC1_logo.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := f.bucket.Attributes(ctx, "uploads/business_LIC1_logo.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	assert.Empty(t, f.stagedFiles(t))
}

func TestBlobStorage_UploadOverwrites(t *testing.T) {
	f := newFixture(t, 1024)
	ctx := context.Background()

	_, err := f.storage.Upload(ctx, strings.NewReader("first"), "a.png", "image/png")
	require.NoError(t, err)
	_, err = f.storage.Upload(ctx, strings.NewReader("second"), "a.png", "image/png")
	require.NoError(t, err)

	data, err := f.bucket.ReadAll(ctx, "uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestBlobStorage_UploadTooLarge(t *testing.T) {
	f := newFixture(t, 4)

	_, err := f.storage.Upload(context.Background(), bytes.NewReader([]byte("12345")), "big.png", "image/png")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	exists, err := f.bucket.Exists(context.Background(), "uploads/big.png")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, f.stagedFiles(t))
}

func TestBlobStorage_UploadReadFailure(t *testing.T) {
	f := newFixture(t, 1024)

	_, err := f.storage.Upload(context.Background(), failingReader{}, "broken.png", "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
	assert.Equal(t, domainerrors.KindUpload, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "connection reset")
	assert.Empty(t, f.stagedFiles(t))
}

func TestBlobStorage_UploadRequiresName(t *testing.T) {
	f := newFixture(t, 1024)

	_, err := f.storage.Upload(context.Background(), strings.NewReader("x"), " ", "image/png")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestBlobStorage_DeleteAndOpen(t *testing.T) {
	f := newFixture(t, 1024)
	ctx := context.Background()

	_, err := f.storage.Upload(ctx, strings.NewReader("owner"), "owner.jpg", "image/jpeg")
	require.NoError(t, err)

	rc, contentType, err := f.storage.Open(ctx, "uploads/owner.jpg")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "owner", string(body))
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, f.storage.Delete(ctx, "owner.jpg"))
	// Deleting twice is not an error.
	require.NoError(t, f.storage.Delete(ctx, "owner.jpg"))

	_, _, err = f.storage.Open(ctx, "uploads/owner.jpg")
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
