// Package blob stores uploaded files in a gocloud.dev bucket (local directory, memory, S3 or GCS).
package blob

import (
	"context"
	"io"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"haatbazar/config"
	"haatbazar/internal/domain/constants"
	"haatbazar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

var validKey = regexp.MustCompile(`^[0-9a-f-]{36}(\.[a-z0-9]{1,8})?$`)

// BucketParams holds dependencies for the bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the bucket named by upload.bucketUrl and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := params.Config.Upload.BucketURL

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Upload bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBlobStore wraps a bucket as the domain BlobStore.
func NewBlobStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

// Save writes content under a fresh key that keeps the original file extension.
func (s *bucketStore) Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate blob key")
	}
	key := id.String() + extension(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	return constants.UploadPathPrefix + key, nil
}

// Open returns a reader for a key produced by Save.
func (s *bucketStore) Open(ctx context.Context, key string) (*service.Blob, error) {
	if !validKey.MatchString(key) {
		return nil, service.ErrBlobNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrBlobNotFound
		}

		return nil, errors.Wrap(err, "failed to open blob")
	}

	return &service.Blob{
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
		Body:        reader,
	}, nil
}

// Delete removes the blob behind an /uploads reference. Anything else, such as an external image URL, is left alone.
func (s *bucketStore) Delete(ctx context.Context, ref string) error {
	key, ok := KeyFromReference(ref)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

// KeyFromReference strips the public prefix from a stored reference.
func KeyFromReference(ref string) (string, bool) {
	key, ok := strings.CutPrefix(ref, constants.UploadPathPrefix)
	if !ok || !validKey.MatchString(key) {
		return "", false
	}

	return key, true
}

func extension(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if len(ext) < 2 || len(ext) > 9 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
