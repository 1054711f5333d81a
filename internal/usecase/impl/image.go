// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/pkg/errors"
)

// resolveImage stores an uploaded file and returns its /uploads reference.
// Without an upload it falls back to the URL given in the request body, which may be empty.
func resolveImage(ctx context.Context, blobs service.BlobStore, upload *usecase.Upload, url string) (string, error) {
	if upload == nil {
		return strings.TrimSpace(url), nil
	}

	ref, err := blobs.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store upload")
	}

	return ref, nil
}

// discardUpload removes a blob saved for a write that did not go through. Failures are only logged.
func discardUpload(ctx context.Context, blobs service.BlobStore, logger *slog.Logger, upload *usecase.Upload, ref string) {
	if upload == nil || ref == "" {
		return
	}

	if err := blobs.Delete(context.WithoutCancel(ctx), ref); err != nil {
		logger.Warn("Failed to remove orphaned upload", slog.String("ref", ref), slog.Any("error", err))
	}
}

// resolveOptionalImage is resolveImage for partial updates: nil means "keep the current value".
func resolveOptionalImage(ctx context.Context, blobs service.BlobStore, upload *usecase.Upload, url *string) (*string, error) {
	if upload == nil && url == nil {
		return nil, nil
	}

	var fallback string
	if url != nil {
		fallback = *url
	}

	ref, err := resolveImage(ctx, blobs, upload, fallback)
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// set copies src into dst when present and records the field name, so a partial update
// writes only the columns it touched.
func set[T any](changes *[]string, field string, dst *T, src *T) {
	if src == nil {
		return
	}
	*dst = *src
	*changes = append(*changes, field)
}
