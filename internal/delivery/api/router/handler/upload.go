package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"haatbazar/config"
	"haatbazar/internal/delivery/api/response"
	deliverycontext "haatbazar/internal/delivery/context"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/errors"
	"haatbazar/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	gommonbytes "github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

var (
	imageTypes    = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	documentTypes = append(slices.Clone(imageTypes), "application/pdf")
)

// UploadReader pulls size-checked, content-sniffed files out of multipart requests.
type UploadReader struct {
	maxSize int64
}

// NewUploadReader reads the upload size limit from config.
func NewUploadReader(cfg *config.Config) (*UploadReader, error) {
	maxSize, err := gommonbytes.Parse(cfg.Upload.MaxSize)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upload.maxSize %q", cfg.Upload.MaxSize)
	}

	return &UploadReader{maxSize: maxSize}, nil
}

// Image returns the image in the named multipart field, or nil when the request carries none.
func (r *UploadReader) Image(c echo.Context, field string) (*usecase.Upload, error) {
	return r.read(c, field, imageTypes)
}

// Document returns an image or PDF from the named multipart field, or nil when absent.
func (r *UploadReader) Document(c echo.Context, field string) (*usecase.Upload, error) {
	return r.read(c, field, documentTypes)
}

func (r *UploadReader) read(c echo.Context, field string, allowed []string) (*usecase.Upload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable file in field " + field)
	}

	if header.Size > r.maxSize {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails("limit is " + gommonbytes.Format(r.maxSize))
	}

	data, err := readPart(header, r.maxSize)
	if err != nil {
		return nil, err
	}

	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowed...) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(field + ": " + detected.String())
	}

	return &usecase.Upload{
		Filename:    header.Filename,
		ContentType: detected.String(),
		Content:     bytes.NewReader(data),
	}, nil
}

func readPart(header *multipart.FileHeader, maxSize int64) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(data)) > maxSize {
		return nil, domainerrors.ErrUploadTooLarge
	}

	return data, nil
}

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Blobs  service.BlobStore
	Logger *slog.Logger
}

// UploadHandler serves stored blobs back by key.
type UploadHandler struct {
	blobs  service.BlobStore
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		blobs:  params.Blobs,
		logger: params.Logger,
	}
}

// ServeUpload streams the blob stored under :key.
func (h *UploadHandler) ServeUpload(c echo.Context) error {
	key := c.Param("key")
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return response.AppError(c, domainerrors.ErrUploadNotFound)
	}

	blob, err := h.blobs.Open(c.Request().Context(), key)
	if errors.Is(err, service.ErrBlobNotFound) {
		return response.AppError(c, domainerrors.ErrUploadNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer func() {
		if closeErr := blob.Body.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Failed to close upload reader", slog.String("key", key), slog.Any("error", closeErr))
		}
	}()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, blob.ContentType, blob.Body)
}
