package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"haatbazar/config"
	infrablob "haatbazar/internal/infra/blob"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestNewUploadReader_ParsesConfiguredSize(t *testing.T) {
	reader, err := NewUploadReader(&config.Config{Upload: &config.UploadConfig{MaxSize: "5MB"}})
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), reader.maxSize)

	_, err = NewUploadReader(&config.Config{Upload: &config.UploadConfig{MaxSize: "lots"}})
	assert.Error(t, err)
}

func TestUploadReader_Document_AcceptsImagesAndPDF(t *testing.T) {
	uploads := newTestUploads()
	e := newTestEcho()

	tests := []struct {
		name     string
		content  []byte
		wantType string
		wantErr  string
	}{
		{name: "png", content: pngHeader, wantType: "image/png"},
		{name: "pdf", content: []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\n"), wantType: "application/pdf"},
		{name: "zip", content: []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00"), wantErr: "UNSUPPORTED_MEDIA_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := multipartRequest(t, http.MethodPost, "/", nil, multipartFile{field: "tinDoc", filename: "doc", content: tt.content})
			c := e.NewContext(req, nil)

			upload, err := uploads.Document(c, "tinDoc")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not allowed")

				return
			}

			require.NoError(t, err)
			require.NotNil(t, upload)
			assert.Equal(t, tt.wantType, upload.ContentType)
		})
	}
}

func TestUploadReader_Image_AbsentFile(t *testing.T) {
	uploads := newTestUploads()
	e := newTestEcho()

	t.Run("json request", func(t *testing.T) {
		c := e.NewContext(jsonRequest(http.MethodPost, "/", `{}`), nil)

		upload, err := uploads.Image(c, "image")
		require.NoError(t, err)
		assert.Nil(t, upload)
	})

	t.Run("multipart without the field", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/", map[string]string{"name": "x"})
		c := e.NewContext(req, nil)

		upload, err := uploads.Image(c, "image")
		require.NoError(t, err)
		assert.Nil(t, upload)
	})
}

func TestUploadHandler_ServeUpload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := infrablob.NewBlobStore(bucket)

	ref, err := store.Save(context.Background(), "photo.png", "image/png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	h := NewUploadHandler(UploadHandlerParams{Blobs: store, Logger: slog.New(slog.DiscardHandler)})
	e := newTestEcho()
	e.GET("/uploads/:key", h.ServeUpload)

	rec := serve(e, jsonRequest(http.MethodGet, ref, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())

	missing := strings.Replace(ref, "/uploads/", "/uploads/0", 1)
	rec = serve(e, jsonRequest(http.MethodGet, missing, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UPLOAD_NOT_FOUND", decodeError(t, rec).Code)

	rec = serve(e, jsonRequest(http.MethodGet, "/uploads/..%2Fconfig.yaml", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
