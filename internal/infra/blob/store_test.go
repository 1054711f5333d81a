package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"haatbazar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_SaveAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket)
	ctx := context.Background()

	ref, err := store.Save(ctx, "Photo.PNG", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	key, ok := KeyFromReference(ref)
	require.True(t, ok)

	blob, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer blob.Body.Close()

	body, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", blob.ContentType)
	assert.Equal(t, int64(len("png-bytes")), blob.Size)
}

func TestBucketStore_OpenMissingOrInvalidKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket)

	tests := []string{
		"0192f0c4-8f7a-7cc0-9d5b-5e3c3a0f1e2d.png",
		"../etc/passwd",
		"",
	}
	for _, key := range tests {
		_, err := store.Open(context.Background(), key)
		assert.ErrorIs(t, err, service.ErrBlobNotFound, key)
	}
}

func TestBucketStore_Delete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket)
	ctx := context.Background()

	ref, err := store.Save(ctx, "review.jpg", "image/jpeg", strings.NewReader("jpg"))
	require.NoError(t, err)
	key, ok := KeyFromReference(ref)
	require.True(t, ok)

	require.NoError(t, store.Delete(ctx, ref))
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrBlobNotFound)

	// Already gone, and references that never pointed into the bucket.
	assert.NoError(t, store.Delete(ctx, ref))
	assert.NoError(t, store.Delete(ctx, "https://cdn.example.com/rice.png"))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{filename: "a.JPG", want: ".jpg"},
		{filename: "dir/sub/doc.pdf", want: ".pdf"},
		{filename: `C:\\Users\\me\\scan.jpeg`, want: ".jpeg"},
		{filename: "noext", want: ""},
		{filename: "weird.p$g", want: ""},
		{filename: "long.abcdefghij", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extension(tt.filename))
		})
	}
}

func TestKeyFromReference(t *testing.T) {
	t.Parallel()

	_, ok := KeyFromReference("https://cdn.example.com/a.png")
	assert.False(t, ok)

	key, ok := KeyFromReference("/uploads/0192f0c4-8f7a-7cc0-9d5b-5e3c3a0f1e2d.webp")
	assert.True(t, ok)
	assert.Equal(t, "0192f0c4-8f7a-7cc0-9d5b-5e3c3a0f1e2d.webp", key)
}
