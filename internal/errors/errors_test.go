package errors

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(io.EOF, "reading upload")

	assert.True(t, IsAny(wrapped, io.ErrUnexpectedEOF, io.EOF))
	assert.False(t, IsAny(wrapped, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(wrapped))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(Wrap(context.DeadlineExceeded, "query products")))
	assert.True(t, IsTimeout(Wrapf(context.Canceled, "order %d", 1)))
	assert.False(t, IsTimeout(New("boom")))
	assert.False(t, IsTimeout(nil))
}
