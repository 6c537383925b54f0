package snake

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.ErrorIs(t, Required(""), ErrEmpty)
	assert.ErrorIs(t, Required("   "), ErrEmpty)
	assert.NoError(t, Required("x"))
}

func TestNopCloser(t *testing.T) {
	var buf bytes.Buffer
	w := NopCloser(&buf)
	_, err := w.Write([]byte("hi"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.Equal(t, "hi", buf.String())
}
