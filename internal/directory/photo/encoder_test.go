package photo

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG: signature plus IHDR/IDAT/IEND chunks for a 1x1 pixel
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestEncode_PNG(t *testing.T) {
	uri, err := NewEncoder(0).Encode(bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, decoded)
}

func TestEncode_Rejections(t *testing.T) {
	enc := NewEncoder(16)

	_, err := enc.Encode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = enc.Encode(strings.NewReader("just some plain text"))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = NewEncoder(0).Encode(strings.NewReader("just some plain text"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestEncodeAsync_CallsBackOnce(t *testing.T) {
	type result struct {
		uri string
		err error
	}
	results := make(chan result, 2)

	NewEncoder(0).EncodeAsync(bytes.NewReader(pngPixel), func(uri string, err error) {
		results <- result{uri, err}
	})

	select {
	case r := <-results:
		require.NoError(t, r.err)
		assert.NotEmpty(t, r.uri)
	case <-time.After(2 * time.Second):
		t.Fatal("callback not invoked")
	}

	select {
	case <-results:
		t.Fatal("callback invoked twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCheck(t *testing.T) {
	mime, err := NewEncoder(0).Check(pngPixel)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = NewEncoder(0).Check([]byte("<html></html>"))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = NewEncoder(int64(len(pngPixel) - 1)).Check(pngPixel)
	assert.ErrorIs(t, err, ErrTooLarge)
}
