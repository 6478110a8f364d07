package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInlineImage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInlineImage("data:image/png;base64,AAAA"))
	assert.True(t, IsInlineImage("data:image"))
	assert.False(t, IsInlineImage(""))
	assert.False(t, IsInlineImage("https://example.com/data:image/png"))
	assert.False(t, IsInlineImage("data:text/plain;base64,AAAA"))
}

func TestDecodeInlineImage(t *testing.T) {
	t.Parallel()

	img, err := DecodeInlineImage(pngDataURL())
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, "image/png", img.ContentType())
	assert.Equal(t, pngBytes, img.Data)

	svg, err := DecodeInlineImage("data:image/svg+xml;base64,PHN2Zy8+")
	require.NoError(t, err)
	assert.Equal(t, "svg+xml", svg.Format)
	assert.Equal(t, "<svg/>", string(svg.Data))

	_, err = DecodeInlineImage("data:image/png,rawdata")
	assert.ErrorIs(t, err, errMalformedDataURL)

	_, err = DecodeInlineImage("data:image/png;base64,!!!")
	assert.Error(t, err)
}

func TestAvatarObjectKey(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "river-oaks/jdoe-1700000000123.webp", AvatarObjectKey("river-oaks", "jdoe", "webp", at))
}
