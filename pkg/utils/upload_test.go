package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00")
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestReadImageFile_PNG(t *testing.T) {
	req := multipartRequest(t, "images", "photo.png", pngBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", 5000000)

	require.Nil(t, appErr)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Ext)
	assert.Equal(t, "photo.png", img.Filename)
	assert.Equal(t, pngBytes, img.Data)
}

func TestReadImageFile_JPEG(t *testing.T) {
	req := multipartRequest(t, "images", "photo.jpeg", jpegBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", 5000000)

	require.Nil(t, appErr)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.Equal(t, ".jpg", img.Ext)
}

func TestReadImageFile_RejectsGIF(t *testing.T) {
	req := multipartRequest(t, "images", "anim.gif", gifBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", 5000000)

	assert.Nil(t, img)
	require.NotNil(t, appErr)
	assert.Equal(t, KindUpload, appErr.Kind)
	assert.Equal(t, "Only PNG and JPEG images are allowed", appErr.Fields["imageUrl"])
}

func TestReadImageFile_SniffsNotTrusts(t *testing.T) {
	// A GIF renamed to .png is still a GIF.
	req := multipartRequest(t, "images", "sneaky.png", gifBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", 5000000)

	assert.Nil(t, img)
	require.NotNil(t, appErr)
	assert.Equal(t, KindUpload, appErr.Kind)
}

func TestReadImageFile_OversizeRejected(t *testing.T) {
	req := multipartRequest(t, "images", "big.png", pngBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", int64(len(pngBytes)-1))

	assert.Nil(t, img)
	require.NotNil(t, appErr)
	assert.Equal(t, KindUpload, appErr.Kind)
	assert.Contains(t, appErr.Fields["imageUrl"], "size too large")
}

func TestReadImageFile_MissingPart(t *testing.T) {
	req := multipartRequest(t, "attachment", "photo.png", pngBytes)

	img, appErr := ReadImageFile(req, "images", "imageUrl", 5000000)

	assert.Nil(t, img)
	require.NotNil(t, appErr)
	assert.Equal(t, "Image is required", appErr.Fields["imageUrl"])
}
