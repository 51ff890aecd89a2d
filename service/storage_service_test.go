package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/service"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStorageServiceUpload(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	storage, err := service.NewStorageService(root, "http://localhost:8080")
	require.NoError(t, err)

	data := encodeTestPNG(t, 10, 10)
	result, err := storage.Upload(context.Background(), "photo.png", data, models.UploadConfig{
		Bucket: "library",
		Folder: "business_7",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Contains(t, result.URL, "http://localhost:8080/media/library/business_7/")

	stored, err := os.ReadFile(filepath.Join(root, result.Path))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestStorageServiceUploadRejectsNonImage(t *testing.T) {
	t.Parallel()

	storage, err := service.NewStorageService(t.TempDir(), "")
	require.NoError(t, err)

	_, err = storage.Upload(context.Background(), "notes.txt", []byte("pas une image"), models.UploadConfig{})
	assert.ErrorContains(t, err, "not a valid image")
}

func TestStorageServiceUploadRejectsOversized(t *testing.T) {
	t.Parallel()

	storage, err := service.NewStorageService(t.TempDir(), "")
	require.NoError(t, err)

	data := encodeTestPNG(t, 10, 10)
	_, err = storage.Upload(context.Background(), "photo.png", data, models.UploadConfig{MaxSize: 10})
	assert.ErrorContains(t, err, "exceeds maximum size")
}

func TestStorageServiceUploadExactDimensions(t *testing.T) {
	t.Parallel()

	storage, err := service.NewStorageService(t.TempDir(), "")
	require.NoError(t, err)

	cfg := models.UploadConfig{ExactWidth: 1200, ExactHeight: 400}

	_, err = storage.Upload(context.Background(), "banner.png", encodeTestPNG(t, 10, 10), cfg)
	assert.ErrorContains(t, err, "must be exactly 1200x400 pixels")

	_, err = storage.Upload(context.Background(), "banner.png", encodeTestPNG(t, 1200, 400), cfg)
	assert.NoError(t, err)
}
