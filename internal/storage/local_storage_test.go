package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "products", "photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/products/"), "url = %s", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "url = %s", url)

	// The blob must land under the root directory with the same key.
	key := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalStorage_UploadGeneratesUniqueKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	a, err := store.Upload(context.Background(), "products", "photo.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Upload(context.Background(), "products", "photo.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(100, 1000))
	assert.NoError(t, ValidateFileSize(1000, 1000))
	assert.Error(t, ValidateFileSize(1001, 1000))
}

func TestValidateContentType(t *testing.T) {
	assert.NoError(t, ValidateContentType("image/png", ImageContentTypes))
	assert.Error(t, ValidateContentType("application/pdf", ImageContentTypes))
	assert.NoError(t, ValidateContentType("application/pdf", PDFContentTypes))
}
