package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorage stores uploaded blobs under a generated key and returns a
// retrievable URL. Implementations must not be consulted when no new file
// is provided on update; existing URLs stay untouched.
type FileStorage interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

// ObjectKey builds a collision-free storage key, keeping the original
// extension so servers infer the content type correctly.
func ObjectKey(folder, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)
}

// ValidateFileSize validates the file size
func ValidateFileSize(size int64, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	return nil
}

// ValidateContentType validates the content type
func ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}

// Allowed content types per upload kind.
var (
	ImageContentTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
	VideoContentTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
	PDFContentTypes   = []string{"application/pdf"}
)
