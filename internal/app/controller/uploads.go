package controller

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/coimpres/coimpres-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// formFile pulls an optional file from a multipart form, validates it and
// stores it. A missing field returns (nil, nil) so callers can treat the
// field as "keep existing".
func formFile(c *gin.Context, files storage.FileStorage, field, folder string, allowedTypes []string, maxSize int64) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	url, err := storeFile(c, files, fileHeader, folder, allowedTypes, maxSize)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func storeFile(c *gin.Context, files storage.FileStorage, fileHeader *multipart.FileHeader, folder string, allowedTypes []string, maxSize int64) (string, error) {
	if err := storage.ValidateFileSize(fileHeader.Size, maxSize); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.ValidateContentType(contentType, allowedTypes); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	return files.Upload(c.Request.Context(), folder, fileHeader.Filename, contentType, file)
}
