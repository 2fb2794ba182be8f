package controller

import (
	"net/http"
	"strconv"

	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondStorageError maps a storage-layer error to the right HTTP status
// using the shared parser, so constraint violations never surface raw.
func respondStorageError(c *gin.Context, log *logger.Logger, err error, context string) {
	info := apperrors.ParseError(err, context)

	status := http.StatusInternalServerError
	switch info.Code {
	case apperrors.ResourceNotFound,
		apperrors.CatalogProductNotFound,
		apperrors.CatalogSupplierNotFound,
		apperrors.CatalogCategoryNotFound,
		apperrors.CatalogSubcategoryNotFound,
		apperrors.CatalogStatusNotFound:
		status = http.StatusNotFound
	case apperrors.CatalogSlugExists,
		apperrors.CatalogSKUExists,
		apperrors.CatalogSupplierCodeExists,
		apperrors.ResourceAlreadyExists:
		status = http.StatusConflict
	case apperrors.ValidationRequired, apperrors.ValidationInvalidInput:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.Error("Unhandled storage error", err, map[string]interface{}{
			"context": context,
		})
	}

	apperrors.RespondWithError(c, status, info.Code, info.Message)
}

// pathID parses the numeric :id path parameter; a response is already
// written when ok is false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid identifier: "+raw)
		return 0, false
	}
	return uint(id), true
}
