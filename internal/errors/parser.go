package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed storage error: a stable code plus a message safe
// to show to the admin user.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts storage-layer errors into user-facing code+message
// pairs. Raw constraint errors never reach the response; a unique-index
// violation that survives the pre-check surfaces as a validation-style
// conflict, per the save-boundary rules of the admin panel.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "An internal error occurred"}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "A referenced record does not exist",
		}
	}

	// Not null constraint violation (23502)
	if strings.Contains(errStrLower, "violates not-null constraint") ||
		strings.Contains(errStrLower, "not null constraint failed") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "sku") {
		return ErrorInfo{Code: CatalogSKUExists, Message: "This SKU is already in use"}
	}
	if strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: CatalogSlugExists, Message: "This slug is already in use"}
	}
	if strings.Contains(errLower, "code") {
		return ErrorInfo{Code: CatalogSupplierCodeExists, Message: "This supplier code is already in use"}
	}
	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email is already in use"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "A record with these values already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "product"):
		return "Product not found"
	case strings.Contains(contextLower, "supplier"):
		return "Supplier not found"
	case strings.Contains(contextLower, "subcategory"):
		return "Subcategory not found"
	case strings.Contains(contextLower, "category"):
		return "Category not found"
	case strings.Contains(contextLower, "status"):
		return "Status not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}
	return "The requested record was not found"
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Could not create the record. Please try again"
	case strings.Contains(contextLower, "update"):
		return "Could not update the record. Please try again"
	case strings.Contains(contextLower, "delete"):
		return "Could not delete the record. Please try again"
	}
	return "An internal error occurred. Please try again later"
}
