package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The admin frontend maps these codes to translated messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email or password
	AuthSessionExpired     = "AUTH_SESSION_EXPIRED"     // session no longer valid
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // duplicate account email

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (CATALOG_) ====================
	CatalogProductNotFound     = "CATALOG_PRODUCT_NOT_FOUND"
	CatalogSupplierNotFound    = "CATALOG_SUPPLIER_NOT_FOUND"
	CatalogCategoryNotFound    = "CATALOG_CATEGORY_NOT_FOUND"
	CatalogSubcategoryNotFound = "CATALOG_SUBCATEGORY_NOT_FOUND"
	CatalogStatusNotFound      = "CATALOG_STATUS_NOT_FOUND"
	CatalogSlugExists          = "CATALOG_SLUG_EXISTS"
	CatalogSKUExists           = "CATALOG_SKU_EXISTS"
	CatalogSupplierCodeExists  = "CATALOG_SUPPLIER_CODE_EXISTS"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
