package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		wantCode string
	}{
		{
			name:     "Record not found maps to resource not found",
			err:      gorm.ErrRecordNotFound,
			context:  "product detail",
			wantCode: ResourceNotFound,
		},
		{
			name:     "Duplicate sku",
			err:      errors.New(`duplicate key value violates unique constraint "idx_products_sku"`),
			context:  "create product",
			wantCode: CatalogSKUExists,
		},
		{
			name:     "Duplicate slug (sqlite style)",
			err:      errors.New("UNIQUE constraint failed: categories.slug"),
			context:  "create category",
			wantCode: CatalogSlugExists,
		},
		{
			name:     "Duplicate supplier code",
			err:      errors.New(`duplicate key value violates unique constraint "idx_suppliers_code"`),
			context:  "create supplier",
			wantCode: CatalogSupplierCodeExists,
		},
		{
			name:     "Foreign key violation",
			err:      errors.New(`insert or update on table "products" violates foreign key constraint "fk_categories"`),
			context:  "create product",
			wantCode: ResourceNotFound,
		},
		{
			name:     "Unknown error falls back to internal",
			err:      errors.New("connection reset by peer"),
			context:  "update product",
			wantCode: InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, tt.context)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotEmpty(t, info.Message)
		})
	}
}

func TestParseError_NotFoundMessagesFollowContext(t *testing.T) {
	assert.Equal(t, "Product not found", ParseError(gorm.ErrRecordNotFound, "delete product").Message)
	assert.Equal(t, "Subcategory not found", ParseError(gorm.ErrRecordNotFound, "update subcategory").Message)
	assert.Equal(t, "Category not found", ParseError(gorm.ErrRecordNotFound, "delete category").Message)
}
