package controller

import (
	"errors"
	"net/http"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/coimpres/coimpres-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// SupplierController is the admin CRUD surface for suppliers. Forms are
// multipart: the logo image and the catalog PDF ride along with the
// scalar fields.
type SupplierController struct {
	supplierService service.SupplierService
	files           storage.FileStorage
	uploads         config.UploadConfig
}

func NewSupplierController(supplierService service.SupplierService, files storage.FileStorage, uploads config.UploadConfig) *SupplierController {
	return &SupplierController{
		supplierService: supplierService,
		files:           files,
		uploads:         uploads,
	}
}

// ListSuppliers returns all suppliers for the admin table.
// GET /admin/suppliers
func (ctrl *SupplierController) ListSuppliers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	suppliers, err := ctrl.supplierService.ListSuppliers()
	if err != nil {
		log.Error("Failed to list suppliers", err, nil)
		apperrors.InternalError(c, "Failed to fetch suppliers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suppliers": suppliers,
		"count":     len(suppliers),
	})
}

// GetSupplier returns one supplier.
// GET /admin/suppliers/:id
func (ctrl *SupplierController) GetSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	supplier, err := ctrl.supplierService.GetSupplierByID(id)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			apperrors.NotFound(c, apperrors.CatalogSupplierNotFound, "Supplier not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch supplier")
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

func (ctrl *SupplierController) bindInput(c *gin.Context) (service.SupplierInput, bool) {
	input := service.SupplierInput{
		Name: c.PostForm("name"),
		Slug: c.PostForm("slug"),
		Code: c.PostForm("code"),
	}

	logoURL, err := formFile(c, ctrl.files, "logo", "suppliers/logos", storage.ImageContentTypes, ctrl.uploads.MaxImageSize)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
		return input, false
	}
	input.LogoURL = logoURL

	catalogURL, err := formFile(c, ctrl.files, "catalog", "suppliers/catalogs", storage.PDFContentTypes, ctrl.uploads.MaxPDFSize)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
		return input, false
	}
	input.CatalogURL = catalogURL

	return input, true
}

// CreateSupplier creates a supplier from a multipart form.
// POST /admin/suppliers
func (ctrl *SupplierController) CreateSupplier(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, ok := ctrl.bindInput(c)
	if !ok {
		return
	}

	supplier, err := ctrl.supplierService.CreateSupplier(input)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
			return
		}
		respondStorageError(c, log, err, "supplier")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

// UpdateSupplier updates a supplier; omitted files keep their stored URLs.
// PUT /admin/suppliers/:id
func (ctrl *SupplierController) UpdateSupplier(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	input, ok := ctrl.bindInput(c)
	if !ok {
		return
	}

	supplier, err := ctrl.supplierService.UpdateSupplier(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupplierNotFound):
			apperrors.NotFound(c, apperrors.CatalogSupplierNotFound, "Supplier not found")
		case errors.Is(err, service.ErrNameRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
		default:
			respondStorageError(c, log, err, "supplier")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier removes the supplier; its products stay, unbranded.
// DELETE /admin/suppliers/:id
func (ctrl *SupplierController) DeleteSupplier(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.supplierService.DeleteSupplier(id); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			apperrors.NotFound(c, apperrors.CatalogSupplierNotFound, "Supplier not found")
			return
		}
		respondStorageError(c, log, err, "supplier")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
