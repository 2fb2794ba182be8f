package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/coimpres/coimpres-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// ProductController is the admin CRUD surface for products, including
// the image and video galleries. All write endpoints take multipart
// forms so files ride along with the scalar fields.
type ProductController struct {
	productService service.ProductService
	files          storage.FileStorage
	uploads        config.UploadConfig
}

func NewProductController(productService service.ProductService, files storage.FileStorage, uploads config.UploadConfig) *ProductController {
	return &ProductController{
		productService: productService,
		files:          files,
		uploads:        uploads,
	}
}

// ListProducts returns products for the admin table, inactive included.
// GET /admin/products?q=&category=&supplier=&active=
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ProductFilter{
		CategorySlug: c.Query("category"),
		SupplierSlug: c.Query("supplier"),
		Search:       c.Query("q"),
		ActiveOnly:   c.Query("active") == "true",
	}

	products, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to list products for admin", err, nil)
		apperrors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product with galleries and references loaded.
// GET /admin/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func formUintPtr(c *gin.Context, field string) *uint {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(value)
	return &id
}

func formFloat(c *gin.Context, field string) float64 {
	value, _ := strconv.ParseFloat(c.PostForm(field), 64)
	return value
}

func formBool(c *gin.Context, field string) bool {
	switch c.PostForm(field) {
	case "true", "on", "1":
		return true
	}
	return false
}

func (ctrl *ProductController) bindInput(c *gin.Context) (service.ProductInput, bool) {
	input := service.ProductInput{
		Name:             c.PostForm("name"),
		Slug:             c.PostForm("slug"),
		SKU:              c.PostForm("sku"),
		Price:            formFloat(c, "price"),
		Weight:           formFloat(c, "weight"),
		OriginCountry:    c.PostForm("origin_country"),
		ShortDescription: c.PostForm("short_description"),
		Description:      c.PostForm("description"),
		IsActive:         formBool(c, "is_active"),
		IsOnSale:         formBool(c, "is_on_sale"),
		IsFeatured:       formBool(c, "is_featured"),
		SupplierID:       formUintPtr(c, "supplier_id"),
		CategoryID:       formUintPtr(c, "category_id"),
		SubcategoryID:    formUintPtr(c, "subcategory_id"),
		StatusID:         formUintPtr(c, "status_id"),
	}

	imageURL, err := formFile(c, ctrl.files, "image", "products/covers", storage.ImageContentTypes, ctrl.uploads.MaxImageSize)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
		return input, false
	}
	input.ImageURL = imageURL

	catalogURL, err := formFile(c, ctrl.files, "catalog", "products/catalogs", storage.PDFContentTypes, ctrl.uploads.MaxPDFSize)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
		return input, false
	}
	input.CatalogURL = catalogURL

	return input, true
}

func (ctrl *ProductController) respondProductError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product not found")
	case errors.Is(err, service.ErrNameRequired):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
	case errors.Is(err, service.ErrSupplierNotFound):
		apperrors.NotFound(c, apperrors.CatalogSupplierNotFound, "Supplier not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		apperrors.NotFound(c, apperrors.CatalogCategoryNotFound, "Category not found")
	case errors.Is(err, service.ErrSubcategoryNotFound):
		apperrors.NotFound(c, apperrors.CatalogSubcategoryNotFound, "Subcategory not found")
	case errors.Is(err, service.ErrStatusNotFound):
		apperrors.NotFound(c, apperrors.CatalogStatusNotFound, "Status not found")
	default:
		respondStorageError(c, log, err, "product")
	}
}

// CreateProduct creates a product from a multipart form. A blank sku
// field triggers generation; a blank slug is derived from the name.
// POST /admin/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	input, ok := ctrl.bindInput(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.CreateProduct(input)
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct updates a product; omitted files keep their stored URLs.
// PUT /admin/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	input, ok := ctrl.bindInput(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, input)
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes the product and its galleries.
// DELETE /admin/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// parseOrders turns the parallel "orders" form values into per-position
// overrides; unparsable or missing entries default to the position.
func parseOrders(values []string) []*int {
	orders := make([]*int, len(values))
	for i, raw := range values {
		if value, err := strconv.Atoi(raw); err == nil {
			order := value
			orders[i] = &order
		}
	}
	return orders
}

// AttachImages appends gallery images from parallel multipart lists:
// "images" files, "alt_texts", "orders" and the optional "primary" index.
// POST /admin/products/:id/images
func (ctrl *ProductController) AttachImages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Expected a multipart form")
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "At least one image file is required")
		return
	}

	urls := make([]string, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		url, err := storeFile(c, ctrl.files, fileHeader, "products/gallery", storage.ImageContentTypes, ctrl.uploads.MaxImageSize)
		if err != nil {
			apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
			return
		}
		urls = append(urls, url)
	}

	primaryIndex := -1
	if raw := c.PostForm("primary"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			primaryIndex = value
		}
	}

	images, err := ctrl.productService.AttachImages(id, service.GalleryImagesInput{
		URLs:         urls,
		AltTexts:     form.Value["alt_texts"],
		Orders:       parseOrders(form.Value["orders"]),
		PrimaryIndex: primaryIndex,
	})
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"images": images,
		"count":  len(images),
	})
}

// AttachVideos appends gallery videos from parallel multipart lists:
// "videos" files, "titles", "descriptions" and "orders".
// POST /admin/products/:id/videos
func (ctrl *ProductController) AttachVideos(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Expected a multipart form")
		return
	}

	fileHeaders := form.File["videos"]
	if len(fileHeaders) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "At least one video file is required")
		return
	}

	urls := make([]string, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		url, err := storeFile(c, ctrl.files, fileHeader, "products/videos", storage.VideoContentTypes, ctrl.uploads.MaxVideoSize)
		if err != nil {
			apperrors.BadRequest(c, apperrors.UploadFailed, err.Error())
			return
		}
		urls = append(urls, url)
	}

	videos, err := ctrl.productService.AttachVideos(id, service.GalleryVideosInput{
		URLs:         urls,
		Titles:       form.Value["titles"],
		Descriptions: form.Value["descriptions"],
		Orders:       parseOrders(form.Value["orders"]),
	})
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}

// SetPrimaryImage promotes one gallery image, demoting its siblings.
// PUT /admin/products/:id/images/:image_id/primary
func (ctrl *ProductController) SetPrimaryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	if err := ctrl.productService.SetPrimaryImage(id, imageID); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Image not found")
			return
		}
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Primary image updated"})
}

// DeleteImage removes one gallery image.
// DELETE /admin/products/:id/images/:image_id
func (ctrl *ProductController) DeleteImage(c *gin.Context) {
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteImage(imageID); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Image not found")
			return
		}
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// DeleteVideo removes one gallery video.
// DELETE /admin/products/:id/videos/:video_id
func (ctrl *ProductController) DeleteVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteVideo(videoID); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Video not found")
			return
		}
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
