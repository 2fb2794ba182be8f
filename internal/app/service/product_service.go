package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/coimpres/coimpres-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrImageNotFound = errors.New("product image not found")
	ErrVideoNotFound = errors.New("product video not found")
)

// skuGenerationAttempts bounds the uniqueness retry loop; the DB unique
// constraint remains the final arbiter under concurrent creates.
const skuGenerationAttempts = 100

// ProductInput is the typed form payload for product create/update.
// Pointer file fields distinguish "not provided" (nil, keep existing)
// from "provided" on update.
type ProductInput struct {
	Name             string
	Slug             string
	SKU              string
	Price            float64
	Weight           float64
	OriginCountry    string
	ShortDescription string
	Description      string
	IsActive         bool
	IsOnSale         bool
	IsFeatured       bool
	SupplierID       *uint
	CategoryID       *uint
	SubcategoryID    *uint
	StatusID         *uint
	ImageURL         *string
	CatalogURL       *string
}

// GalleryImagesInput carries the parallel form lists of a gallery upload.
// AltTexts and Orders may be shorter than URLs: missing alt texts default
// to empty, missing orders default to list position. PrimaryIndex is the
// index into URLs marked primary, -1 for none.
type GalleryImagesInput struct {
	URLs         []string
	AltTexts     []string
	Orders       []*int
	PrimaryIndex int
}

// GalleryVideosInput is the video analogue; videos have no primary flag.
type GalleryVideosInput struct {
	URLs         []string
	Titles       []string
	Descriptions []string
	Orders       []*int
}

// ProductService is the admin-side write API for products and their
// galleries.
type ProductService interface {
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(id uint) error

	AttachImages(productID uint, input GalleryImagesInput) ([]model.ProductImage, error)
	AttachVideos(productID uint, input GalleryVideosInput) ([]model.ProductVideo, error)
	SetPrimaryImage(productID, imageID uint) error
	DeleteImage(imageID uint) error
	DeleteVideo(videoID uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	statusRepo   repository.StatusRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		statusRepo:   statusRepo,
	}
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// resolveReferences validates the optional foreign keys and returns the
// supplier and category used for SKU prefixes.
func (s *productService) resolveReferences(input ProductInput) (*model.Supplier, *model.Category, error) {
	var supplier *model.Supplier
	var category *model.Category

	if input.SupplierID != nil {
		found, err := s.supplierRepo.FindByID(*input.SupplierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrSupplierNotFound
			}
			return nil, nil, err
		}
		supplier = found
	}

	if input.CategoryID != nil {
		found, err := s.categoryRepo.FindByID(*input.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrCategoryNotFound
			}
			return nil, nil, err
		}
		category = found
	}

	if input.SubcategoryID != nil {
		if _, err := s.categoryRepo.FindSubcategoryByID(*input.SubcategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrSubcategoryNotFound
			}
			return nil, nil, err
		}
	}

	if input.StatusID != nil {
		if _, err := s.statusRepo.FindByID(*input.StatusID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrStatusNotFound
			}
			return nil, nil, err
		}
	}

	return supplier, category, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	logger.Debug("Creating product", map[string]interface{}{
		"name": input.Name,
		"sku":  input.SKU,
	})

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	supplier, category, err := s.resolveReferences(input)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}

	sku := input.SKU
	if sku == "" {
		sku, err = s.generateSKU(supplier, category)
		if err != nil {
			return nil, err
		}
	}

	product := &model.Product{
		Name:             input.Name,
		Slug:             slug,
		SKU:              sku,
		Price:            input.Price,
		Weight:           input.Weight,
		OriginCountry:    input.OriginCountry,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		IsActive:         input.IsActive,
		IsOnSale:         input.IsOnSale,
		IsFeatured:       input.IsFeatured,
		SupplierID:       input.SupplierID,
		CategoryID:       input.CategoryID,
		SubcategoryID:    input.SubcategoryID,
		StatusID:         input.StatusID,
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.CatalogURL != nil {
		product.CatalogURL = *input.CatalogURL
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	if _, _, err := s.resolveReferences(input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Weight = input.Weight
	product.OriginCountry = input.OriginCountry
	product.ShortDescription = input.ShortDescription
	product.Description = input.Description
	product.IsActive = input.IsActive
	product.IsOnSale = input.IsOnSale
	product.IsFeatured = input.IsFeatured
	product.SupplierID = input.SupplierID
	product.CategoryID = input.CategoryID
	product.SubcategoryID = input.SubcategoryID
	product.StatusID = input.StatusID

	if input.Slug != "" {
		product.Slug = input.Slug
	} else if product.Slug == "" {
		product.Slug = util.Slugify(input.Name)
	}

	// A manually entered SKU replaces the stored one; blank keeps it.
	if input.SKU != "" {
		product.SKU = input.SKU
	}

	// File fields: nil means no new upload, keep the stored URL.
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.CatalogURL != nil {
		product.CatalogURL = *input.CatalogURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// skuPrefix derives a 3-letter code from an entity name, "GEN" when the
// entity is unset or yields no letters.
func skuPrefix(name string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(util.Slugify(name), "-", ""))
	if cleaned == "" {
		return "GEN"
	}
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}

// generateSKU builds SUP-CAT-YYYYMMDD-HHMMSS-RRR and retries with a
// numeric suffix while the candidate is taken. The loop is a best-effort
// pre-check; the unique index resolves the remaining race.
func (s *productService) generateSKU(supplier *model.Supplier, category *model.Category) (string, error) {
	supPrefix, catPrefix := "GEN", "GEN"
	if supplier != nil {
		supPrefix = skuPrefix(supplier.Name)
	}
	if category != nil {
		catPrefix = skuPrefix(category.Name)
	}

	now := time.Now()
	base := fmt.Sprintf("%s-%s-%s-%s-%s",
		supPrefix, catPrefix,
		now.Format("20060102"), now.Format("150405"),
		util.RandomDigits(3),
	)

	candidate := base
	for attempt := 1; attempt <= skuGenerationAttempts; attempt++ {
		exists, err := s.productRepo.SKUExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return "", fmt.Errorf("could not generate a unique sku after %d attempts", skuGenerationAttempts)
}

func (s *productService) AttachImages(productID uint, input GalleryImagesInput) ([]model.ProductImage, error) {
	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	images := make([]model.ProductImage, 0, len(input.URLs))
	for i, url := range input.URLs {
		altText := ""
		if i < len(input.AltTexts) {
			altText = input.AltTexts[i]
		}

		sortOrder := i
		if i < len(input.Orders) && input.Orders[i] != nil {
			sortOrder = *input.Orders[i]
		}

		image := model.ProductImage{
			ProductID: productID,
			ImageURL:  url,
			AltText:   altText,
			SortOrder: sortOrder,
			IsPrimary: i == input.PrimaryIndex,
		}
		if err := s.productRepo.AddImage(&image); err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	// Enforce the single-primary invariant against pre-existing images.
	if input.PrimaryIndex >= 0 && input.PrimaryIndex < len(images) {
		if err := s.productRepo.MarkImagePrimary(productID, images[input.PrimaryIndex].ID); err != nil {
			return nil, err
		}
	}

	logger.Info("Product images attached", map[string]interface{}{
		"product_id": productID,
		"count":      len(images),
	})
	return images, nil
}

func (s *productService) AttachVideos(productID uint, input GalleryVideosInput) ([]model.ProductVideo, error) {
	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	videos := make([]model.ProductVideo, 0, len(input.URLs))
	for i, url := range input.URLs {
		title := ""
		if i < len(input.Titles) {
			title = input.Titles[i]
		}

		description := ""
		if i < len(input.Descriptions) {
			description = input.Descriptions[i]
		}

		sortOrder := i
		if i < len(input.Orders) && input.Orders[i] != nil {
			sortOrder = *input.Orders[i]
		}

		video := model.ProductVideo{
			ProductID:   productID,
			VideoURL:    url,
			Title:       title,
			Description: description,
			SortOrder:   sortOrder,
		}
		if err := s.productRepo.AddVideo(&video); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	logger.Info("Product videos attached", map[string]interface{}{
		"product_id": productID,
		"count":      len(videos),
	})
	return videos, nil
}

func (s *productService) SetPrimaryImage(productID, imageID uint) error {
	if err := s.productRepo.MarkImagePrimary(productID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

func (s *productService) DeleteImage(imageID uint) error {
	if err := s.productRepo.DeleteImage(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

func (s *productService) DeleteVideo(videoID uint) error {
	if err := s.productRepo.DeleteVideo(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	return nil
}
