package service

import (
	"errors"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

const (
	// PageSize is the fixed public listing page size.
	PageSize = 12
	// HomeProductTarget is how many products the homepage tries to show.
	HomeProductTarget = 28
	// RelatedProductLimit caps the "related" strip on a detail page.
	RelatedProductLimit = 3
)

// CatalogFilter is the public listing filter set. All fields are optional
// and compose with AND.
type CatalogFilter struct {
	CategorySlug    string
	SubcategorySlug string
	SupplierSlug    string
	StatusSlug      string
	FeaturedOnly    bool
	OnSaleOnly      bool
	Search          string
	Page            int
}

// ProductPage is one page of public listing results.
type ProductPage struct {
	Products   []model.Product
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ProductDetail is a public detail page payload.
type ProductDetail struct {
	Product *model.Product
	Related []model.Product
}

// CatalogService serves the public, read-only side of the site. Inactive
// products never leave this service.
type CatalogService interface {
	ListProducts(filter CatalogFilter) (*ProductPage, error)
	GetProductBySlug(slug string) (*ProductDetail, error)
	HomeProducts() ([]model.Product, error)
	ListCategories() ([]model.Category, error)
	ListSubcategories(categorySlug string) ([]model.Subcategory, error)
	ListSuppliers() ([]model.Supplier, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *catalogService) ListProducts(filter CatalogFilter) (*ProductPage, error) {
	logger.Debug("Listing public products", map[string]interface{}{
		"category":    filter.CategorySlug,
		"subcategory": filter.SubcategorySlug,
		"supplier":    filter.SupplierSlug,
		"status":      filter.StatusSlug,
		"search":      filter.Search,
		"page":        filter.Page,
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}

	repoFilter := repository.ProductFilter{
		CategorySlug:    filter.CategorySlug,
		SubcategorySlug: filter.SubcategorySlug,
		SupplierSlug:    filter.SupplierSlug,
		StatusSlug:      filter.StatusSlug,
		FeaturedOnly:    filter.FeaturedOnly,
		OnSaleOnly:      filter.OnSaleOnly,
		Search:          filter.Search,
		ActiveOnly:      true,
	}

	total, err := s.productRepo.CountWithFilter(repoFilter)
	if err != nil {
		logger.Error("Failed to count public products", err)
		return nil, err
	}

	repoFilter.Limit = PageSize
	repoFilter.Offset = (page - 1) * PageSize

	products, err := s.productRepo.FindWithFilter(repoFilter)
	if err != nil {
		logger.Error("Failed to list public products", err)
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	logger.Info("Public products listed", map[string]interface{}{
		"count": len(products),
		"total": total,
		"page":  page,
	})

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *catalogService) GetProductBySlug(slug string) (*ProductDetail, error) {
	product, err := s.productRepo.FindActiveBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Public product not found", map[string]interface{}{
				"slug": slug,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch public product", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}

	detail := &ProductDetail{Product: product}

	if product.CategoryID != nil {
		related, err := s.productRepo.FindRelated(*product.CategoryID, product.ID, RelatedProductLimit)
		if err != nil {
			return nil, err
		}
		detail.Related = related
	}

	return detail, nil
}

// HomeProducts assembles the homepage strip: featured-active products
// first, topped up with other active products until the target count is
// reached. Fewer active products than the target yields them all,
// unpadded.
func (s *catalogService) HomeProducts() ([]model.Product, error) {
	featured, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		ActiveOnly:   true,
		FeaturedOnly: true,
		Limit:        HomeProductTarget,
	})
	if err != nil {
		logger.Error("Failed to fetch featured products for home", err)
		return nil, err
	}

	if len(featured) >= HomeProductTarget {
		return featured, nil
	}

	excludeIDs := make([]uint, 0, len(featured))
	for _, p := range featured {
		excludeIDs = append(excludeIDs, p.ID)
	}

	fill, err := s.productRepo.FindActiveExcluding(excludeIDs, HomeProductTarget-len(featured))
	if err != nil {
		logger.Error("Failed to fetch fill products for home", err)
		return nil, err
	}

	logger.Debug("Home products assembled", map[string]interface{}{
		"featured": len(featured),
		"fill":     len(fill),
	})
	return append(featured, fill...), nil
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) ListSubcategories(categorySlug string) ([]model.Subcategory, error) {
	return s.categoryRepo.FindSubcategoriesByCategorySlug(categorySlug)
}

func (s *catalogService) ListSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}
