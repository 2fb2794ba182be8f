package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/coimpres/coimpres-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the public, read-only catalog endpoints.
type CatalogController struct {
	catalogService service.CatalogService
	sitemapService service.SitemapService
}

func NewCatalogController(catalogService service.CatalogService, sitemapService service.SitemapService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		sitemapService: sitemapService,
	}
}

// Home returns the homepage payload: the featured-first product strip and
// the UI strings for the requested language.
// GET /api/v1/home?lang=es
func (ctrl *CatalogController) Home(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.catalogService.HomeProducts()
	if err != nil {
		log.Error("Failed to assemble home products", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load homepage",
		})
		return
	}

	lang := c.DefaultQuery("lang", "es")

	c.JSON(http.StatusOK, gin.H{
		"products":  products,
		"count":     len(products),
		"language":  lang,
		"languages": i18n.Languages(),
		"strings":   i18n.Table(lang),
	})
}

// ListProducts returns a page of active products.
// GET /api/v1/products?category=&subcategory=&supplier=&status=&featured=&on_sale=&q=&page=
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := service.CatalogFilter{
		CategorySlug:    c.Query("category"),
		SubcategorySlug: c.Query("subcategory"),
		SupplierSlug:    c.Query("supplier"),
		StatusSlug:      c.Query("status"),
		FeaturedOnly:    c.Query("featured") == "true",
		OnSaleOnly:      c.Query("on_sale") == "true",
		Search:          c.Query("q"),
		Page:            page,
	}

	result, err := ctrl.catalogService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to list products", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    result.Products,
		"total":       result.Total,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_pages": result.TotalPages,
	})
}

// GetProductBySlug returns one active product with its related strip.
// GET /api/v1/products/:slug
func (ctrl *CatalogController) GetProductBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")

	detail, err := ctrl.catalogService.GetProductBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": detail.Product,
		"related": detail.Related,
	})
}

// ListCategories returns every category with its subcategories.
// GET /api/v1/categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to list categories", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ListSubcategories returns the subcategories of one category.
// GET /api/v1/categories/:slug/subcategories
func (ctrl *CatalogController) ListSubcategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")

	subcategories, err := ctrl.catalogService.ListSubcategories(slug)
	if err != nil {
		log.Error("Failed to list subcategories", err, map[string]interface{}{
			"category": slug,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch subcategories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subcategories": subcategories,
		"count":         len(subcategories),
	})
}

// ListSuppliers returns every supplier for the public brands page.
// GET /api/v1/suppliers
func (ctrl *CatalogController) ListSuppliers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	suppliers, err := ctrl.catalogService.ListSuppliers()
	if err != nil {
		log.Error("Failed to list suppliers", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch suppliers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suppliers": suppliers,
		"count":     len(suppliers),
	})
}

// Sitemap serves the cached sitemap document.
// GET /sitemap.xml
func (ctrl *CatalogController) Sitemap(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	body, err := ctrl.sitemapService.Get()
	if err != nil {
		log.Error("Failed to build sitemap", err, nil)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
