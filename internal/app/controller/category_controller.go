package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CategoryController is the admin CRUD surface for categories and their
// subcategories.
type CategoryController struct {
	taxonomyService service.TaxonomyService
}

func NewCategoryController(taxonomyService service.TaxonomyService) *CategoryController {
	return &CategoryController{taxonomyService: taxonomyService}
}

type CategoryRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
	Slug string `form:"slug" json:"slug"`
}

type SubcategoryRequest struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Slug       string `form:"slug" json:"slug"`
	CategoryID uint   `form:"category_id" json:"category_id" binding:"required"`
}

// ListCategories returns all categories for the admin table.
// GET /admin/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.taxonomyService.ListCategories()
	if err != nil {
		log.Error("Failed to list categories", err, nil)
		apperrors.InternalError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory creates a category.
// POST /admin/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
		return
	}

	category, err := ctrl.taxonomyService.CreateCategory(service.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondStorageError(c, log, err, "category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory updates a category.
// PUT /admin/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
		return
	}

	category, err := ctrl.taxonomyService.UpdateCategory(id, service.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CatalogCategoryNotFound, "Category not found")
			return
		}
		respondStorageError(c, log, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category and its subcategories.
// DELETE /admin/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.taxonomyService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CatalogCategoryNotFound, "Category not found")
			return
		}
		respondStorageError(c, log, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ListSubcategories returns the subcategories of one category.
// GET /admin/subcategories?category_id=
func (ctrl *CategoryController) ListSubcategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)

	subcategories, err := ctrl.taxonomyService.ListSubcategories(uint(categoryID))
	if err != nil {
		log.Error("Failed to list subcategories", err, nil)
		apperrors.InternalError(c, "Failed to fetch subcategories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subcategories": subcategories,
		"count":         len(subcategories),
	})
}

// CreateSubcategory creates a subcategory under an existing category.
// POST /admin/subcategories
func (ctrl *CategoryController) CreateSubcategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubcategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name and category_id are required")
		return
	}

	subcategory, err := ctrl.taxonomyService.CreateSubcategory(service.SubcategoryInput{
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CatalogCategoryNotFound, "Category not found")
		case errors.Is(err, service.ErrCategoryRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "category_id is required")
		default:
			respondStorageError(c, log, err, "subcategory")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subcategory": subcategory})
}

// UpdateSubcategory updates a subcategory, possibly moving it to another
// category.
// PUT /admin/subcategories/:id
func (ctrl *CategoryController) UpdateSubcategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SubcategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name and category_id are required")
		return
	}

	subcategory, err := ctrl.taxonomyService.UpdateSubcategory(id, service.SubcategoryInput{
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubcategoryNotFound):
			apperrors.NotFound(c, apperrors.CatalogSubcategoryNotFound, "Subcategory not found")
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CatalogCategoryNotFound, "Category not found")
		default:
			respondStorageError(c, log, err, "subcategory")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"subcategory": subcategory})
}

// DeleteSubcategory removes a subcategory; its products stay.
// DELETE /admin/subcategories/:id
func (ctrl *CategoryController) DeleteSubcategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.taxonomyService.DeleteSubcategory(id); err != nil {
		if errors.Is(err, service.ErrSubcategoryNotFound) {
			apperrors.NotFound(c, apperrors.CatalogSubcategoryNotFound, "Subcategory not found")
			return
		}
		respondStorageError(c, log, err, "subcategory")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
}
