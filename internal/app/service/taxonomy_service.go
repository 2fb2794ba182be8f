package service

import (
	"errors"
	"strings"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/coimpres/coimpres-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrCategoryRequired    = errors.New("category is required")
)

// CategoryInput is the typed form payload for category create/update.
type CategoryInput struct {
	Name string
	Slug string
}

// SubcategoryInput is the typed form payload for subcategory
// create/update. CategoryID is mandatory.
type SubcategoryInput struct {
	Name       string
	Slug       string
	CategoryID uint
}

// TaxonomyService manages categories and their subcategories.
type TaxonomyService interface {
	ListCategories() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
	CreateCategory(input CategoryInput) (*model.Category, error)
	UpdateCategory(id uint, input CategoryInput) (*model.Category, error)
	DeleteCategory(id uint) error

	ListSubcategories(categoryID uint) ([]model.Subcategory, error)
	GetSubcategoryByID(id uint) (*model.Subcategory, error)
	CreateSubcategory(input SubcategoryInput) (*model.Subcategory, error)
	UpdateSubcategory(id uint, input SubcategoryInput) (*model.Subcategory, error)
	DeleteSubcategory(id uint) error
}

type taxonomyService struct {
	categoryRepo repository.CategoryRepository
}

func NewTaxonomyService(categoryRepo repository.CategoryRepository) TaxonomyService {
	return &taxonomyService{categoryRepo: categoryRepo}
}

func (s *taxonomyService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *taxonomyService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) CreateCategory(input CategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}

	category := &model.Category{
		Name: input.Name,
		Slug: slug,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category, nil
}

func (s *taxonomyService) UpdateCategory(id uint, input CategoryInput) (*model.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	category.Name = input.Name

	if input.Slug != "" {
		category.Slug = input.Slug
	} else if category.Slug == "" {
		category.Slug = util.Slugify(input.Name)
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	logger.Info("Category updated", map[string]interface{}{
		"category_id": category.ID,
	})
	return category, nil
}

// DeleteCategory removes the category together with its subcategories;
// products referencing either keep existing with cleared references.
func (s *taxonomyService) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}

func (s *taxonomyService) ListSubcategories(categoryID uint) ([]model.Subcategory, error) {
	return s.categoryRepo.FindSubcategories(categoryID)
}

func (s *taxonomyService) GetSubcategoryByID(id uint) (*model.Subcategory, error) {
	subcategory, err := s.categoryRepo.FindSubcategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return subcategory, nil
}

func (s *taxonomyService) CreateSubcategory(input SubcategoryInput) (*model.Subcategory, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}
	if _, err := s.GetCategoryByID(input.CategoryID); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}

	subcategory := &model.Subcategory{
		Name:       input.Name,
		Slug:       slug,
		CategoryID: input.CategoryID,
	}

	if err := s.categoryRepo.CreateSubcategory(subcategory); err != nil {
		return nil, err
	}

	logger.Info("Subcategory created", map[string]interface{}{
		"subcategory_id": subcategory.ID,
		"category_id":    subcategory.CategoryID,
	})
	return subcategory, nil
}

func (s *taxonomyService) UpdateSubcategory(id uint, input SubcategoryInput) (*model.Subcategory, error) {
	subcategory, err := s.GetSubcategoryByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}
	if _, err := s.GetCategoryByID(input.CategoryID); err != nil {
		return nil, err
	}

	subcategory.Name = input.Name
	subcategory.CategoryID = input.CategoryID

	if input.Slug != "" {
		subcategory.Slug = input.Slug
	} else if subcategory.Slug == "" {
		subcategory.Slug = util.Slugify(input.Name)
	}

	if err := s.categoryRepo.UpdateSubcategory(subcategory); err != nil {
		return nil, err
	}

	logger.Info("Subcategory updated", map[string]interface{}{
		"subcategory_id": subcategory.ID,
	})
	return subcategory, nil
}

func (s *taxonomyService) DeleteSubcategory(id uint) error {
	if err := s.categoryRepo.DeleteSubcategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubcategoryNotFound
		}
		return err
	}

	logger.Info("Subcategory deleted", map[string]interface{}{
		"subcategory_id": id,
	})
	return nil
}
