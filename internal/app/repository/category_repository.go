package repository

import (
	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error

	CreateSubcategory(subcategory *model.Subcategory) error
	FindSubcategories(categoryID uint) ([]model.Subcategory, error)
	FindSubcategoriesByCategorySlug(categorySlug string) ([]model.Subcategory, error)
	FindSubcategoryByID(id uint) (*model.Subcategory, error)
	UpdateSubcategory(subcategory *model.Subcategory) error
	DeleteSubcategory(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name": category.Name,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Preload("Subcategories").Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Subcategories").First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Subcategories").Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

// Delete removes a category, cascades to its subcategories, and clears the
// category and subcategory references on products that used them.
func (r *categoryRepository) Delete(id uint) error {
	logger.Debug("Deleting category from database", map[string]interface{}{
		"category_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var subcategoryIDs []uint
		if err := tx.Model(&model.Subcategory{}).
			Where("category_id = ?", id).
			Pluck("id", &subcategoryIDs).Error; err != nil {
			return err
		}

		if len(subcategoryIDs) > 0 {
			if err := tx.Model(&model.Product{}).
				Where("subcategory_id IN ?", subcategoryIDs).
				Update("subcategory_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).
				Delete(&model.Subcategory{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *categoryRepository) CreateSubcategory(subcategory *model.Subcategory) error {
	logger.Debug("Creating subcategory in database", map[string]interface{}{
		"name":        subcategory.Name,
		"category_id": subcategory.CategoryID,
	})

	if err := r.db.Create(subcategory).Error; err != nil {
		logger.Error("Failed to create subcategory in database", err, map[string]interface{}{
			"name":        subcategory.Name,
			"category_id": subcategory.CategoryID,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindSubcategories(categoryID uint) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	if err := r.db.Where("category_id = ?", categoryID).
		Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *categoryRepository) FindSubcategoriesByCategorySlug(categorySlug string) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	if err := r.db.
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.slug = ?", categorySlug).
		Order("subcategories.name ASC").
		Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *categoryRepository) FindSubcategoryByID(id uint) (*model.Subcategory, error) {
	var subcategory model.Subcategory
	if err := r.db.Preload("Category").First(&subcategory, id).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *categoryRepository) UpdateSubcategory(subcategory *model.Subcategory) error {
	if err := r.db.Save(subcategory).Error; err != nil {
		logger.Error("Failed to update subcategory in database", err, map[string]interface{}{
			"subcategory_id": subcategory.ID,
		})
		return err
	}
	return nil
}

// DeleteSubcategory removes one subcategory and clears the reference on
// products that used it.
func (r *categoryRepository) DeleteSubcategory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("subcategory_id = ?", id).
			Update("subcategory_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Subcategory{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
