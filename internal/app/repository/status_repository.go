package repository

import (
	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"gorm.io/gorm"
)

type StatusRepository interface {
	Create(status *model.Status) error
	FindAll() ([]model.Status, error)
	FindByID(id uint) (*model.Status, error)
	FindBySlug(slug string) (*model.Status, error)
	Update(status *model.Status) error
	Delete(id uint) error
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(status *model.Status) error {
	logger.Debug("Creating status in database", map[string]interface{}{
		"name": status.Name,
	})

	if err := r.db.Create(status).Error; err != nil {
		logger.Error("Failed to create status in database", err, map[string]interface{}{
			"name": status.Name,
		})
		return err
	}
	return nil
}

func (r *statusRepository) FindAll() ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.Order("name ASC").Find(&statuses).Error; err != nil {
		logger.Error("Failed to list statuses", err)
		return nil, err
	}
	return statuses, nil
}

func (r *statusRepository) FindByID(id uint) (*model.Status, error) {
	var status model.Status
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) FindBySlug(slug string) (*model.Status, error) {
	var status model.Status
	if err := r.db.Where("slug = ?", slug).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) Update(status *model.Status) error {
	if err := r.db.Save(status).Error; err != nil {
		logger.Error("Failed to update status in database", err, map[string]interface{}{
			"status_id": status.ID,
		})
		return err
	}
	return nil
}

// Delete removes a status and clears the reference on products that used it.
func (r *statusRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("status_id = ?", id).
			Update("status_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Status{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
