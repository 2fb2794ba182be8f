package repository

import (
	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uint) (*model.Supplier, error)
	FindBySlug(slug string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uint) error
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *model.Supplier) error {
	logger.Debug("Creating supplier in database", map[string]interface{}{
		"name": supplier.Name,
		"code": supplier.Code,
	})

	if err := r.db.Create(supplier).Error; err != nil {
		logger.Error("Failed to create supplier in database", err, map[string]interface{}{
			"name": supplier.Name,
			"code": supplier.Code,
		})
		return err
	}
	return nil
}

func (r *supplierRepository) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.db.Order("name ASC").Find(&suppliers).Error; err != nil {
		logger.Error("Failed to list suppliers", err)
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) FindByID(id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) FindBySlug(slug string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.Where("slug = ?", slug).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) Update(supplier *model.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		logger.Error("Failed to update supplier in database", err, map[string]interface{}{
			"supplier_id": supplier.ID,
		})
		return err
	}
	return nil
}

// Delete removes a supplier and clears the reference on any product that
// points at it. Products themselves are kept.
func (r *supplierRepository) Delete(id uint) error {
	logger.Debug("Deleting supplier from database", map[string]interface{}{
		"supplier_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Supplier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
