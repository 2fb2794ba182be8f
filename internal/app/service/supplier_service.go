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

var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierInput is the typed form payload for supplier create/update.
type SupplierInput struct {
	Name       string
	Slug       string
	Code       string
	LogoURL    *string
	CatalogURL *string
}

type SupplierService interface {
	ListSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uint) (*model.Supplier, error)
	CreateSupplier(input SupplierInput) (*model.Supplier, error)
	UpdateSupplier(id uint, input SupplierInput) (*model.Supplier, error)
	DeleteSupplier(id uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) ListSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) GetSupplierByID(id uint) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) CreateSupplier(input SupplierInput) (*model.Supplier, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}

	supplier := &model.Supplier{
		Name: input.Name,
		Slug: slug,
		Code: input.Code,
	}
	if input.LogoURL != nil {
		supplier.LogoURL = *input.LogoURL
	}
	if input.CatalogURL != nil {
		supplier.CatalogURL = *input.CatalogURL
	}

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}

	logger.Info("Supplier created", map[string]interface{}{
		"supplier_id": supplier.ID,
		"name":        supplier.Name,
	})
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(id uint, input SupplierInput) (*model.Supplier, error) {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	supplier.Name = input.Name
	supplier.Code = input.Code

	if input.Slug != "" {
		supplier.Slug = input.Slug
	} else if supplier.Slug == "" {
		supplier.Slug = util.Slugify(input.Name)
	}

	if input.LogoURL != nil {
		supplier.LogoURL = *input.LogoURL
	}
	if input.CatalogURL != nil {
		supplier.CatalogURL = *input.CatalogURL
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}

	logger.Info("Supplier updated", map[string]interface{}{
		"supplier_id": supplier.ID,
	})
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(id uint) error {
	if err := s.supplierRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}

	logger.Info("Supplier deleted", map[string]interface{}{
		"supplier_id": id,
	})
	return nil
}
