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

var ErrStatusNotFound = errors.New("status not found")

// StatusInput is the typed form payload for status create/update.
type StatusInput struct {
	Name        string
	Slug        string
	Description string
}

type StatusService interface {
	ListStatuses() ([]model.Status, error)
	GetStatusByID(id uint) (*model.Status, error)
	CreateStatus(input StatusInput) (*model.Status, error)
	UpdateStatus(id uint, input StatusInput) (*model.Status, error)
	DeleteStatus(id uint) error
}

type statusService struct {
	statusRepo repository.StatusRepository
}

func NewStatusService(statusRepo repository.StatusRepository) StatusService {
	return &statusService{statusRepo: statusRepo}
}

func (s *statusService) ListStatuses() ([]model.Status, error) {
	return s.statusRepo.FindAll()
}

func (s *statusService) GetStatusByID(id uint) (*model.Status, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return status, nil
}

func (s *statusService) CreateStatus(input StatusInput) (*model.Status, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}

	status := &model.Status{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}

	if err := s.statusRepo.Create(status); err != nil {
		return nil, err
	}

	logger.Info("Status created", map[string]interface{}{
		"status_id": status.ID,
		"name":      status.Name,
	})
	return status, nil
}

func (s *statusService) UpdateStatus(id uint, input StatusInput) (*model.Status, error) {
	status, err := s.GetStatusByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	status.Name = input.Name
	status.Description = input.Description

	if input.Slug != "" {
		status.Slug = input.Slug
	} else if status.Slug == "" {
		status.Slug = util.Slugify(input.Name)
	}

	if err := s.statusRepo.Update(status); err != nil {
		return nil, err
	}

	logger.Info("Status updated", map[string]interface{}{
		"status_id": status.ID,
	})
	return status, nil
}

func (s *statusService) DeleteStatus(id uint) error {
	if err := s.statusRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusNotFound
		}
		return err
	}

	logger.Info("Status deleted", map[string]interface{}{
		"status_id": id,
	})
	return nil
}
