package controller

import (
	"errors"
	"net/http"

	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StatusController is the admin CRUD surface for product statuses
// ("new arrival", "best seller", and whatever else marketing invents).
type StatusController struct {
	statusService service.StatusService
}

func NewStatusController(statusService service.StatusService) *StatusController {
	return &StatusController{statusService: statusService}
}

type StatusRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Slug        string `form:"slug" json:"slug"`
	Description string `form:"description" json:"description"`
}

// ListStatuses returns all statuses.
// GET /admin/statuses
func (ctrl *StatusController) ListStatuses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	statuses, err := ctrl.statusService.ListStatuses()
	if err != nil {
		log.Error("Failed to list statuses", err, nil)
		apperrors.InternalError(c, "Failed to fetch statuses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": statuses,
		"count":    len(statuses),
	})
}

// CreateStatus creates a status.
// POST /admin/statuses
func (ctrl *StatusController) CreateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req StatusRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
		return
	}

	status, err := ctrl.statusService.CreateStatus(service.StatusInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondStorageError(c, log, err, "status")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": status})
}

// UpdateStatus updates a status.
// PUT /admin/statuses/:id
func (ctrl *StatusController) UpdateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name is required")
		return
	}

	status, err := ctrl.statusService.UpdateStatus(id, service.StatusInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrStatusNotFound) {
			apperrors.NotFound(c, apperrors.CatalogStatusNotFound, "Status not found")
			return
		}
		respondStorageError(c, log, err, "status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// DeleteStatus removes a status; tagged products lose the tag only.
// DELETE /admin/statuses/:id
func (ctrl *StatusController) DeleteStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.statusService.DeleteStatus(id); err != nil {
		if errors.Is(err, service.ErrStatusNotFound) {
			apperrors.NotFound(c, apperrors.CatalogStatusNotFound, "Status not found")
			return
		}
		respondStorageError(c, log, err, "status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status deleted"})
}
