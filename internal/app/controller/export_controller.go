package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController streams the catalog as a downloadable workbook.
type ExportController struct {
	exportService service.ExportService
}

func NewExportController(exportService service.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportProducts downloads the product list as XLSX, honoring the same
// filters as the admin table.
// GET /admin/export/products?q=&category=&supplier=&active=
func (ctrl *ExportController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ProductFilter{
		CategorySlug: c.Query("category"),
		SupplierSlug: c.Query("supplier"),
		Search:       c.Query("q"),
		ActiveOnly:   c.Query("active") == "true",
	}

	body, err := ctrl.exportService.ExportProducts(filter)
	if err != nil {
		log.Error("Failed to export products", err, nil)
		apperrors.InternalError(c, "Failed to export products")
		return
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, body)
}
