package service

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Products"

var exportHeaders = []string{
	"SKU", "Name", "Slug", "Supplier", "Category", "Subcategory", "Status",
	"Price", "Weight", "Origin Country", "Active", "On Sale", "Featured",
	"Short Description",
}

// ExportService renders the product catalog as an XLSX workbook for
// offline use by the sales team.
type ExportService interface {
	ExportProducts(filter repository.ProductFilter) ([]byte, error)
}

type exportService struct {
	productRepo repository.ProductRepository
}

func NewExportService(productRepo repository.ProductRepository) ExportService {
	return &exportService{productRepo: productRepo}
}

func (s *exportService) ExportProducts(filter repository.ProductFilter) ([]byte, error) {
	products, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, product := range products {
		values := productRow(product)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Product export generated", map[string]interface{}{
		"count": len(products),
	})
	return buf.Bytes(), nil
}

func productRow(product model.Product) []interface{} {
	supplierName, categoryName, subcategoryName, statusName := "", "", "", ""
	if product.Supplier != nil {
		supplierName = product.Supplier.Name
	}
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	if product.Subcategory != nil {
		subcategoryName = product.Subcategory.Name
	}
	if product.Status != nil {
		statusName = product.Status.Name
	}

	return []interface{}{
		product.SKU,
		product.Name,
		product.Slug,
		supplierName,
		categoryName,
		subcategoryName,
		statusName,
		product.Price,
		product.Weight,
		product.OriginCountry,
		strconv.FormatBool(product.IsActive),
		strconv.FormatBool(product.IsOnSale),
		strconv.FormatBool(product.IsFeatured),
		product.ShortDescription,
	}
}
