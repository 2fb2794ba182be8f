package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/coimpres/coimpres-backend/pkg/util"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Seeds the catalog from an XLSX export. Expected columns, first row
// being the header:
//
//	Supplier | Supplier Code | Category | Subcategory | Status | Name |
//	SKU | Price | Weight | Origin Country | Short Description |
//	Description | Active | On Sale | Featured
//
// Suppliers, categories, subcategories and statuses are created on
// demand; blank SKUs are generated.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	importer := newImporter(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total product rows: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported, skipped := 0, 0
	for i, row := range rows {
		if err := importer.importRow(row); err != nil {
			fmt.Printf("  row %d skipped: %v\n", i+2, err)
			skipped++
			continue
		}
		imported++
		if imported%100 == 0 {
			fmt.Printf("Imported %d products...\n", imported)
		}
	}

	fmt.Println("\nSummary:")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Skipped:  %d\n", skipped)
}

func readRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)
	fmt.Printf("Headers: %v\n", rows[0])

	return rows[1:], nil
}

type importer struct {
	supplierRepo   repository.SupplierRepository
	categoryRepo   repository.CategoryRepository
	statusRepo     repository.StatusRepository
	productService service.ProductService

	suppliers     map[string]uint
	categories    map[string]uint
	subcategories map[string]uint
	statuses      map[string]uint
}

func newImporter(database *gorm.DB) *importer {
	supplierRepo := repository.NewSupplierRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	statusRepo := repository.NewStatusRepository(database)
	productRepo := repository.NewProductRepository(database)

	return &importer{
		supplierRepo:   supplierRepo,
		categoryRepo:   categoryRepo,
		statusRepo:     statusRepo,
		productService: service.NewProductService(productRepo, supplierRepo, categoryRepo, statusRepo),
		suppliers:      make(map[string]uint),
		categories:     make(map[string]uint),
		subcategories:  make(map[string]uint),
		statuses:       make(map[string]uint),
	}
}

func cell(row []string, index int) string {
	if index < len(row) {
		return strings.TrimSpace(row[index])
	}
	return ""
}

func parseBoolCell(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "y", "1", "x":
		return true
	}
	return false
}

func (imp *importer) importRow(row []string) error {
	name := cell(row, 5)
	if name == "" {
		return fmt.Errorf("missing product name")
	}

	supplierID, err := imp.supplierID(cell(row, 0), cell(row, 1))
	if err != nil {
		return err
	}
	categoryID, err := imp.categoryID(cell(row, 2))
	if err != nil {
		return err
	}
	subcategoryID, err := imp.subcategoryID(cell(row, 3), categoryID)
	if err != nil {
		return err
	}
	statusID, err := imp.statusID(cell(row, 4))
	if err != nil {
		return err
	}

	price, _ := strconv.ParseFloat(cell(row, 7), 64)
	weight, _ := strconv.ParseFloat(cell(row, 8), 64)

	input := service.ProductInput{
		Name:             name,
		SKU:              cell(row, 6),
		Price:            price,
		Weight:           weight,
		OriginCountry:    cell(row, 9),
		ShortDescription: cell(row, 10),
		Description:      cell(row, 11),
		IsActive:         parseBoolCell(cell(row, 12)),
		IsOnSale:         parseBoolCell(cell(row, 13)),
		IsFeatured:       parseBoolCell(cell(row, 14)),
		SupplierID:       supplierID,
		CategoryID:       categoryID,
		SubcategoryID:    subcategoryID,
		StatusID:         statusID,
	}

	_, err = imp.productService.CreateProduct(input)
	return err
}

func (imp *importer) supplierID(name, code string) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := imp.suppliers[name]; ok {
		return &id, nil
	}

	slug := util.Slugify(name)
	if existing, err := imp.supplierRepo.FindBySlug(slug); err == nil {
		imp.suppliers[name] = existing.ID
		return &existing.ID, nil
	}

	if code == "" {
		code = strings.ToUpper(slug)
	}
	supplier := &model.Supplier{Name: name, Slug: slug, Code: code}
	if err := imp.supplierRepo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier %q: %w", name, err)
	}
	imp.suppliers[name] = supplier.ID
	return &supplier.ID, nil
}

func (imp *importer) categoryID(name string) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := imp.categories[name]; ok {
		return &id, nil
	}

	slug := util.Slugify(name)
	if existing, err := imp.categoryRepo.FindBySlug(slug); err == nil {
		imp.categories[name] = existing.ID
		return &existing.ID, nil
	}

	category := &model.Category{Name: name, Slug: slug}
	if err := imp.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	imp.categories[name] = category.ID
	return &category.ID, nil
}

func (imp *importer) subcategoryID(name string, categoryID *uint) (*uint, error) {
	if name == "" || categoryID == nil {
		return nil, nil
	}
	key := fmt.Sprintf("%d|%s", *categoryID, name)
	if id, ok := imp.subcategories[key]; ok {
		return &id, nil
	}

	slug := util.Slugify(name)
	existing, err := imp.categoryRepo.FindSubcategories(*categoryID)
	if err == nil {
		for _, sub := range existing {
			if sub.Slug == slug {
				imp.subcategories[key] = sub.ID
				id := sub.ID
				return &id, nil
			}
		}
	}

	subcategory := &model.Subcategory{Name: name, Slug: slug, CategoryID: *categoryID}
	if err := imp.categoryRepo.CreateSubcategory(subcategory); err != nil {
		return nil, fmt.Errorf("failed to create subcategory %q: %w", name, err)
	}
	imp.subcategories[key] = subcategory.ID
	return &subcategory.ID, nil
}

func (imp *importer) statusID(name string) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := imp.statuses[name]; ok {
		return &id, nil
	}

	slug := util.Slugify(name)
	if existing, err := imp.statusRepo.FindBySlug(slug); err == nil {
		imp.statuses[name] = existing.ID
		return &existing.ID, nil
	}

	status := &model.Status{Name: name, Slug: slug}
	if err := imp.statusRepo.Create(status); err != nil {
		return nil, fmt.Errorf("failed to create status %q: %w", name, err)
	}
	imp.statuses[name] = status.ID
	return &status.ID, nil
}
