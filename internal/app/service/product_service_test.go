package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*gorm.DB, ProductService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	svc := NewProductService(
		repository.NewProductRepository(testDB),
		repository.NewSupplierRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewStatusRepository(testDB),
	)
	return testDB, svc
}

func seedProductRefs(t *testing.T, testDB *gorm.DB) (*model.Supplier, *model.Category, *model.Subcategory, *model.Status) {
	supplier := &model.Supplier{Name: "Barilla", Slug: "barilla", Code: "BAR-001"}
	require.NoError(t, testDB.Create(supplier).Error)

	category := &model.Category{Name: "Pasta", Slug: "pasta"}
	require.NoError(t, testDB.Create(category).Error)

	subcategory := &model.Subcategory{Name: "Spaghetti", Slug: "spaghetti", CategoryID: category.ID}
	require.NoError(t, testDB.Create(subcategory).Error)

	status := &model.Status{Name: "New Arrival", Slug: "new-arrival"}
	require.NoError(t, testDB.Create(status).Error)

	return supplier, category, subcategory, status
}

var skuPattern = regexp.MustCompile(`^[A-Z0-9]{1,3}-[A-Z0-9]{1,3}-\d{8}-\d{6}-\d{3}(-\d+)?$`)

func TestProductService_CreateProduct_GeneratesSKU(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	supplier, category, _, _ := seedProductRefs(t, testDB)

	product, err := svc.CreateProduct(ProductInput{
		Name:       "Spaghetti n.5",
		SupplierID: &supplier.ID,
		CategoryID: &category.ID,
		IsActive:   true,
	})
	require.NoError(t, err)

	assert.Regexp(t, skuPattern, product.SKU)
	assert.True(t, strings.HasPrefix(product.SKU, "BAR-PAS-"), "sku %q should carry supplier and category prefixes", product.SKU)
	assert.Equal(t, "spaghetti-n-5", product.Slug)
}

func TestProductService_CreateProduct_SKUPrefixFallback(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	product, err := svc.CreateProduct(ProductInput{Name: "Orphan Product"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.SKU, "GEN-GEN-"), "sku %q should fall back to GEN prefixes", product.SKU)
}

func TestProductService_CreateProduct_BackToBackUniqueSKUs(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	supplier, category, _, _ := seedProductRefs(t, testDB)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		product, err := svc.CreateProduct(ProductInput{
			Name:       "Bulk Product",
			Slug:       "bulk-product-" + string(rune('a'+i)),
			SupplierID: &supplier.ID,
			CategoryID: &category.ID,
		})
		require.NoError(t, err)
		assert.False(t, seen[product.SKU], "sku %q issued twice", product.SKU)
		seen[product.SKU] = true
	}
}

func TestProductService_CreateProduct_ManualValuesPreserved(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	product, err := svc.CreateProduct(ProductInput{
		Name: "Custom",
		Slug: "my-own-slug",
		SKU:  "MANUAL-SKU-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "my-own-slug", product.Slug)
	assert.Equal(t, "MANUAL-SKU-1", product.SKU)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateProduct(ProductInput{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)

	missing := uint(999)
	_, err = svc.CreateProduct(ProductInput{Name: "P", SupplierID: &missing})
	assert.ErrorIs(t, err, ErrSupplierNotFound)

	_, err = svc.CreateProduct(ProductInput{Name: "P", CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.CreateProduct(ProductInput{Name: "P", SubcategoryID: &missing})
	assert.ErrorIs(t, err, ErrSubcategoryNotFound)

	_, err = svc.CreateProduct(ProductInput{Name: "P", StatusID: &missing})
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestProductService_UpdateProduct_KeepsFilesWhenOmitted(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	imageURL := "/uploads/products/cover.jpg"
	created, err := svc.CreateProduct(ProductInput{
		Name:     "Original",
		ImageURL: &imageURL,
	})
	require.NoError(t, err)

	// nil file fields leave the stored URLs alone.
	updated, err := svc.UpdateProduct(created.ID, ProductInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, imageURL, updated.ImageURL)
	assert.Equal(t, created.SKU, updated.SKU)
	assert.Equal(t, created.Slug, updated.Slug)

	newURL := "/uploads/products/new.jpg"
	updated, err = svc.UpdateProduct(created.ID, ProductInput{Name: "Renamed", ImageURL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, newURL, updated.ImageURL)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.UpdateProduct(999, ProductInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := svc.CreateProduct(ProductInput{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))
	assert.ErrorIs(t, svc.DeleteProduct(created.ID), ErrProductNotFound)
}

func TestProductService_AttachImages_ParallelListDefaults(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := svc.CreateProduct(ProductInput{Name: "Gallery Product"})
	require.NoError(t, err)

	// Three files, one alt text, no explicit orders.
	images, err := svc.AttachImages(created.ID, GalleryImagesInput{
		URLs:         []string{"/a.jpg", "/b.jpg", "/c.jpg"},
		AltTexts:     []string{"first"},
		PrimaryIndex: 1,
	})
	require.NoError(t, err)
	require.Len(t, images, 3)

	assert.Equal(t, "first", images[0].AltText)
	assert.Equal(t, "", images[1].AltText)
	assert.Equal(t, "", images[2].AltText)

	for i, image := range images {
		assert.Equal(t, i, image.SortOrder)
	}

	var primaries []model.ProductImage
	require.NoError(t, testDB.Where("product_id = ? AND is_primary = ?", created.ID, true).Find(&primaries).Error)
	require.Len(t, primaries, 1)
	assert.Equal(t, "/b.jpg", primaries[0].ImageURL)
}

func TestProductService_AttachImages_ExplicitOrders(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := svc.CreateProduct(ProductInput{Name: "Ordered Gallery"})
	require.NoError(t, err)

	ten := 10
	images, err := svc.AttachImages(created.ID, GalleryImagesInput{
		URLs:         []string{"/a.jpg", "/b.jpg"},
		Orders:       []*int{&ten, nil},
		PrimaryIndex: -1,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, images[0].SortOrder)
	assert.Equal(t, 1, images[1].SortOrder)
}

func TestProductService_AttachImages_NewPrimaryDemotesOld(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := svc.CreateProduct(ProductInput{Name: "Two Batches"})
	require.NoError(t, err)

	_, err = svc.AttachImages(created.ID, GalleryImagesInput{
		URLs:         []string{"/old.jpg"},
		PrimaryIndex: 0,
	})
	require.NoError(t, err)

	_, err = svc.AttachImages(created.ID, GalleryImagesInput{
		URLs:         []string{"/new.jpg"},
		PrimaryIndex: 0,
	})
	require.NoError(t, err)

	var primaries []model.ProductImage
	require.NoError(t, testDB.Where("product_id = ? AND is_primary = ?", created.ID, true).Find(&primaries).Error)
	require.Len(t, primaries, 1)
	assert.Equal(t, "/new.jpg", primaries[0].ImageURL)
}

func TestProductService_AttachImages_ProductNotFound(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.AttachImages(999, GalleryImagesInput{URLs: []string{"/a.jpg"}, PrimaryIndex: -1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_AttachVideos(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := svc.CreateProduct(ProductInput{Name: "Video Product"})
	require.NoError(t, err)

	videos, err := svc.AttachVideos(created.ID, GalleryVideosInput{
		URLs:   []string{"/a.mp4", "/b.mp4"},
		Titles: []string{"Intro"},
	})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "Intro", videos[0].Title)
	assert.Equal(t, "", videos[1].Title)
	assert.Equal(t, 0, videos[0].SortOrder)
	assert.Equal(t, 1, videos[1].SortOrder)
}

func TestProductService_DeleteImageAndVideo_NotFound(t *testing.T) {
	testDB, svc := setupProductServiceTest(t)
	defer db.CleanupTestDB(testDB)

	assert.ErrorIs(t, svc.DeleteImage(999), ErrImageNotFound)
	assert.ErrorIs(t, svc.DeleteVideo(999), ErrVideoNotFound)
}
