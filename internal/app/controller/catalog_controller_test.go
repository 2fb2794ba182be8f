package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	supplierRepo := repository.NewSupplierRepository(testDB)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, supplierRepo)
	sitemapService := service.NewSitemapService(productRepo, categoryRepo, "https://www.coimpres.com")

	ctrl := NewCatalogController(catalogService, sitemapService)

	router := gin.New()
	router.GET("/sitemap.xml", ctrl.Sitemap)
	v1 := router.Group("/api/v1")
	v1.GET("/home", ctrl.Home)
	v1.GET("/products", ctrl.ListProducts)
	v1.GET("/products/:slug", ctrl.GetProductBySlug)
	v1.GET("/categories", ctrl.ListCategories)
	v1.GET("/categories/:slug/subcategories", ctrl.ListSubcategories)
	v1.GET("/suppliers", ctrl.ListSuppliers)

	return router, testDB
}

func getJSON(t *testing.T, router *gin.Engine, path string) (int, map[string]interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Header().Get("Content-Type") != "application/xml; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestCatalogController_Home(t *testing.T) {
	router, testDB := setupCatalogControllerTest(t)

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Spaghetti", Slug: "spaghetti", SKU: "SKU-1", IsActive: true,
	}).Error)

	code, body := getJSON(t, router, "/api/v1/home?lang=en")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "en", body["language"])

	strings, ok := body["strings"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, strings)
}

func TestCatalogController_Home_UnknownLanguageFallsBack(t *testing.T) {
	router, _ := setupCatalogControllerTest(t)

	code, body := getJSON(t, router, "/api/v1/home?lang=de")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["strings"])
}

func TestCatalogController_ListProducts_Filters(t *testing.T) {
	router, testDB := setupCatalogControllerTest(t)

	category := &model.Category{Name: "Pasta", Slug: "pasta"}
	require.NoError(t, testDB.Create(category).Error)

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Spaghetti", Slug: "spaghetti", SKU: "SKU-1",
		CategoryID: &category.ID, IsActive: true,
	}).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Espresso", Slug: "espresso", SKU: "SKU-2", IsActive: true,
	}).Error)

	code, body := getJSON(t, router, "/api/v1/products?category=pasta")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	code, body = getJSON(t, router, "/api/v1/products?q=espresso")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])
}

func TestCatalogController_GetProductBySlug_NotFound(t *testing.T) {
	router, _ := setupCatalogControllerTest(t)

	code, _ := getJSON(t, router, "/api/v1/products/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCatalogController_Sitemap(t *testing.T) {
	router, testDB := setupCatalogControllerTest(t)

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Spaghetti", Slug: "spaghetti", SKU: "SKU-1", IsActive: true,
	}).Error)

	req := httptest.NewRequest("GET", "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "/products/spaghetti")
}
