package service

import (
	"testing"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTaxonomyTest(t *testing.T) (*gorm.DB, TaxonomyService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	svc := NewTaxonomyService(repository.NewCategoryRepository(testDB))
	return testDB, svc
}

func TestTaxonomyService_CreateCategory_DerivesSlug(t *testing.T) {
	testDB, svc := setupTaxonomyTest(t)
	defer db.CleanupTestDB(testDB)

	category, err := svc.CreateCategory(CategoryInput{Name: "Aceites y Vinagres"})
	require.NoError(t, err)
	assert.Equal(t, "aceites-y-vinagres", category.Slug)

	custom, err := svc.CreateCategory(CategoryInput{Name: "Pasta", Slug: "pasta-seca"})
	require.NoError(t, err)
	assert.Equal(t, "pasta-seca", custom.Slug)
}

func TestTaxonomyService_CreateSubcategory_RequiresCategory(t *testing.T) {
	testDB, svc := setupTaxonomyTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateSubcategory(SubcategoryInput{Name: "Spaghetti"})
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.CreateSubcategory(SubcategoryInput{Name: "Spaghetti", CategoryID: 999})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestTaxonomyService_DeleteCategory_CascadesSubcategories(t *testing.T) {
	testDB, svc := setupTaxonomyTest(t)
	defer db.CleanupTestDB(testDB)

	category, err := svc.CreateCategory(CategoryInput{Name: "Pasta"})
	require.NoError(t, err)
	_, err = svc.CreateSubcategory(SubcategoryInput{Name: "Spaghetti", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(category.ID))

	var count int64
	require.NoError(t, testDB.Model(&model.Subcategory{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteCategory(category.ID), ErrCategoryNotFound)
}
