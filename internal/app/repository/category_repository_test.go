package repository

import (
	"testing"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoryTest(t *testing.T) (*gorm.DB, CategoryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCategoryRepository(testDB)
	return testDB, repo
}

func TestCategoryRepository_CreateAndFind(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	category := &model.Category{Name: "Pasta", Slug: "pasta"}
	require.NoError(t, repo.Create(category))
	assert.NotZero(t, category.ID)

	found, err := repo.FindBySlug("pasta")
	require.NoError(t, err)
	assert.Equal(t, "Pasta", found.Name)

	_, err = repo.FindBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_Delete_CascadesSubcategories(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	category := &model.Category{Name: "Pasta", Slug: "pasta"}
	require.NoError(t, repo.Create(category))

	subcategory := &model.Subcategory{Name: "Spaghetti", Slug: "spaghetti", CategoryID: category.ID}
	require.NoError(t, repo.CreateSubcategory(subcategory))

	// A product referencing both category and subcategory.
	product := &model.Product{
		Name: "Spaghetti n.5", Slug: "spaghetti-n-5", SKU: "SKU-1",
		CategoryID: &category.ID, SubcategoryID: &subcategory.ID,
		IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, repo.Delete(category.ID))

	// Subcategory is gone, product survives with cleared references.
	var subCount int64
	testDB.Model(&model.Subcategory{}).Count(&subCount)
	assert.Zero(t, subCount)

	var kept model.Product
	require.NoError(t, testDB.First(&kept, product.ID).Error)
	assert.Nil(t, kept.CategoryID)
	assert.Nil(t, kept.SubcategoryID)
}

func TestCategoryRepository_DeleteSubcategory_NullifiesProducts(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	category := &model.Category{Name: "Pasta", Slug: "pasta"}
	require.NoError(t, repo.Create(category))
	subcategory := &model.Subcategory{Name: "Spaghetti", Slug: "spaghetti", CategoryID: category.ID}
	require.NoError(t, repo.CreateSubcategory(subcategory))

	product := &model.Product{
		Name: "P", Slug: "p", SKU: "S",
		CategoryID: &category.ID, SubcategoryID: &subcategory.ID,
		IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, repo.DeleteSubcategory(subcategory.ID))

	var kept model.Product
	require.NoError(t, testDB.First(&kept, product.ID).Error)
	assert.Nil(t, kept.SubcategoryID)
	// Category reference is untouched.
	require.NotNil(t, kept.CategoryID)
	assert.Equal(t, category.ID, *kept.CategoryID)
}

func TestCategoryRepository_Delete_Missing(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	assert.ErrorIs(t, repo.Delete(9999), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteSubcategory(9999), gorm.ErrRecordNotFound)
}

func TestCategoryRepository_FindSubcategoriesByCategorySlug(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	pasta := &model.Category{Name: "Pasta", Slug: "pasta"}
	coffee := &model.Category{Name: "Coffee", Slug: "coffee"}
	require.NoError(t, repo.Create(pasta))
	require.NoError(t, repo.Create(coffee))

	require.NoError(t, repo.CreateSubcategory(&model.Subcategory{Name: "Spaghetti", Slug: "spaghetti", CategoryID: pasta.ID}))
	require.NoError(t, repo.CreateSubcategory(&model.Subcategory{Name: "Penne", Slug: "penne", CategoryID: pasta.ID}))
	require.NoError(t, repo.CreateSubcategory(&model.Subcategory{Name: "Espresso", Slug: "espresso", CategoryID: coffee.ID}))

	subs, err := repo.FindSubcategoriesByCategorySlug("pasta")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Penne", subs[0].Name)
	assert.Equal(t, "Spaghetti", subs[1].Name)
}
