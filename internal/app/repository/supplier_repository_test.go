package repository

import (
	"testing"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSupplierRepository_Delete_NullifiesProducts(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewSupplierRepository(testDB)

	supplier := &model.Supplier{Name: "Barilla", Slug: "barilla", Code: "BAR-001"}
	require.NoError(t, repo.Create(supplier))

	product := &model.Product{
		Name: "P", Slug: "p", SKU: "S",
		SupplierID: &supplier.ID, IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, repo.Delete(supplier.ID))

	var kept model.Product
	require.NoError(t, testDB.First(&kept, product.ID).Error)
	assert.Nil(t, kept.SupplierID)
}

func TestSupplierRepository_Delete_Missing(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewSupplierRepository(testDB)
	assert.ErrorIs(t, repo.Delete(9999), gorm.ErrRecordNotFound)
}

func TestStatusRepository_Delete_NullifiesProducts(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewStatusRepository(testDB)

	status := &model.Status{Name: "New Arrival", Slug: "new-arrival"}
	require.NoError(t, repo.Create(status))

	product := &model.Product{
		Name: "P", Slug: "p", SKU: "S",
		StatusID: &status.ID, IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, repo.Delete(status.ID))

	var kept model.Product
	require.NoError(t, testDB.First(&kept, product.ID).Error)
	assert.Nil(t, kept.StatusID)
}
