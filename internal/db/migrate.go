package db

import (
	"os"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/coimpres/coimpres-backend/pkg/util"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Supplier{},
		&model.Category{},
		&model.Subcategory{},
		&model.Status{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductVideo{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// EnsureAdminUser creates the initial superuser from ADMIN_EMAIL /
// ADMIN_PASSWORD when no staff account exists yet. Without it a fresh
// deployment has no way into the admin panel.
func EnsureAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := DB.Model(&model.User{}).
		Where("is_staff = ? OR is_superuser = ?", true, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := DB.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Initial admin user created", map[string]interface{}{
		"email": email,
	})
	return nil
}
