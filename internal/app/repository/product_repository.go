package repository

import (
	"strings"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter narrows product listings. Empty fields are skipped; set
// fields compose with AND.
type ProductFilter struct {
	CategorySlug    string
	SubcategorySlug string
	SupplierSlug    string
	StatusSlug      string
	FeaturedOnly    bool
	OnSaleOnly      bool
	Search          string
	ActiveOnly      bool
	Limit           int
	Offset          int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	CountWithFilter(filter ProductFilter) (int64, error)
	FindByID(id uint) (*model.Product, error)
	FindActiveBySlug(slug string) (*model.Product, error)
	FindRelated(categoryID uint, excludeID uint, limit int) ([]model.Product, error)
	FindActiveExcluding(excludeIDs []uint, limit int) ([]model.Product, error)
	SKUExists(sku string) (bool, error)
	Update(product *model.Product) error
	Delete(id uint) error

	AddImage(image *model.ProductImage) error
	FindImageByID(id uint) (*model.ProductImage, error)
	MarkImagePrimary(productID, imageID uint) error
	DeleteImage(id uint) error
	AddVideo(video *model.ProductVideo) error
	DeleteVideo(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name": product.Name,
		"sku":  product.SKU,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
			"sku":  product.SKU,
		})
		return err
	}
	return nil
}

// baseQuery eagerly loads the related entities so list rendering never
// issues per-row lookups.
func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Supplier").
		Preload("Category").
		Preload("Subcategory").
		Preload("Status")
}

func (r *productRepository) applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("products.is_active = ?", true)
	}

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.SubcategorySlug != "" {
		query = query.
			Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Where("subcategories.slug = ?", filter.SubcategorySlug)
	}

	if filter.SupplierSlug != "" {
		query = query.
			Joins("JOIN suppliers ON suppliers.id = products.supplier_id").
			Where("suppliers.slug = ?", filter.SupplierSlug)
	}

	if filter.StatusSlug != "" {
		query = query.
			Joins("JOIN statuses ON statuses.id = products.status_id").
			Where("statuses.slug = ?", filter.StatusSlug)
	}

	if filter.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}

	if filter.OnSaleOnly {
		query = query.Where("products.is_on_sale = ?", true)
	}

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(products.short_description) LIKE ? OR LOWER(products.sku) LIKE ?",
			like, like, like, like,
		)
	}

	return query
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"category":    filter.CategorySlug,
		"subcategory": filter.SubcategorySlug,
		"supplier":    filter.SupplierSlug,
		"status":      filter.StatusSlug,
		"featured":    filter.FeaturedOnly,
		"on_sale":     filter.OnSaleOnly,
		"search":      filter.Search,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})

	query := r.applyFilter(r.baseQuery(), filter).
		Order("products.is_featured DESC").
		Order("products.is_on_sale DESC").
		Order("products.created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) CountWithFilter(filter ProductFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.Model(&model.Product{}), filter)
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Failed to count products with filter", err)
		return 0, err
	}
	return count, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.baseQuery().
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC, product_images.id ASC")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_videos.sort_order ASC, product_videos.id ASC")
		}).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindActiveBySlug resolves one public product page. Inactive products are
// invisible here, indistinguishable from missing ones.
func (r *productRepository) FindActiveBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.baseQuery().
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC, product_images.id ASC")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_videos.sort_order ASC, product_videos.id ASC")
		}).
		Where("products.slug = ? AND products.is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindRelated(categoryID uint, excludeID uint, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.baseQuery().
		Where("products.category_id = ? AND products.is_active = ? AND products.id <> ?", categoryID, true, excludeID).
		Order("products.created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to find related products", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return products, nil
}

// FindActiveExcluding returns active products not in excludeIDs, newest
// first. Used by the homepage fill pass.
func (r *productRepository) FindActiveExcluding(excludeIDs []uint, limit int) ([]model.Product, error) {
	query := r.baseQuery().Where("products.is_active = ?", true)
	if len(excludeIDs) > 0 {
		query = query.Where("products.id NOT IN ?", excludeIDs)
	}

	var products []model.Product
	err := query.Order("products.created_at DESC").Limit(limit).Find(&products).Error
	if err != nil {
		logger.Error("Failed to find fill products", err)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SKUExists(sku string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

// Delete removes a product together with its gallery rows.
func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductVideo{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepository) AddImage(image *model.ProductImage) error {
	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to add product image", err, map[string]interface{}{
			"product_id": image.ProductID,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindImageByID(id uint) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// MarkImagePrimary flags one gallery image as primary and unsets the flag
// on every sibling of the same product.
func (r *productRepository) MarkImagePrimary(productID, imageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProductImage{}).
			Where("product_id = ? AND id <> ?", productID, imageID).
			Update("is_primary", false).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ProductImage{}).
			Where("id = ? AND product_id = ?", imageID, productID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepository) DeleteImage(id uint) error {
	result := r.db.Delete(&model.ProductImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) AddVideo(video *model.ProductVideo) error {
	if err := r.db.Create(video).Error; err != nil {
		logger.Error("Failed to add product video", err, map[string]interface{}{
			"product_id": video.ProductID,
		})
		return err
	}
	return nil
}

func (r *productRepository) DeleteVideo(id uint) error {
	result := r.db.Delete(&model.ProductVideo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
