package repository

import (
	"errors"
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository is the data access interface for seller catalog
// entries.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	GetByIDForSeller(id, sellerID uint) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	SlugExists(slug string, excludeID *uint) (bool, error)
	UpsertTranslation(productID uint, locale, name, description string) error
	ReplaceAttributes(productID uint, pairs []models.ProductAttribute) error
	CountBySeller(sellerID uint) (int64, error)
	CountActiveBySeller(sellerID uint) (int64, error)
	SellerStatistics(sellerID uint) (SellerProductStats, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List filters and paginates products. Search matches the slug and any
// localized name or description.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{}).
		Preload("Category.Translations").
		Preload("Translations").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})

	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	switch filter.Status {
	case "active":
		query = query.Where("active = ?", true)
	case "inactive":
		query = query.Where("active = ?", false)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"slug LIKE ? OR EXISTS (SELECT 1 FROM product_translations pt WHERE pt.product_id = products.id AND (pt.name LIKE ? OR pt.description LIKE ?))",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price ASC, id ASC")
	case "price_desc":
		query = query.Order("price DESC, id ASC")
	case "oldest":
		query = query.Order("created_at ASC, id ASC")
	case "best_selling":
		query = query.Order("(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.product_id = products.id) DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC, id DESC")
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID loads a product with its category, variants and translations.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.
		Preload("Category.Translations").
		Preload("Translations").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByIDForSeller loads a product only when the seller owns it.
func (r *GormProductRepository) GetByIDForSeller(id, sellerID uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.
		Preload("Category.Translations").
		Preload("Translations").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("seller_id = ?", sellerID).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug loads a product by its slug.
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.
		Preload("Category.Translations").
		Preload("Translations").
		Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("active = ?", true).
			Preload("Variants", func(db *gorm.DB) *gorm.DB {
				return db.Where("active = ?", true).Order("id ASC")
			})
	} else {
		query = query.Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product with any nested translations and variants.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists product column changes without touching associations.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Category", "Variants", "Translations").Save(product).Error
}

// Delete removes a product with its variants, translations, attribute
// links and reviews.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		variantIDs := tx.Model(&models.ProductVariant{}).
			Select("id").
			Where("product_id = ?", id)
		movementIDs := tx.Model(&models.StockMovement{}).
			Select("id").
			Where("variant_id IN (?)", variantIDs)
		if err := tx.Where("stock_movement_id IN (?)", movementIDs).
			Delete(&models.StockMovementTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("variant_id IN (?)", variantIDs).
			Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductAttribute{}).Error; err != nil {
			return err
		}
		reviewIDs := tx.Model(&models.ProductReview{}).
			Select("id").
			Where("product_id = ?", id)
		if err := tx.Where("product_review_id IN (?)", reviewIDs).
			Delete(&models.ProductReviewTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// SlugExists reports whether another product already holds the slug.
func (r *GormProductRepository) SlugExists(slug string, excludeID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertTranslation overwrites the (product, locale) translation or
// inserts it.
func (r *GormProductRepository) UpsertTranslation(productID uint, locale, name, description string) error {
	var existing models.ProductTranslation
	err := r.db.Where("product_id = ? AND locale = ?", productID, locale).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.ProductTranslation{
			ProductID:   productID,
			Locale:      locale,
			Name:        name,
			Description: description,
		}).Error
	}
	if err != nil {
		return err
	}
	existing.Name = name
	existing.Description = description
	return r.db.Save(&existing).Error
}

// ReplaceAttributes swaps the product's attribute/value links for the
// given set.
func (r *GormProductRepository) ReplaceAttributes(productID uint, pairs []models.ProductAttribute) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).
			Delete(&models.ProductAttribute{}).Error; err != nil {
			return err
		}
		if len(pairs) == 0 {
			return nil
		}
		for i := range pairs {
			pairs[i].ProductID = productID
		}
		return tx.Create(&pairs).Error
	})
}

// CountBySeller counts a seller's products.
func (r *GormProductRepository) CountBySeller(sellerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

// CountActiveBySeller counts a seller's published products.
func (r *GormProductRepository) CountActiveBySeller(sellerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("seller_id = ? AND active = ?", sellerID, true).
		Count(&count).Error
	return count, err
}

// SellerStatistics aggregates catalog size, sold quantity and revenue
// over the seller's order items, counting only non-cancelled items.
func (r *GormProductRepository) SellerStatistics(sellerID uint) (SellerProductStats, error) {
	stats := SellerProductStats{}

	if err := r.db.Model(&models.Product{}).
		Where("seller_id = ?", sellerID).
		Count(&stats.TotalProducts).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("seller_id = ? AND active = ?", sellerID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return stats, err
	}

	row := struct {
		TotalQuantity int64
		TotalRevenue  decimal.Decimal
	}{}
	err := r.db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity), 0) AS total_quantity, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.seller_id = ? AND order_items.status != ?", sellerID, constants.OrderStatusCancelled).
		Scan(&row).Error
	if err != nil {
		return stats, err
	}
	stats.TotalSales = row.TotalQuantity
	stats.TotalRevenue = row.TotalRevenue
	return stats, nil
}
