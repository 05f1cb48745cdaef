package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// VariantRepository is the data access interface for product variants.
type VariantRepository interface {
	ListByProduct(productID uint) ([]models.ProductVariant, error)
	GetByID(id uint) (*models.ProductVariant, error)
	GetForProduct(variantID, productID uint) (*models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	CreateBatch(variants []models.ProductVariant) error
	Update(variant *models.ProductVariant) error
	DeleteByProduct(productID uint) error
	SetStock(variantID uint, stock int) error
	SKUExists(sku string) (bool, error)
	ListLowStock(sellerID uint, threshold int) ([]models.ProductVariant, error)
	SellerStockStats(sellerID uint, lowThreshold int) (SellerStockStats, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) VariantRepository
}

// GormVariantRepository is the GORM implementation.
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates a variant repository.
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormVariantRepository) WithTx(tx *gorm.DB) VariantRepository {
	if tx == nil {
		return r
	}
	return &GormVariantRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormVariantRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByProduct returns a product's variants in insertion order.
func (r *GormVariantRepository) ListByProduct(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.Where("product_id = ?", productID).
		Order("id ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// GetByID loads one variant.
func (r *GormVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// GetForProduct loads one variant, requiring product membership.
func (r *GormVariantRepository) GetForProduct(variantID, productID uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Where("product_id = ?", productID).
		First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// Create inserts one variant.
func (r *GormVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

// CreateBatch inserts a set of variants at once.
func (r *GormVariantRepository) CreateBatch(variants []models.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}
	return r.db.Create(&variants).Error
}

// Update persists variant column changes.
func (r *GormVariantRepository) Update(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

// DeleteByProduct removes every variant of a product.
func (r *GormVariantRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error
}

// SetStock overwrites the variant's stock level.
func (r *GormVariantRepository) SetStock(variantID uint, stock int) error {
	result := r.db.Model(&models.ProductVariant{}).
		Where("id = ?", variantID).
		Update("stock", stock)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SKUExists reports whether the SKU is already taken.
func (r *GormVariantRepository) SKUExists(sku string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ProductVariant{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListLowStock returns the seller's variants at or below the threshold,
// lowest stock first, products preloaded for display.
func (r *GormVariantRepository) ListLowStock(sellerID uint, threshold int) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.
		Preload("Product.Translations").
		Joins("JOIN products ON products.id = product_variants.product_id").
		Where("products.seller_id = ? AND product_variants.stock <= ?", sellerID, threshold).
		Order("product_variants.stock ASC, product_variants.id ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// SellerStockStats aggregates the seller's stock position.
func (r *GormVariantRepository) SellerStockStats(sellerID uint, lowThreshold int) (SellerStockStats, error) {
	stats := SellerStockStats{}

	if err := r.db.Model(&models.Product{}).
		Where("seller_id = ?", sellerID).
		Count(&stats.TotalProducts).Error; err != nil {
		return stats, err
	}

	base := func() *gorm.DB {
		return r.db.Model(&models.ProductVariant{}).
			Joins("JOIN products ON products.id = product_variants.product_id").
			Where("products.seller_id = ?", sellerID)
	}

	if err := base().Count(&stats.TotalVariants).Error; err != nil {
		return stats, err
	}

	row := struct{ TotalStock int64 }{}
	if err := base().
		Select("COALESCE(SUM(product_variants.stock), 0) AS total_stock").
		Scan(&row).Error; err != nil {
		return stats, err
	}
	stats.TotalStock = row.TotalStock

	if err := base().
		Where("product_variants.stock > 0 AND product_variants.stock <= ?", lowThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return stats, err
	}
	if err := base().
		Where("product_variants.stock <= 0").
		Count(&stats.OutOfStockCount).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
