package repository

import (
	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// StockMovementRepository appends to and reads the stock ledger. Rows are
// never updated or removed outside product deletion.
type StockMovementRepository interface {
	Create(movement *models.StockMovement) error
	CreateTranslations(translations []models.StockMovementTranslation) error
	ListByProduct(productID uint, filter MovementListFilter) ([]models.StockMovement, int64, error)
	RecentBySeller(sellerID uint, limit int) ([]models.StockMovement, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) StockMovementRepository
}

// GormStockMovementRepository is the GORM implementation.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a stock movement repository.
func NewStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormStockMovementRepository) WithTx(tx *gorm.DB) StockMovementRepository {
	if tx == nil {
		return r
	}
	return &GormStockMovementRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormStockMovementRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create appends one ledger row.
func (r *GormStockMovementRepository) Create(movement *models.StockMovement) error {
	return r.db.Create(movement).Error
}

// CreateTranslations inserts the per-locale note rows for a movement.
func (r *GormStockMovementRepository) CreateTranslations(translations []models.StockMovementTranslation) error {
	if len(translations) == 0 {
		return nil
	}
	return r.db.Create(&translations).Error
}

// ListByProduct pages through a product's ledger, newest first unless the
// filter asks for oldest.
func (r *GormStockMovementRepository) ListByProduct(productID uint, filter MovementListFilter) ([]models.StockMovement, int64, error) {
	var movements []models.StockMovement

	query := r.db.Model(&models.StockMovement{}).
		Preload("Variant").
		Preload("Translations").
		Where("product_id = ?", productID)

	if filter.VariantID != 0 {
		query = query.Where("variant_id = ?", filter.VariantID)
	}
	if filter.Reason != "" {
		query = query.Where("reason = ?", filter.Reason)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Sort == "oldest" {
		query = query.Order("created_at ASC, id ASC")
	} else {
		query = query.Order("created_at DESC, id DESC")
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// RecentBySeller returns the seller's newest ledger rows across all
// products.
func (r *GormStockMovementRepository) RecentBySeller(sellerID uint, limit int) ([]models.StockMovement, error) {
	if limit <= 0 {
		limit = 5
	}
	var movements []models.StockMovement
	if err := r.db.
		Preload("Product.Translations").
		Preload("Variant").
		Preload("Translations").
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Where("products.seller_id = ?", sellerID).
		Order("stock_movements.created_at DESC, stock_movements.id DESC").
		Limit(limit).
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
