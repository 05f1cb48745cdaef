package repository

import (
	"errors"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRepository exposes orders through the seller fan-out view: a seller
// only ever sees orders containing their products, and only their own
// item rows inside each order.
type OrderRepository interface {
	ListForSeller(sellerID uint, filter OrderListFilter) ([]models.Order, int64, error)
	GetForSeller(orderID, sellerID uint) (*models.Order, error)
	HasSellerItems(orderID, sellerID uint) (bool, error)
	UpdateSellerItemStatuses(orderID, sellerID uint, status string) (int64, error)
	DistinctItemStatuses(orderID uint) ([]string, error)
	UpdateStatus(orderID uint, status string) error
	SellerStatistics(sellerID uint, dates DateRange) (SellerOrderStats, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// sellerItemsPreload limits the Items association to the seller's rows.
func sellerItemsPreload(sellerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("order_items.product_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).
					Model(&models.Product{}).
					Select("id").
					Where("seller_id = ?", sellerID)).
			Order("order_items.id ASC")
	}
}

// ListForSeller pages through orders containing at least one of the
// seller's products. Item rows belonging to other sellers are filtered
// out of the preload.
func (r *GormOrderRepository) ListForSeller(sellerID uint, filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order

	sellerExists := "EXISTS (SELECT 1 FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE oi.order_id = orders.id AND p.seller_id = ?)"

	query := r.db.Model(&models.Order{}).
		Preload("User").
		Preload("Items", sellerItemsPreload(sellerID)).
		Preload("Items.Product.Translations").
		Preload("Items.Variant").
		Where(sellerExists, sellerID)

	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("orders.created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("orders.created_at <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("orders.created_at ASC, orders.id ASC")
	case "total_high":
		query = query.Order("orders.total_amount DESC, orders.id DESC")
	case "total_low":
		query = query.Order("orders.total_amount ASC, orders.id ASC")
	default:
		query = query.Order("orders.created_at DESC, orders.id DESC")
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetForSeller loads one order if the seller participates in it, items
// narrowed to the seller's rows.
func (r *GormOrderRepository) GetForSeller(orderID, sellerID uint) (*models.Order, error) {
	ok, err := r.HasSellerItems(orderID, sellerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var order models.Order
	if err := r.db.
		Preload("User").
		Preload("Items", sellerItemsPreload(sellerID)).
		Preload("Items.Product.Translations").
		Preload("Items.Variant").
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// HasSellerItems reports whether the order carries any of the seller's
// products.
func (r *GormOrderRepository) HasSellerItems(orderID, sellerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND products.seller_id = ?", orderID, sellerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateSellerItemStatuses moves every item the seller owns inside the
// order to status, returning the number of rows touched.
func (r *GormOrderRepository) UpdateSellerItemStatuses(orderID, sellerID uint, status string) (int64, error) {
	result := r.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND product_id IN (?)",
			orderID,
			r.db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Product{}).
				Select("id").
				Where("seller_id = ?", sellerID)).
		Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DistinctItemStatuses returns the set of statuses across all of the
// order's items, every seller included.
func (r *GormOrderRepository) DistinctItemStatuses(orderID uint) ([]string, error) {
	var statuses []string
	err := r.db.Model(&models.OrderItem{}).
		Distinct("status").
		Where("order_id = ?", orderID).
		Pluck("status", &statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// UpdateStatus overwrites the order-level status.
func (r *GormOrderRepository) UpdateStatus(orderID uint, status string) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SellerStatistics aggregates the seller's order items within the date
// range: totals, per-status counts and the five best-selling products.
func (r *GormOrderRepository) SellerStatistics(sellerID uint, dates DateRange) (SellerOrderStats, error) {
	stats := SellerOrderStats{StatusCounts: map[string]int64{}}

	base := func() *gorm.DB {
		q := r.db.Model(&models.OrderItem{}).
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("products.seller_id = ?", sellerID)
		if dates.From != nil {
			q = q.Where("order_items.created_at >= ?", *dates.From)
		}
		if dates.To != nil {
			q = q.Where("order_items.created_at <= ?", *dates.To)
		}
		return q
	}

	if err := base().
		Distinct("order_items.order_id").
		Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}

	totals := struct {
		TotalItems int64
		TotalSales decimal.Decimal
	}{}
	if err := base().
		Where("order_items.status != ?", constants.OrderStatusCancelled).
		Select("COALESCE(SUM(order_items.quantity), 0) AS total_items, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_sales").
		Scan(&totals).Error; err != nil {
		return stats, err
	}
	stats.TotalItems = totals.TotalItems
	stats.TotalSales = totals.TotalSales

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := base().
		Select("order_items.status AS status, COUNT(*) AS count").
		Group("order_items.status").
		Scan(&statusRows).Error; err != nil {
		return stats, err
	}
	for _, row := range statusRows {
		stats.StatusCounts[row.Status] = row.Count
	}

	if err := base().
		Where("order_items.status != ?", constants.OrderStatusCancelled).
		Select("order_items.product_id AS product_id, COALESCE(SUM(order_items.quantity), 0) AS total_quantity, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_sales").
		Group("order_items.product_id").
		Order("total_quantity DESC").
		Limit(5).
		Scan(&stats.TopProducts).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
