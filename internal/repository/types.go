package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductListFilter narrows a seller's product listing.
type ProductListFilter struct {
	Page       int
	PageSize   int
	SellerID   uint
	CategoryID uint
	Status     string // "active" / "inactive" / "" for all
	Search     string
	Sort       string // price_asc / price_desc / sales / latest
}

// MovementListFilter narrows a product's stock-movement history.
type MovementListFilter struct {
	Page      int
	PageSize  int
	VariantID uint
	Reason    string
	FromDate  *time.Time
	ToDate    *time.Time
	Sort      string // oldest / latest
}

// OrderListFilter narrows a seller's order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Sort     string // latest / oldest / total_high / total_low
}

// ReviewListFilter narrows a seller's review listing.
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	Rating    int
	FromDate  *time.Time
	ToDate    *time.Time
	Sort      string // rating_high / rating_low / oldest / latest
}

// DateRange bounds statistics queries; zero pointers mean unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// TopProduct is one row of the top-selling products ranking.
type TopProduct struct {
	ProductID     uint            `json:"product_id"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}

// SellerOrderStats aggregates a seller's order items.
type SellerOrderStats struct {
	TotalOrders  int64            `json:"total_orders"`
	TotalSales   decimal.Decimal  `json:"total_sales"`
	TotalItems   int64            `json:"total_items"`
	StatusCounts map[string]int64 `json:"status_counts"`
	TopProducts  []TopProduct     `json:"top_products"`
}

// SellerProductStats aggregates a seller's catalog and sales.
type SellerProductStats struct {
	TotalProducts  int64           `json:"total_products"`
	ActiveProducts int64           `json:"active_products"`
	TotalSales     int64           `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// SellerStockStats aggregates a seller's stock position.
type SellerStockStats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalVariants   int64 `json:"total_variants"`
	TotalStock      int64 `json:"total_stock"`
	LowStockCount   int64 `json:"low_stock_count"`
	OutOfStockCount int64 `json:"out_of_stock_count"`
}

// RatingCount is one bucket of a review rating distribution.
type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// TopReviewedProduct ranks products by review volume.
type TopReviewedProduct struct {
	ProductID     uint    `json:"product_id"`
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// SellerReviewStats aggregates a seller's reviews.
type SellerReviewStats struct {
	TotalReviews  int64         `json:"total_reviews"`
	AverageRating float64       `json:"average_rating"`
	Distribution  []RatingCount `json:"rating_distribution"`
}
