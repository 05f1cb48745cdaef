package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository scopes customer reviews to the seller who owns the
// reviewed product.
type ReviewRepository interface {
	ListForSeller(sellerID uint, filter ReviewListFilter) ([]models.ProductReview, int64, error)
	GetForSeller(reviewID, sellerID uint) (*models.ProductReview, error)
	Update(review *models.ProductReview) error
	SellerStatistics(sellerID uint) (SellerReviewStats, error)
	TopReviewedBySeller(sellerID uint, limit int) ([]TopReviewedProduct, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormReviewRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormReviewRepository) sellerScope(sellerID uint) *gorm.DB {
	return r.db.Model(&models.ProductReview{}).
		Joins("JOIN products ON products.id = product_reviews.product_id").
		Where("products.seller_id = ?", sellerID)
}

// ListForSeller pages through reviews left on the seller's products.
func (r *GormReviewRepository) ListForSeller(sellerID uint, filter ReviewListFilter) ([]models.ProductReview, int64, error) {
	var reviews []models.ProductReview

	query := r.sellerScope(sellerID).
		Preload("Product.Translations").
		Preload("User").
		Preload("Translations")

	if filter.ProductID != 0 {
		query = query.Where("product_reviews.product_id = ?", filter.ProductID)
	}
	if filter.Rating != 0 {
		query = query.Where("product_reviews.rating = ?", filter.Rating)
	}
	if filter.FromDate != nil {
		query = query.Where("product_reviews.created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("product_reviews.created_at <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "rating_high":
		query = query.Order("product_reviews.rating DESC, product_reviews.id DESC")
	case "rating_low":
		query = query.Order("product_reviews.rating ASC, product_reviews.id ASC")
	case "oldest":
		query = query.Order("product_reviews.created_at ASC, product_reviews.id ASC")
	default:
		query = query.Order("product_reviews.created_at DESC, product_reviews.id DESC")
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetForSeller loads one review if the seller owns the reviewed product.
func (r *GormReviewRepository) GetForSeller(reviewID, sellerID uint) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := r.sellerScope(sellerID).
		Preload("Product.Translations").
		Preload("User").
		Preload("Translations").
		Where("product_reviews.id = ?", reviewID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Update persists review column changes.
func (r *GormReviewRepository) Update(review *models.ProductReview) error {
	return r.db.Omit("Product", "User", "Translations").Save(review).Error
}

// SellerStatistics aggregates the seller's reviews.
func (r *GormReviewRepository) SellerStatistics(sellerID uint) (SellerReviewStats, error) {
	stats := SellerReviewStats{}

	if err := r.sellerScope(sellerID).Count(&stats.TotalReviews).Error; err != nil {
		return stats, err
	}

	row := struct{ AverageRating float64 }{}
	if err := r.sellerScope(sellerID).
		Select("COALESCE(AVG(product_reviews.rating), 0) AS average_rating").
		Scan(&row).Error; err != nil {
		return stats, err
	}
	stats.AverageRating = row.AverageRating

	if err := r.sellerScope(sellerID).
		Select("product_reviews.rating AS rating, COUNT(*) AS count").
		Group("product_reviews.rating").
		Order("rating DESC").
		Scan(&stats.Distribution).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

// TopReviewedBySeller ranks the seller's products by review volume.
func (r *GormReviewRepository) TopReviewedBySeller(sellerID uint, limit int) ([]TopReviewedProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []TopReviewedProduct
	if err := r.sellerScope(sellerID).
		Select("product_reviews.product_id AS product_id, COUNT(*) AS review_count, COALESCE(AVG(product_reviews.rating), 0) AS average_rating").
		Group("product_reviews.product_id").
		Order("review_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
