package service

import (
	"strings"
	"time"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
)

// ReviewService lets sellers reply to and report reviews on their
// products. Reply and report are independent actions.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a review service.
func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// List pages through reviews on the seller's products.
func (s *ReviewService) List(sellerID uint, filter repository.ReviewListFilter) ([]models.ProductReview, int64, error) {
	return s.reviewRepo.ListForSeller(sellerID, filter)
}

// Get loads one review if the seller owns the reviewed product.
func (s *ReviewService) Get(reviewID, sellerID uint) (*models.ProductReview, error) {
	review, err := s.reviewRepo.GetForSeller(reviewID, sellerID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

// Reply stores the seller's one reply to a review.
func (s *ReviewService) Reply(reviewID, sellerID uint, reply string) (*models.ProductReview, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, ErrMissingField
	}

	review, err := s.Get(reviewID, sellerID)
	if err != nil {
		return nil, err
	}
	if review.SellerReply != "" {
		return nil, ErrAlreadyReplied
	}

	now := time.Now()
	review.SellerReply = reply
	review.RepliedAt = &now
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Report flags a review for moderation with a reason.
func (s *ReviewService) Report(reviewID, sellerID uint, reason string) (*models.ProductReview, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingField
	}

	review, err := s.Get(reviewID, sellerID)
	if err != nil {
		return nil, err
	}
	if review.IsReported {
		return nil, ErrAlreadyReported
	}

	now := time.Now()
	review.IsReported = true
	review.ReportReason = reason
	review.ReportedAt = &now
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Statistics aggregates the seller's reviews with the most-reviewed
// products.
func (s *ReviewService) Statistics(sellerID uint) (repository.SellerReviewStats, []repository.TopReviewedProduct, error) {
	stats, err := s.reviewRepo.SellerStatistics(sellerID)
	if err != nil {
		return stats, nil, err
	}
	top, err := s.reviewRepo.TopReviewedBySeller(sellerID, 5)
	if err != nil {
		return stats, nil, err
	}
	return stats, top, nil
}
