package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func newTestReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db))
}

func seedReview(t *testing.T, db *gorm.DB, productID, customerID uint, rating int) *models.ProductReview {
	t.Helper()
	review := &models.ProductReview{
		ProductID: productID,
		UserID:    customerID,
		Rating:    rating,
		Comment:   "arrived quickly, works as described",
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	return review
}

func TestReplyToReviewOnce(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 501, "Review Reply Probe", 5)
	review := seedReview(t, db, product.ID, 601, 4)

	svc := newTestReviewService(db)
	replied, err := svc.Reply(review.ID, 501, "  thanks for the feedback!  ")
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if replied.SellerReply != "thanks for the feedback!" {
		t.Fatalf("reply must be trimmed, got %q", replied.SellerReply)
	}
	if replied.RepliedAt == nil {
		t.Fatalf("reply must stamp replied_at")
	}

	if _, err := svc.Reply(review.ID, 501, "second attempt"); !errors.Is(err, ErrAlreadyReplied) {
		t.Fatalf("second reply want ErrAlreadyReplied got %v", err)
	}
	if _, err := svc.Reply(review.ID, 501, "   "); !errors.Is(err, ErrMissingField) {
		t.Fatalf("blank reply want ErrMissingField got %v", err)
	}
}

func TestReportReviewOnce(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 502, "Review Report Probe", 5)
	review := seedReview(t, db, product.ID, 602, 1)

	svc := newTestReviewService(db)
	reported, err := svc.Report(review.ID, 502, "abusive language")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !reported.IsReported || reported.ReportReason != "abusive language" || reported.ReportedAt == nil {
		t.Fatalf("report must flag the review with reason and timestamp")
	}

	if _, err := svc.Report(review.ID, 502, "again"); !errors.Is(err, ErrAlreadyReported) {
		t.Fatalf("second report want ErrAlreadyReported got %v", err)
	}
}

func TestReviewAccessMasksForeignSellers(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 503, "Review Masking Probe", 5)
	review := seedReview(t, db, product.ID, 603, 5)

	svc := newTestReviewService(db)
	if _, err := svc.Get(review.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign seller want ErrNotFound got %v", err)
	}
	if _, err := svc.Reply(review.ID, 999, "not my product"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign reply want ErrNotFound got %v", err)
	}
	if _, err := svc.Report(review.ID, 999, "not my product"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign report want ErrNotFound got %v", err)
	}

	loaded, err := svc.Get(review.ID, 503)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if loaded.ID != review.ID {
		t.Fatalf("owner must see the review")
	}
}
