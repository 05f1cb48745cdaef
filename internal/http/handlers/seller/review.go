package seller

import (
	"net/http"
	"strconv"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ReplyRequest is the seller's public answer to a review.
type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// ReportRequest flags a review for moderation.
type ReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListReviews pages reviews left on the seller's products.
func (h *Handler) ListReviews(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)
	rating, _ := strconv.Atoi(c.Query("rating"))

	fromDate, err := parseDateQuery(c, "from_date")
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}
	toDate, err := parseDateQuery(c, "to_date")
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	filter := repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: uint(productID),
		Rating:    rating,
		FromDate:  fromDate,
		ToDate:    toDate,
		Sort:      c.Query("sort"),
	}

	reviews, total, err := h.ReviewService.List(sellerID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, "", gin.H{"reviews": reviews},
		response.NewPagination(page, pageSize, total))
}

// GetReview returns one review on the seller's product.
func (h *Handler) GetReview(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	review, err := h.ReviewService.Get(parseUintParam(c, "id"), sellerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, "", gin.H{"review": review})
}

// ReplyReview records the seller's answer; a review can be answered once.
func (h *Handler) ReplyReview(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	review, err := h.ReviewService.Reply(parseUintParam(c, "id"), sellerID, req.Reply)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("review_replied",
		"review_id", review.ID,
		"seller_id", sellerID,
	)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.review_replied"), gin.H{"review": review})
}

// ReportReview flags a review for moderation.
func (h *Handler) ReportReview(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	review, err := h.ReviewService.Report(parseUintParam(c, "id"), sellerID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("review_reported",
		"review_id", review.ID,
		"seller_id", sellerID,
	)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.review_reported"), gin.H{"review": review})
}

// ReviewStatistics aggregates ratings across the seller's products.
func (h *Handler) ReviewStatistics(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	stats, top, err := h.ReviewService.Statistics(sellerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.Success(c, "", gin.H{
		"statistics":   stats,
		"top_reviewed": top,
	})
}
