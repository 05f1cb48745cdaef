package seller

import (
	"net/http"
	"strings"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest moves the seller's items to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders pages orders containing the seller's products.
func (h *Handler) ListOrders(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	var err error
	if filter.FromDate, err = parseDateQuery(c, "from_date"); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}
	if filter.ToDate, err = parseDateQuery(c, "to_date"); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	orders, total, err := h.OrderService.List(sellerID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, "", orders, response.NewPagination(page, pageSize, total))
}

// GetOrder loads one order narrowed to the seller's items.
func (h *Handler) GetOrder(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.Get(parseUintParam(c, "id"), sellerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, "", gin.H{"order": order})
}

// UpdateOrderStatus updates the seller's item statuses and recomputes the
// order-level status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	orderID := parseUintParam(c, "id")
	order, err := h.OrderService.UpdateStatus(orderID, sellerID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("order_status_updated",
		"order_id", orderID,
		"seller_id", sellerID,
		"status", req.Status,
	)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.order_status_updated"), gin.H{"order": order})
}

// OrderStatistics aggregates the seller's order items.
func (h *Handler) OrderStatistics(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var dates repository.DateRange
	var err error
	if dates.From, err = parseDateQuery(c, "from_date"); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}
	if dates.To, err = parseDateQuery(c, "to_date"); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	stats, err := h.OrderService.Statistics(sellerID, dates)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.Success(c, "", gin.H{"stats": stats})
}
