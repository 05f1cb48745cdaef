package seller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateStockRequest carries an absolute stock target with audit fields.
type UpdateStockRequest struct {
	Stock  *int   `json:"stock" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	Note   string `json:"note"`
}

// UpdateStock overwrites a variant's stock and appends a ledger row.
func (h *Handler) UpdateStock(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	productID := parseUintParam(c, "id")
	variantID := parseUintParam(c, "variantId")

	result, err := h.StockService.UpdateStock(productID, variantID, sellerID, *req.Stock, req.Reason, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("stock_updated",
		"product_id", productID,
		"variant_id", variantID,
		"seller_id", sellerID,
		"previous", result.Movement.PreviousStock,
		"new", result.Movement.NewStock,
		"reason", result.Movement.Reason,
	)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.stock_updated"), gin.H{
		"variant":      result.Variant,
		"stock_change": result.StockChange,
		"movement":     stockMovementView(result.Movement, locale),
	})
}

// GetStock returns the product's variants with their stock and the
// summed total.
func (h *Handler) GetStock(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	stock, err := h.StockService.Stock(parseUintParam(c, "id"), sellerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.stock_retrieved"), gin.H{
		"total_stock": stock.TotalStock,
		"variants":    stock.Variants,
	})
}

// ListMovements pages a product's ledger.
func (h *Handler) ListMovements(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	variantID, _ := strconv.ParseUint(c.Query("variant_id"), 10, 64)

	filter := repository.MovementListFilter{
		Page:      page,
		PageSize:  pageSize,
		VariantID: uint(variantID),
		Reason:    strings.TrimSpace(c.Query("reason")),
		Sort:      strings.TrimSpace(c.Query("sort")),
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

	movements, total, err := h.StockService.Movements(parseUintParam(c, "id"), sellerID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	views := make([]gin.H, 0, len(movements))
	for i := range movements {
		views = append(views, stockMovementView(&movements[i], locale))
	}

	response.SuccessWithPage(c, "", views, response.NewPagination(page, pageSize, total))
}

// LowStock lists variants at or below the configured threshold.
func (h *Handler) LowStock(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	variants, err := h.StockService.LowStock(sellerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.Success(c, "", gin.H{"variants": variants})
}

// StockStatistics returns the aggregate stock counters with recent
// movements.
func (h *Handler) StockStatistics(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	overview, err := h.StockService.Statistics(sellerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	recent := make([]gin.H, 0, len(overview.RecentMovements))
	for i := range overview.RecentMovements {
		recent = append(recent, stockMovementView(&overview.RecentMovements[i], locale))
	}

	response.Success(c, "", gin.H{
		"stats":            overview.Stats,
		"recent_movements": recent,
	})
}

// stockMovementView localizes a ledger row for responses.
func stockMovementView(m *models.StockMovement, locale string) gin.H {
	return gin.H{
		"id":             m.ID,
		"product_id":     m.ProductID,
		"variant_id":     m.VariantID,
		"previous_stock": m.PreviousStock,
		"new_stock":      m.NewStock,
		"change":         m.Change,
		"reason":         m.Reason,
		"reason_text":    m.ReasonText(locale),
		"note":           m.LocalizedNote(locale),
		"created_by":     m.CreatedBy,
		"created_at":     m.CreatedAt,
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query value.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
