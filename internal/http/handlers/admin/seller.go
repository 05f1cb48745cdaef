package admin

import (
	"net/http"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"

	"github.com/gin-gonic/gin"
)

// ListSellers pages seller accounts, optionally filtered by status.
func (h *Handler) ListSellers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	sellers, total, err := h.UserAdminService.ListSellers(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	views := make([]gin.H, 0, len(sellers))
	for i := range sellers {
		views = append(views, sellerView(&sellers[i], locale))
	}

	response.SuccessWithPage(c, "", gin.H{"sellers": views},
		response.NewPagination(page, pageSize, total))
}

// GetSeller returns one seller account.
func (h *Handler) GetSeller(c *gin.Context) {
	seller, err := h.UserAdminService.GetSeller(parseUintParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, "", gin.H{"seller": sellerView(seller, locale)})
}

// ApproveSeller activates a pending seller account.
func (h *Handler) ApproveSeller(c *gin.Context) {
	seller, err := h.UserAdminService.ApproveSeller(parseUintParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("seller_approved", "seller_id", seller.ID, "email", seller.Email)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.seller_approved"), gin.H{
		"seller": sellerView(seller, locale),
	})
}

// RejectSeller denies a seller account; the seller can no longer log in.
func (h *Handler) RejectSeller(c *gin.Context) {
	seller, err := h.UserAdminService.RejectSeller(parseUintParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("seller_rejected", "seller_id", seller.ID, "email", seller.Email)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.seller_rejected"), gin.H{
		"seller": sellerView(seller, locale),
	})
}

func sellerView(user *models.User, locale string) gin.H {
	view := gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"phone":           user.Phone,
		"status":          user.Status,
		"company_name":    user.CompanyName,
		"company_address": user.CompanyAddr,
		"company_phone":   user.CompanyPhone,
		"created_at":      user.CreatedAt,
	}
	if tr := user.TranslationFor(locale); tr != nil {
		view["first_name"] = tr.FirstName
		view["last_name"] = tr.LastName
		view["company_description"] = tr.CompanyDescription
	}
	return view
}
