package seller

import (
	"net/http"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the localized category list for product forms.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	views := make([]gin.H, 0, len(categories))
	for i := range categories {
		views = append(views, categoryView(&categories[i], locale))
	}

	response.Success(c, "", gin.H{"categories": views})
}

func categoryView(cat *models.Category, locale string) gin.H {
	return gin.H{
		"id":   cat.ID,
		"name": cat.LocalizedName(locale),
		"slug": cat.Slug,
	}
}
