package admin

import (
	"net/http"
	"time"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an administrator and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.AdminLogin(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.logged_in"), gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}
