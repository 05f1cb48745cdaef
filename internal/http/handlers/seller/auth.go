package seller

import (
	"net/http"
	"time"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// TranslationBlock is one locale's personal fields in signup.
type TranslationBlock struct {
	Locale             string `json:"locale" binding:"required"`
	FirstName          string `json:"first_name" binding:"required"`
	LastName           string `json:"last_name"`
	CompanyDescription string `json:"company_description"`
}

// RegisterRequest is the seller signup payload.
type RegisterRequest struct {
	Email          string             `json:"email" binding:"required,email"`
	Password       string             `json:"password" binding:"required"`
	Phone          string             `json:"phone"`
	CompanyName    string             `json:"company_name" binding:"required"`
	CompanyAddress string             `json:"company_address"`
	CompanyPhone   string             `json:"company_phone"`
	Translations   []TranslationBlock `json:"translations" binding:"required,min=1,dive"`
}

// Register creates a pending seller account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	input := service.RegisterSellerInput{
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		CompanyPhone:   req.CompanyPhone,
	}
	for _, tr := range req.Translations {
		input.Translations = append(input.Translations, service.UserTranslationInput{
			Locale:             tr.Locale,
			FirstName:          tr.FirstName,
			LastName:           tr.LastName,
			CompanyDescription: tr.CompanyDescription,
		})
	}

	user, err := h.AuthService.RegisterSeller(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("seller_registered", "user_id", user.ID, "email", user.Email)

	locale := i18n.ResolveLocale(c)
	response.Created(c, i18n.T(locale, "msg.seller_registered"), gin.H{
		"user": sellerProfile(user, locale),
	})
}

// LoginRequest is the credential payload for both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a seller and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.SellerLogin(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.logged_in"), gin.H{
		"user":       sellerProfile(user, locale),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// Me returns the authenticated seller's profile.
func (h *Handler) Me(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	user, err := h.UserRepo.GetByID(sellerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "error.not_found", nil)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, "", gin.H{"user": sellerProfile(user, locale)})
}

// sellerProfile shapes a user for API responses, resolving the name block
// for the request locale.
func sellerProfile(user *models.User, locale string) gin.H {
	profile := gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"status":        user.Status,
		"company_name":  user.CompanyName,
		"company_phone": user.CompanyPhone,
		"created_at":    user.CreatedAt,
	}
	if tr := user.TranslationFor(locale); tr != nil {
		profile["first_name"] = tr.FirstName
		profile["last_name"] = tr.LastName
		profile["company_description"] = tr.CompanyDescription
	}
	return profile
}
