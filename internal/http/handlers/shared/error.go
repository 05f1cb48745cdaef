package shared

import (
	"errors"
	"net/http"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes a localized error response and logs the cause when
// one is attached.
func RespondError(c *gin.Context, status int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(status, msg, err)
	if err != nil && status >= http.StatusInternalServerError {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message, err)
}

// RespondServiceError maps service sentinel errors onto HTTP statuses and
// localized messages. Unknown errors become a 500.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		RespondError(c, http.StatusNotFound, "error.not_found", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "error.invalid_credentials", nil)
	case errors.Is(err, service.ErrAccountNotActive):
		RespondError(c, http.StatusForbidden, "error.account_not_active", nil)
	case errors.Is(err, service.ErrEmailTaken):
		RespondError(c, http.StatusConflict, "error.email_taken", nil)
	case errors.Is(err, service.ErrSlugExists),
		errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrAlreadyReplied),
		errors.Is(err, service.ErrAlreadyReported):
		RespondError(c, http.StatusConflict, "error.conflict", err)
	case errors.Is(err, service.ErrWeakPassword):
		respondPasswordPolicyError(c, err)
	case errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidReason),
		errors.Is(err, service.ErrInvalidAttribute),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStock),
		errors.Is(err, service.ErrMissingTranslation),
		errors.Is(err, service.ErrMissingImages),
		errors.Is(err, service.ErrMissingField):
		RespondError(c, http.StatusUnprocessableEntity, "error.validation", err)
	default:
		RespondError(c, http.StatusInternalServerError, "error.internal", err)
	}
}

// RespondErrorWithMsg writes a pre-localized error message.
func RespondErrorWithMsg(c *gin.Context, status int, msg string, err error) {
	appErr := response.WrapError(status, msg, err)
	if err != nil && status >= http.StatusInternalServerError {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message, err)
}

func respondPasswordPolicyError(c *gin.Context, err error) {
	if keyed, ok := err.(interface {
		Key() string
		Args() []interface{}
	}); ok {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, keyed.Key(), keyed.Args()...)
		RespondErrorWithMsg(c, http.StatusUnprocessableEntity, msg, nil)
		return
	}
	RespondError(c, http.StatusUnprocessableEntity, "error.validation", err)
}
