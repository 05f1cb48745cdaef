package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses and localized messages.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotActive   = errors.New("account is not active")
	ErrSlugExists         = errors.New("slug already exists")
	ErrSKUExists          = errors.New("sku already exists")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrMissingImages      = errors.New("at least one image is required")
	ErrInvalidReason      = errors.New("invalid stock reason")
	ErrInvalidAttribute   = errors.New("invalid attribute reference")
	ErrMissingTranslation = errors.New("missing required translation")
	ErrMissingField       = errors.New("required field is empty")
	ErrAlreadyReplied     = errors.New("review already replied")
	ErrAlreadyReported    = errors.New("review already reported")
)
