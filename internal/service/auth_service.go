package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/savdo-next/internal/cache"
	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService signs sellers up, checks credentials and issues tokens.
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewAuthService creates an auth service.
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// HashPassword hashes with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a bcrypt hash against a candidate.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword checks the configured password policy.
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims carries the authenticated principal.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a token for the user.
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT validates and decodes a token.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// UserTranslationInput is one locale's name block.
type UserTranslationInput struct {
	Locale             string
	FirstName          string
	LastName           string
	CompanyDescription string
}

// RegisterSellerInput collects seller signup fields.
type RegisterSellerInput struct {
	Email          string
	Password       string
	Phone          string
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	Translations   []UserTranslationInput
}

// RegisterSeller creates a pending seller account. The account cannot log
// in until an admin approves it.
func (s *AuthService) RegisterSeller(input RegisterSellerInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrInvalidCredentials
	}

	if err := s.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         constants.RoleSeller,
		Status:       constants.UserStatusPending,
		CompanyName:  strings.TrimSpace(input.CompanyName),
		CompanyAddr:  strings.TrimSpace(input.CompanyAddress),
		CompanyPhone: strings.TrimSpace(input.CompanyPhone),
	}
	for _, tr := range input.Translations {
		user.Translations = append(user.Translations, models.UserTranslation{
			Locale:             tr.Locale,
			FirstName:          strings.TrimSpace(tr.FirstName),
			LastName:           strings.TrimSpace(tr.LastName),
			CompanyDescription: strings.TrimSpace(tr.CompanyDescription),
		})
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SellerLogin authenticates a seller. Pending and rejected accounts are
// refused after the password check so the error does not leak account
// state to guessers.
func (s *AuthService) SellerLogin(email, password string) (*models.User, string, time.Time, error) {
	return s.login(email, password, constants.RoleSeller)
}

// AdminLogin authenticates an admin.
func (s *AuthService) AdminLogin(email, password string) (*models.User, string, time.Time, error) {
	return s.login(email, password, constants.RoleAdmin)
}

func (s *AuthService) login(email, password, role string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmailAndRole(strings.ToLower(strings.TrimSpace(email)), role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, "", time.Time{}, ErrAccountNotActive
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))

	return user, token, expiresAt, nil
}
