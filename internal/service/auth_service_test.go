package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func newTestAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewAuthService(cfg, repository.NewUserRepository(db))
}

func sellerSignup(email string) RegisterSellerInput {
	return RegisterSellerInput{
		Email:          email,
		Password:       "Sardor2024",
		Phone:          "+998901234567",
		CompanyName:    "Registon Trade",
		CompanyAddress: "Samarkand, Registon street 1",
		Translations: []UserTranslationInput{
			{Locale: "uz", FirstName: "Sardor", LastName: "Karimov"},
			{Locale: "ru", FirstName: "Сардор", LastName: "Каримов"},
			{Locale: "en", FirstName: "Sardor", LastName: "Karimov"},
		},
	}
}

func TestRegisterSellerStartsPending(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.RegisterSeller(sellerSignup("pending.seller@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleSeller {
		t.Fatalf("role want seller got %s", user.Role)
	}
	if user.Status != constants.UserStatusPending {
		t.Fatalf("new sellers must start pending, got %s", user.Status)
	}
	if user.PasswordHash == "Sardor2024" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if len(user.Translations) != 3 {
		t.Fatalf("translations want 3 got %d", len(user.Translations))
	}
}

func TestRegisterSellerNormalizesAndRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	first, err := svc.RegisterSeller(sellerSignup("  Dup.Seller@Example.com "))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first.Email != "dup.seller@example.com" {
		t.Fatalf("email must be lowercased and trimmed, got %q", first.Email)
	}

	if _, err := svc.RegisterSeller(sellerSignup("dup.seller@example.com")); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email want ErrEmailTaken got %v", err)
	}
}

func TestRegisterSellerEnforcesPasswordPolicy(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	weak := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"}
	for i, password := range weak {
		input := sellerSignup(fmt.Sprintf("weak%d@example.com", i))
		input.Password = password
		if _, err := svc.RegisterSeller(input); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q want ErrWeakPassword got %v", password, err)
		}
	}
}

func TestSellerLoginLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	email := "lifecycle.seller@example.com"
	user, err := svc.RegisterSeller(sellerSignup(email))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password outranks account state so probes cannot tell a
	// pending account from a bad credential.
	if _, _, _, err := svc.SellerLogin(email, "WrongPass99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.SellerLogin(email, "Sardor2024"); !errors.Is(err, ErrAccountNotActive) {
		t.Fatalf("pending account want ErrAccountNotActive got %v", err)
	}

	if err := db.Model(user).Update("status", constants.UserStatusActive).Error; err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	logged, token, expiresAt, err := svc.SellerLogin(email, "Sardor2024")
	if err != nil {
		t.Fatalf("active login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned wrong user")
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("login must issue a token with expiry")
	}

	if _, _, _, err := svc.AdminLogin(email, "Sardor2024"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("seller account on admin login want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.SellerLogin("nobody@example.com", "Sardor2024"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.RegisterSeller(sellerSignup("jwt.seller@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleSeller {
		t.Fatalf("claims want user %d seller got user %d role %s", user.ID, claims.UserID, claims.Role)
	}

	if _, err := svc.ParseJWT(token + "tampered"); err == nil {
		t.Fatalf("tampered token must not parse")
	}
}
