package models

import (
	"time"

	"github.com/savdo-next/internal/constants"
)

// User covers every role: admin, seller, customer. Sellers carry the
// company_* columns and a translation row per locale.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	Role         string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Status       string    `gorm:"type:varchar(20);not null;index" json:"status"`
	CompanyName  string    `gorm:"type:varchar(255)" json:"company_name,omitempty"`
	CompanyAddr  string    `gorm:"column:company_address;type:varchar(255)" json:"company_address,omitempty"`
	CompanyPhone string    `gorm:"type:varchar(20)" json:"company_phone,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Translations []UserTranslation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// IsSeller reports whether the user has the seller role.
func (u *User) IsSeller() bool {
	return u.Role == constants.RoleSeller
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == constants.UserStatusActive
}

// TranslationFor returns the translation row for locale, or nil.
func (u *User) TranslationFor(locale string) *UserTranslation {
	for i := range u.Translations {
		if u.Translations[i].Locale == locale {
			return &u.Translations[i]
		}
	}
	return nil
}

// UserTranslation localizes seller profile text per locale.
type UserTranslation struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	UserID             uint   `gorm:"not null;index;uniqueIndex:idx_user_locale" json:"user_id"`
	Locale             string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_locale" json:"locale"`
	FirstName          string `gorm:"type:varchar(255)" json:"first_name"`
	LastName           string `gorm:"type:varchar(255)" json:"last_name"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
}

// TableName sets the table name.
func (UserTranslation) TableName() string {
	return "user_translations"
}
