package models

import "time"

// Category groups products; the display name lives in translations.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Position  int       `gorm:"default:0;index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Translations []CategoryTranslation `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// TranslationFor returns the translation row for locale, or nil.
func (c *Category) TranslationFor(locale string) *CategoryTranslation {
	for i := range c.Translations {
		if c.Translations[i].Locale == locale {
			return &c.Translations[i]
		}
	}
	return nil
}

// LocalizedName resolves the display name for locale, falling back to the
// raw stored name.
func (c *Category) LocalizedName(locale string) string {
	if tr := c.TranslationFor(locale); tr != nil && tr.Name != "" {
		return tr.Name
	}
	return c.Name
}

// CategoryTranslation localizes a category name per locale.
type CategoryTranslation struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CategoryID uint   `gorm:"not null;index;uniqueIndex:idx_category_locale" json:"category_id"`
	Locale     string `gorm:"type:varchar(10);not null;uniqueIndex:idx_category_locale" json:"locale"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName sets the table name.
func (CategoryTranslation) TableName() string {
	return "category_translations"
}
