package models

import "time"

// Product is owned by exactly one seller. New products start inactive and
// wait for admin approval.
type Product struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	SellerID   uint        `gorm:"not null;index" json:"seller_id"`
	CategoryID uint        `gorm:"not null;index" json:"category_id"`
	Slug       string      `gorm:"uniqueIndex;not null" json:"slug"`
	Price      Money       `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	OldPrice   *Money      `gorm:"type:decimal(10,2)" json:"old_price,omitempty"`
	Images     StringArray `gorm:"type:json" json:"images"`
	Active     bool        `gorm:"default:false;index" json:"active"`
	Featured   bool        `gorm:"default:false" json:"featured"`
	CreatedAt  time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Category     *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants     []ProductVariant     `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Translations []ProductTranslation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// TranslationFor returns the translation row for locale, or nil.
func (p *Product) TranslationFor(locale string) *ProductTranslation {
	for i := range p.Translations {
		if p.Translations[i].Locale == locale {
			return &p.Translations[i]
		}
	}
	return nil
}

// LocalizedName resolves the product name for locale, falling back to the
// slug when no translation exists.
func (p *Product) LocalizedName(locale string) string {
	if tr := p.TranslationFor(locale); tr != nil && tr.Name != "" {
		return tr.Name
	}
	return p.Slug
}

// ProductTranslation holds the per-locale name and description.
type ProductTranslation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ProductID   uint      `gorm:"not null;index;uniqueIndex:idx_product_locale" json:"product_id"`
	Locale      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_product_locale" json:"locale"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (ProductTranslation) TableName() string {
	return "product_translations"
}
