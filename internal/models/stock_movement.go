package models

import "time"

// StockMovement is one immutable row of the append-only stock ledger.
// Change always equals NewStock - PreviousStock; replaying a variant's
// movements in creation order reproduces its current stock.
type StockMovement struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	VariantID     uint      `gorm:"not null;index" json:"variant_id"`
	PreviousStock int       `gorm:"not null" json:"previous_stock"`
	NewStock      int       `gorm:"not null" json:"new_stock"`
	Change        int       `gorm:"not null" json:"change"`
	Reason        string    `gorm:"type:varchar(20);not null;index" json:"reason"`
	CreatedBy     uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	Product      *Product                   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant      *ProductVariant            `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Creator      *User                      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Translations []StockMovementTranslation `gorm:"foreignKey:MovementID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (StockMovement) TableName() string {
	return "stock_movements"
}

// TranslationFor returns the note row for locale, or nil.
func (m *StockMovement) TranslationFor(locale string) *StockMovementTranslation {
	for i := range m.Translations {
		if m.Translations[i].Locale == locale {
			return &m.Translations[i]
		}
	}
	return nil
}

// LocalizedNote resolves the note for locale; notes are stored once per
// configured locale, so a miss means no note was supplied.
func (m *StockMovement) LocalizedNote(locale string) string {
	if tr := m.TranslationFor(locale); tr != nil {
		return tr.Note
	}
	return ""
}

// reasonText holds the built-in reason labels per locale.
var reasonText = map[string]map[string]string{
	"purchase": {
		"uz": "Sotib olish",
		"ru": "Покупка",
		"en": "Purchase",
	},
	"return": {
		"uz": "Qaytarish",
		"ru": "Возврат",
		"en": "Return",
	},
	"adjustment": {
		"uz": "Tuzatish",
		"ru": "Корректировка",
		"en": "Adjustment",
	},
	"sale": {
		"uz": "Sotish",
		"ru": "Продажа",
		"en": "Sale",
	},
	"damage": {
		"uz": "Zarar",
		"ru": "Повреждение",
		"en": "Damage",
	},
}

// ReasonText returns the localized reason label, falling back to the raw
// reason code.
func (m *StockMovement) ReasonText(locale string) string {
	if labels, ok := reasonText[m.Reason]; ok {
		if label, ok := labels[locale]; ok {
			return label
		}
	}
	return m.Reason
}

// StockMovementTranslation stores the free-text note per locale. The same
// note is duplicated into every configured locale on insert.
type StockMovementTranslation struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	MovementID uint   `gorm:"column:stock_movement_id;not null;index;uniqueIndex:idx_movement_locale" json:"stock_movement_id"`
	Locale     string `gorm:"type:varchar(10);not null;uniqueIndex:idx_movement_locale" json:"locale"`
	Note       string `gorm:"type:varchar(255)" json:"note"`
}

// TableName sets the table name.
func (StockMovementTranslation) TableName() string {
	return "stock_movement_translations"
}
