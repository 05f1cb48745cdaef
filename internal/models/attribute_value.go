package models

import "time"

// AttributeValue is one selectable value of an attribute (e.g. "Red").
type AttributeValue struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	AttributeID uint      `gorm:"not null;index" json:"attribute_id"`
	Value       string    `gorm:"type:varchar(255);not null" json:"value"`
	Position    int       `gorm:"default:0;index" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Attribute    *Attribute                  `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
	Translations []AttributeValueTranslation `gorm:"foreignKey:AttributeValueID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (AttributeValue) TableName() string {
	return "attribute_values"
}

// TranslationFor returns the translation row for locale, or nil.
func (v *AttributeValue) TranslationFor(locale string) *AttributeValueTranslation {
	for i := range v.Translations {
		if v.Translations[i].Locale == locale {
			return &v.Translations[i]
		}
	}
	return nil
}

// LocalizedValue resolves the display value for locale, falling back to
// the raw stored value.
func (v *AttributeValue) LocalizedValue(locale string) string {
	if tr := v.TranslationFor(locale); tr != nil && tr.Value != "" {
		return tr.Value
	}
	return v.Value
}

// AttributeValueTranslation localizes an attribute value per locale.
type AttributeValueTranslation struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	AttributeValueID uint   `gorm:"not null;index;uniqueIndex:idx_attr_value_locale" json:"attribute_value_id"`
	Locale           string `gorm:"type:varchar(10);not null;uniqueIndex:idx_attr_value_locale" json:"locale"`
	Value            string `gorm:"type:varchar(255);not null" json:"value"`
}

// TableName sets the table name.
func (AttributeValueTranslation) TableName() string {
	return "attribute_value_translations"
}
