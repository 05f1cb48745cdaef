package models

import "time"

// Attribute belongs to exactly one group and owns its values.
type Attribute struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	GroupID      uint      `gorm:"column:attribute_group_id;not null;index" json:"attribute_group_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Type         string    `gorm:"type:varchar(20);not null" json:"type"`
	IsRequired   bool      `gorm:"default:false" json:"is_required"`
	IsFilterable bool      `gorm:"default:false" json:"is_filterable"`
	Position     int       `gorm:"default:0;index" json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Group        *AttributeGroup        `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Values       []AttributeValue       `gorm:"foreignKey:AttributeID" json:"values,omitempty"`
	Translations []AttributeTranslation `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (Attribute) TableName() string {
	return "attributes"
}

// TranslationFor returns the translation row for locale, or nil.
func (a *Attribute) TranslationFor(locale string) *AttributeTranslation {
	for i := range a.Translations {
		if a.Translations[i].Locale == locale {
			return &a.Translations[i]
		}
	}
	return nil
}

// LocalizedName resolves the display name for locale, falling back to the
// raw stored name.
func (a *Attribute) LocalizedName(locale string) string {
	if tr := a.TranslationFor(locale); tr != nil && tr.Name != "" {
		return tr.Name
	}
	return a.Name
}

// AttributeTranslation localizes an attribute name per locale.
type AttributeTranslation struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	AttributeID uint   `gorm:"not null;index;uniqueIndex:idx_attribute_locale" json:"attribute_id"`
	Locale      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_attribute_locale" json:"locale"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName sets the table name.
func (AttributeTranslation) TableName() string {
	return "attribute_translations"
}
