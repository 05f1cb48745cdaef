package models

import "time"

// AttributeGroup is the top of the attribute tree (e.g. "Dimensions").
type AttributeGroup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Position  int       `gorm:"default:0;index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attributes   []Attribute                 `gorm:"foreignKey:GroupID" json:"attributes,omitempty"`
	Translations []AttributeGroupTranslation `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (AttributeGroup) TableName() string {
	return "attribute_groups"
}

// TranslationFor returns the translation row for locale, or nil.
func (g *AttributeGroup) TranslationFor(locale string) *AttributeGroupTranslation {
	for i := range g.Translations {
		if g.Translations[i].Locale == locale {
			return &g.Translations[i]
		}
	}
	return nil
}

// LocalizedName resolves the display name for locale, falling back to the
// raw stored name.
func (g *AttributeGroup) LocalizedName(locale string) string {
	if tr := g.TranslationFor(locale); tr != nil && tr.Name != "" {
		return tr.Name
	}
	return g.Name
}

// AttributeGroupTranslation localizes a group name per locale.
type AttributeGroupTranslation struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	GroupID uint   `gorm:"column:attribute_group_id;not null;index;uniqueIndex:idx_attr_group_locale" json:"attribute_group_id"`
	Locale  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_attr_group_locale" json:"locale"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName sets the table name.
func (AttributeGroupTranslation) TableName() string {
	return "attribute_group_translations"
}
