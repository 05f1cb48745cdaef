package models

import "time"

// ProductVariant is a purchasable SKU. Stock is the authoritative current
// quantity; every change to it goes through the stock ledger.
type ProductVariant struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ProductID       uint      `gorm:"not null;index" json:"product_id"`
	SKU             string    `gorm:"column:sku;type:varchar(64);not null;index" json:"sku"`
	Price           Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Stock           int       `gorm:"not null;default:0;index" json:"stock"`
	AttributeValues UintList  `gorm:"type:json" json:"attribute_values"`
	Active          bool      `gorm:"default:false" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}

// ProductAttribute links a product to an attribute/value pair.
type ProductAttribute struct {
	ID          uint `gorm:"primarykey" json:"id"`
	ProductID   uint `gorm:"not null;index;uniqueIndex:idx_product_attr_value" json:"product_id"`
	AttributeID uint `gorm:"not null;index;uniqueIndex:idx_product_attr_value" json:"attribute_id"`
	ValueID     uint `gorm:"column:attribute_value_id;not null;uniqueIndex:idx_product_attr_value" json:"attribute_value_id"`
}

// TableName sets the table name.
func (ProductAttribute) TableName() string {
	return "product_attributes"
}
