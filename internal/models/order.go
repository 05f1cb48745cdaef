package models

import "time"

// Order aggregates items across sellers. The order-level status is only
// promoted when every item shares the same status; multi-seller orders can
// stay in a mixed state indefinitely.
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem binds one product (and optionally one variant) to an order.
// Seller ownership is derived through ProductID.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	VariantID *uint     `gorm:"index" json:"variant_id,omitempty"`
	Price     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Status    string    `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
