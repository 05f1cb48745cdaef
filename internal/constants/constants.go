package constants

// User roles
const (
	RoleAdmin    = "admin"
	RoleSeller   = "seller"
	RoleCustomer = "customer"
)

// User account statuses
const (
	UserStatusPending  = "pending"
	UserStatusActive   = "active"
	UserStatusRejected = "rejected"
)

// Order and order item statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Stock movement reason codes
const (
	StockReasonPurchase   = "purchase"
	StockReasonReturn     = "return"
	StockReasonAdjustment = "adjustment"
	StockReasonSale       = "sale"
	StockReasonDamage     = "damage"
)

// Attribute input types
const (
	AttributeTypeText    = "text"
	AttributeTypeNumber  = "number"
	AttributeTypeSelect  = "select"
	AttributeTypeBoolean = "boolean"
	AttributeTypeDate    = "date"
)

// UpdatableOrderStatuses are the statuses a seller may set on own items.
var UpdatableOrderStatuses = []string{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// StockReasons lists every accepted movement reason.
var StockReasons = []string{
	StockReasonPurchase,
	StockReasonReturn,
	StockReasonAdjustment,
	StockReasonSale,
	StockReasonDamage,
}

// AttributeTypes lists every accepted attribute input type.
var AttributeTypes = []string{
	AttributeTypeText,
	AttributeTypeNumber,
	AttributeTypeSelect,
	AttributeTypeBoolean,
	AttributeTypeDate,
}

// IsValidOrderStatus reports whether s is a seller-updatable item status.
func IsValidOrderStatus(s string) bool {
	return contains(UpdatableOrderStatuses, s)
}

// IsValidStockReason reports whether s is a known movement reason.
func IsValidStockReason(s string) bool {
	return contains(StockReasons, s)
}

// IsValidAttributeType reports whether s is a known attribute type.
func IsValidAttributeType(s string) bool {
	return contains(AttributeTypes, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
