package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(repository.NewOrderRepository(db))
}

// seedSellerOrder creates one pending order with an item row per seller.
func seedSellerOrder(t *testing.T, db *gorm.DB, customerID uint, sellerProducts map[uint]*models.Product) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:      customerID,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.Money{Decimal: decimal.NewFromInt(300)},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	for _, product := range sellerProducts {
		item := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Price:     models.Money{Decimal: decimal.NewFromInt(150)},
			Quantity:  1,
			Status:    constants.OrderStatusPending,
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}
	return order
}

func TestUpdateStatusPromotesUniformOrder(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 301, "Order Promote Probe", 5)
	order := seedSellerOrder(t, db, 401, map[uint]*models.Product{301: product})

	svc := newTestOrderService(db)
	updated, err := svc.UpdateStatus(order.ID, 301, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("order status want shipped got %s", updated.Status)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusShipped {
		t.Fatalf("stored order status want shipped got %s", stored.Status)
	}
}

func TestUpdateStatusLeavesMixedOrderAlone(t *testing.T) {
	db := newTestDB(t)
	mine := createStockTestProduct(t, db, 302, "Mixed Order Mine", 5)
	theirs := createStockTestProduct(t, db, 303, "Mixed Order Theirs", 5)
	order := seedSellerOrder(t, db, 402, map[uint]*models.Product{302: mine, 303: theirs})

	svc := newTestOrderService(db)
	updated, err := svc.UpdateStatus(order.ID, 302, constants.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	// The other seller's item is still pending, so the order stays pending.
	if updated.Status != constants.OrderStatusPending {
		t.Fatalf("mixed order status want pending got %s", updated.Status)
	}

	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Order("product_id ASC").Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	byProduct := map[uint]string{}
	for _, item := range items {
		byProduct[item.ProductID] = item.Status
	}
	if byProduct[mine.ID] != constants.OrderStatusProcessing {
		t.Fatalf("my item want processing got %s", byProduct[mine.ID])
	}
	if byProduct[theirs.ID] != constants.OrderStatusPending {
		t.Fatalf("other seller's item must stay pending, got %s", byProduct[theirs.ID])
	}
}

func TestUpdateStatusPromotesWhenLastSellerCatchesUp(t *testing.T) {
	db := newTestDB(t)
	first := createStockTestProduct(t, db, 304, "Fanout Order First", 5)
	second := createStockTestProduct(t, db, 305, "Fanout Order Second", 5)
	order := seedSellerOrder(t, db, 403, map[uint]*models.Product{304: first, 305: second})

	svc := newTestOrderService(db)
	if _, err := svc.UpdateStatus(order.ID, 304, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("first seller update failed: %v", err)
	}
	updated, err := svc.UpdateStatus(order.ID, 305, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("second seller update failed: %v", err)
	}
	if updated.Status != constants.OrderStatusDelivered {
		t.Fatalf("order status want delivered got %s", updated.Status)
	}
}

func TestUpdateStatusRejectsInvalidTargets(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 306, "Order Validation Probe", 5)
	order := seedSellerOrder(t, db, 404, map[uint]*models.Product{306: product})

	svc := newTestOrderService(db)
	if _, err := svc.UpdateStatus(order.ID, 306, constants.OrderStatusPending); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("pending target want ErrInvalidStatus got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, 306, "teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status want ErrInvalidStatus got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, 999, constants.OrderStatusShipped); !errors.Is(err, ErrNotFound) {
		t.Fatalf("seller without items want ErrNotFound got %v", err)
	}
}

func TestGetMasksOrdersWithoutSellerItems(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 307, "Order Masking Probe", 5)
	order := seedSellerOrder(t, db, 405, map[uint]*models.Product{307: product})

	svc := newTestOrderService(db)
	if _, err := svc.Get(order.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign seller want ErrNotFound got %v", err)
	}
	if _, err := svc.Get(order.ID+10000, 307); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order want ErrNotFound got %v", err)
	}

	loaded, err := svc.Get(order.ID, 307)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("owner view want 1 item got %d", len(loaded.Items))
	}
	if loaded.Items[0].ProductID != product.ID {
		t.Fatalf("owner view must only carry the seller's items")
	}
}
