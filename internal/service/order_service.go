package service

import (
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService exposes the seller projection over shared orders. Sellers
// only ever act on their own item rows; the order-level status is a
// derived value recomputed after every item change.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List pages through orders containing the seller's products.
func (s *OrderService) List(sellerID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListForSeller(sellerID, filter)
}

// Get loads one order through the seller's lens. Orders the seller has no
// items in come back ErrNotFound, same as orders that do not exist.
func (s *OrderService) Get(orderID, sellerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetForSeller(orderID, sellerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves the seller's items in the order to status, then
// recomputes the order-level status: it is promoted only when every item
// across all sellers now shares one status, otherwise it stays as-is.
func (s *OrderService) UpdateStatus(orderID, sellerID uint, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if !constants.IsValidOrderStatus(status) || status == constants.OrderStatusPending {
		return nil, ErrInvalidStatus
	}

	ok, err := s.orderRepo.HasSellerItems(orderID, sellerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		if _, err := orderRepo.UpdateSellerItemStatuses(orderID, sellerID, status); err != nil {
			return err
		}

		statuses, err := orderRepo.DistinctItemStatuses(orderID)
		if err != nil {
			return err
		}
		if len(statuses) == 1 {
			return orderRepo.UpdateStatus(orderID, statuses[0])
		}
		// Mixed multi-seller state: leave the order-level status alone.
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(orderID, sellerID)
}

// Statistics aggregates the seller's order items within the date range.
func (s *OrderService) Statistics(sellerID uint, dates repository.DateRange) (repository.SellerOrderStats, error) {
	return s.orderRepo.SellerStatistics(sellerID, dates)
}
