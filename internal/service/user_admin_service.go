package service

import (
	"context"

	"github.com/savdo-next/internal/cache"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
)

// UserAdminService is the admin side of the seller approval workflow.
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService creates a user admin service.
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// ListSellers returns seller accounts, optionally narrowed by status.
func (s *UserAdminService) ListSellers(status string, page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.ListByRole(constants.RoleSeller, status, page, pageSize)
}

// GetSeller loads one seller account.
func (s *UserAdminService) GetSeller(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsSeller() {
		return nil, ErrNotFound
	}
	return user, nil
}

// ApproveSeller activates a pending seller so they can log in.
func (s *UserAdminService) ApproveSeller(id uint) (*models.User, error) {
	return s.setSellerStatus(id, constants.UserStatusActive)
}

// RejectSeller refuses a seller application.
func (s *UserAdminService) RejectSeller(id uint) (*models.User, error) {
	return s.setSellerStatus(id, constants.UserStatusRejected)
}

func (s *UserAdminService) setSellerStatus(id uint, status string) (*models.User, error) {
	user, err := s.GetSeller(id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateStatus(user.ID, status); err != nil {
		return nil, err
	}
	user.Status = status

	// Drop the cached auth snapshot so the change takes effect on the
	// seller's next request, not after the TTL.
	_ = cache.DelUserAuthState(context.Background(), user.ID)

	return user, nil
}
