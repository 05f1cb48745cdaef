package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func newTestUserAdminService(db *gorm.DB) *UserAdminService {
	return NewUserAdminService(repository.NewUserRepository(db))
}

func TestApproveSellerActivatesAccount(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(db)
	admin := newTestUserAdminService(db)

	email := "approve.flow@example.com"
	seller, err := auth.RegisterSeller(sellerSignup(email))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	approved, err := admin.ApproveSeller(seller.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != constants.UserStatusActive {
		t.Fatalf("approved status want active got %s", approved.Status)
	}

	if _, _, _, err := auth.SellerLogin(email, "Sardor2024"); err != nil {
		t.Fatalf("approved seller must log in, got %v", err)
	}
}

func TestRejectSellerBlocksLogin(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(db)
	admin := newTestUserAdminService(db)

	email := "reject.flow@example.com"
	seller, err := auth.RegisterSeller(sellerSignup(email))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	rejected, err := admin.RejectSeller(seller.ID)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != constants.UserStatusRejected {
		t.Fatalf("rejected status want rejected got %s", rejected.Status)
	}

	if _, _, _, err := auth.SellerLogin(email, "Sardor2024"); !errors.Is(err, ErrAccountNotActive) {
		t.Fatalf("rejected seller login want ErrAccountNotActive got %v", err)
	}
}

func TestSellerWorkflowIgnoresNonSellers(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUserAdminService(db)

	if _, err := admin.GetSeller(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user want ErrNotFound got %v", err)
	}
	if _, err := admin.ApproveSeller(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("approve missing user want ErrNotFound got %v", err)
	}
}

func TestListSellersFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(db)
	admin := newTestUserAdminService(db)

	pending, err := auth.RegisterSeller(sellerSignup("list.pending@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	active, err := auth.RegisterSeller(sellerSignup("list.active@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := admin.ApproveSeller(active.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	sellers, _, err := admin.ListSellers(constants.UserStatusPending, 1, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, s := range sellers {
		if s.Status != constants.UserStatusPending {
			t.Fatalf("status filter leaked %s account %d", s.Status, s.ID)
		}
	}
	found := false
	for _, s := range sellers {
		if s.ID == pending.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("pending filter must include the pending seller")
	}
}
