package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestStockService(db *gorm.DB) *StockService {
	return NewStockService(
		&config.Config{},
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
		repository.NewStockMovementRepository(db),
	)
}

func createStockTestProduct(t *testing.T, db *gorm.DB, sellerID uint, name string, stock int) *models.Product {
	t.Helper()
	svc := newTestProductService(db)
	product, err := svc.Create(CreateProductInput{
		SellerID:     sellerID,
		CategoryID:   1,
		Price:        decimal.NewFromInt(100),
		Images:       []string{"a.jpg"},
		Translations: productTranslations(name),
		Variants:     []VariantInput{{Price: decimal.NewFromInt(100), Stock: stock}},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestUpdateStockAppendsMovementWithNotes(t *testing.T) {
	db := newTestDB(t)
	svc := newTestStockService(db)
	product := createStockTestProduct(t, db, 201, "Stock Ledger Probe", 5)
	variant := product.Variants[0]

	result, err := svc.UpdateStock(product.ID, variant.ID, 201, 12, constants.StockReasonPurchase, "restocked from warehouse")
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}

	if result.StockChange != 7 {
		t.Fatalf("change want 7 got %d", result.StockChange)
	}
	if result.Movement.PreviousStock != 5 || result.Movement.NewStock != 12 {
		t.Fatalf("movement want 5->12 got %d->%d", result.Movement.PreviousStock, result.Movement.NewStock)
	}
	if result.Movement.Change != result.Movement.NewStock-result.Movement.PreviousStock {
		t.Fatalf("movement change must equal new-previous")
	}
	if len(result.Movement.Translations) != 3 {
		t.Fatalf("note should be duplicated per locale, got %d rows", len(result.Movement.Translations))
	}
	for _, tr := range result.Movement.Translations {
		if tr.Note != "restocked from warehouse" {
			t.Fatalf("note for %s want original text got %q", tr.Locale, tr.Note)
		}
	}

	var stored models.ProductVariant
	if err := db.First(&stored, variant.ID).Error; err != nil {
		t.Fatalf("load variant failed: %v", err)
	}
	if stored.Stock != 12 {
		t.Fatalf("variant stock want 12 got %d", stored.Stock)
	}
}

func TestUpdateStockEmptyNoteSkipsTranslations(t *testing.T) {
	db := newTestDB(t)
	svc := newTestStockService(db)
	product := createStockTestProduct(t, db, 202, "Noteless Ledger Probe", 3)

	result, err := svc.UpdateStock(product.ID, product.Variants[0].ID, 202, 1, constants.StockReasonDamage, "   ")
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if len(result.Movement.Translations) != 0 {
		t.Fatalf("blank note should produce no translation rows, got %d", len(result.Movement.Translations))
	}
}

func TestUpdateStockValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestStockService(db)
	product := createStockTestProduct(t, db, 203, "Stock Validation Probe", 5)
	variantID := product.Variants[0].ID

	if _, err := svc.UpdateStock(product.ID, variantID, 203, -1, constants.StockReasonSale, ""); !errors.Is(err, ErrInvalidStock) {
		t.Fatalf("negative stock want ErrInvalidStock got %v", err)
	}
	if _, err := svc.UpdateStock(product.ID, variantID, 203, 4, "mystery", ""); !errors.Is(err, ErrInvalidReason) {
		t.Fatalf("unknown reason want ErrInvalidReason got %v", err)
	}
	if _, err := svc.UpdateStock(product.ID, variantID, 999, 4, constants.StockReasonSale, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign seller want ErrNotFound got %v", err)
	}
	if _, err := svc.UpdateStock(product.ID, variantID+10000, 203, 4, constants.StockReasonSale, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown variant want ErrNotFound got %v", err)
	}

	var stored models.ProductVariant
	if err := db.First(&stored, variantID).Error; err != nil {
		t.Fatalf("load variant failed: %v", err)
	}
	if stored.Stock != 5 {
		t.Fatalf("failed updates must not touch stock, got %d", stored.Stock)
	}
}

func TestStockSumsVariantTotals(t *testing.T) {
	db := newTestDB(t)
	productSvc := newTestProductService(db)
	product, err := productSvc.Create(CreateProductInput{
		SellerID:     206,
		CategoryID:   1,
		Price:        decimal.NewFromInt(100),
		Images:       []string{"a.jpg"},
		Translations: productTranslations("Stock Total Probe"),
		Variants: []VariantInput{
			{Price: decimal.NewFromInt(100), Stock: 7},
			{Price: decimal.NewFromInt(120), Stock: 3},
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	svc := newTestStockService(db)
	stock, err := svc.Stock(product.ID, 206)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if stock.TotalStock != 10 {
		t.Fatalf("total want 10 got %d", stock.TotalStock)
	}
	if len(stock.Variants) != 2 {
		t.Fatalf("variants want 2 got %d", len(stock.Variants))
	}

	if _, err := svc.Stock(product.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign seller want ErrNotFound got %v", err)
	}
}

// brokenMovementRepo fails every movement insert so the surrounding
// transaction has to roll back.
type brokenMovementRepo struct {
	repository.StockMovementRepository
}

var errMovementInsert = errors.New("movement insert refused")

func (r brokenMovementRepo) Create(*models.StockMovement) error {
	return errMovementInsert
}

func (r brokenMovementRepo) WithTx(tx *gorm.DB) repository.StockMovementRepository {
	return brokenMovementRepo{r.StockMovementRepository.WithTx(tx)}
}

func TestUpdateStockRollsBackWhenMovementInsertFails(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 207, "Stock Rollback Probe", 5)
	variantID := product.Variants[0].ID

	svc := NewStockService(
		&config.Config{},
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
		brokenMovementRepo{repository.NewStockMovementRepository(db)},
	)

	if _, err := svc.UpdateStock(product.ID, variantID, 207, 9, constants.StockReasonPurchase, "never lands"); !errors.Is(err, errMovementInsert) {
		t.Fatalf("want movement insert failure got %v", err)
	}

	var stored models.ProductVariant
	if err := db.First(&stored, variantID).Error; err != nil {
		t.Fatalf("load variant failed: %v", err)
	}
	if stored.Stock != 5 {
		t.Fatalf("failed movement insert must leave stock at 5, got %d", stored.Stock)
	}

	var movements int64
	if err := db.Model(&models.StockMovement{}).Where("variant_id = ?", variantID).Count(&movements).Error; err != nil {
		t.Fatalf("count movements failed: %v", err)
	}
	if movements != 0 {
		t.Fatalf("rolled-back update must leave no ledger rows, got %d", movements)
	}
}

func TestStockLedgerReplaysToCurrentStock(t *testing.T) {
	db := newTestDB(t)
	svc := newTestStockService(db)
	product := createStockTestProduct(t, db, 204, "Ledger Replay Probe", 0)
	variantID := product.Variants[0].ID

	targets := []struct {
		stock  int
		reason string
	}{
		{10, constants.StockReasonPurchase},
		{7, constants.StockReasonSale},
		{9, constants.StockReasonReturn},
		{4, constants.StockReasonAdjustment},
	}
	for _, step := range targets {
		if _, err := svc.UpdateStock(product.ID, variantID, 204, step.stock, step.reason, ""); err != nil {
			t.Fatalf("update to %d failed: %v", step.stock, err)
		}
	}

	var movements []models.StockMovement
	if err := db.Where("variant_id = ?", variantID).Order("id ASC").Find(&movements).Error; err != nil {
		t.Fatalf("load movements failed: %v", err)
	}
	if len(movements) != len(targets) {
		t.Fatalf("movement count want %d got %d", len(targets), len(movements))
	}

	replayed := 0
	for _, m := range movements {
		if m.PreviousStock != replayed {
			t.Fatalf("movement %d previous want %d got %d", m.ID, replayed, m.PreviousStock)
		}
		replayed += m.Change
		if m.NewStock != replayed {
			t.Fatalf("movement %d new want %d got %d", m.ID, replayed, m.NewStock)
		}
	}

	var stored models.ProductVariant
	if err := db.First(&stored, variantID).Error; err != nil {
		t.Fatalf("load variant failed: %v", err)
	}
	if replayed != stored.Stock {
		t.Fatalf("ledger replay %d must match current stock %d", replayed, stored.Stock)
	}
}

func TestLowStockUsesConfiguredThreshold(t *testing.T) {
	db := newTestDB(t)
	product := createStockTestProduct(t, db, 205, "Low Stock Probe", 2)
	createStockTestProduct(t, db, 205, "Healthy Stock Probe", 50)

	svc := newTestStockService(db)
	low, err := svc.LowStock(205)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("expected one low variant, got %d", len(low))
	}
	if low[0].ProductID != product.ID {
		t.Fatalf("low variant should belong to the low product")
	}
}
