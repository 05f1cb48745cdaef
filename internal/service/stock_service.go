package service

import (
	"strings"

	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// StockService maintains the append-only stock ledger. Variant stock is
// only ever written through UpdateStock, so replaying a variant's
// movements always reproduces its current stock.
type StockService struct {
	cfg          *config.Config
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	movementRepo repository.StockMovementRepository
}

// NewStockService creates a stock service.
func NewStockService(
	cfg *config.Config,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	movementRepo repository.StockMovementRepository,
) *StockService {
	return &StockService{
		cfg:          cfg,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
	}
}

// StockUpdateResult reports one ledger append.
type StockUpdateResult struct {
	Variant     *models.ProductVariant `json:"variant"`
	StockChange int                    `json:"stock_change"`
	Movement    *models.StockMovement  `json:"movement"`
}

// UpdateStock overwrites the variant's stock with an absolute target and
// appends one movement, all inside a single transaction. The free-text
// note is duplicated into every configured locale. Any failure rolls the
// whole update back; the variant keeps its prior stock.
func (s *StockService) UpdateStock(productID, variantID, sellerID uint, newStock int, reason, note string) (*StockUpdateResult, error) {
	if newStock < 0 {
		return nil, ErrInvalidStock
	}
	reason = strings.TrimSpace(reason)
	if !constants.IsValidStockReason(reason) {
		return nil, ErrInvalidReason
	}

	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	var result *StockUpdateResult
	err = s.movementRepo.Transaction(func(tx *gorm.DB) error {
		variantRepo := s.variantRepo.WithTx(tx)
		movementRepo := s.movementRepo.WithTx(tx)

		variant, err := variantRepo.GetForProduct(variantID, productID)
		if err != nil {
			return err
		}
		if variant == nil {
			return ErrNotFound
		}

		previous := variant.Stock
		change := newStock - previous

		if err := variantRepo.SetStock(variant.ID, newStock); err != nil {
			return err
		}
		variant.Stock = newStock

		movement := &models.StockMovement{
			ProductID:     productID,
			VariantID:     variant.ID,
			PreviousStock: previous,
			NewStock:      newStock,
			Change:        change,
			Reason:        reason,
			CreatedBy:     sellerID,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		if note = strings.TrimSpace(note); note != "" {
			translations := make([]models.StockMovementTranslation, 0, len(i18n.Locales()))
			for _, locale := range i18n.Locales() {
				translations = append(translations, models.StockMovementTranslation{
					MovementID: movement.ID,
					Locale:     locale,
					Note:       note,
				})
			}
			if err := movementRepo.CreateTranslations(translations); err != nil {
				return err
			}
			movement.Translations = translations
		}

		result = &StockUpdateResult{
			Variant:     variant,
			StockChange: change,
			Movement:    movement,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ProductStock is a product's per-variant stock with the summed total.
type ProductStock struct {
	TotalStock int                     `json:"total_stock"`
	Variants   []models.ProductVariant `json:"variants"`
}

// Stock reads the product's variants with their current stock levels.
func (s *StockService) Stock(productID, sellerID uint) (*ProductStock, error) {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	total := 0
	for _, variant := range product.Variants {
		total += variant.Stock
	}
	return &ProductStock{TotalStock: total, Variants: product.Variants}, nil
}

// Movements pages through a product's ledger.
func (s *StockService) Movements(productID, sellerID uint, filter repository.MovementListFilter) ([]models.StockMovement, int64, error) {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, ErrNotFound
	}
	return s.movementRepo.ListByProduct(productID, filter)
}

// LowStock lists the seller's variants at or below the configured
// threshold, lowest first.
func (s *StockService) LowStock(sellerID uint) ([]models.ProductVariant, error) {
	return s.variantRepo.ListLowStock(sellerID, s.lowThreshold())
}

// StockOverview bundles the aggregate counters with recent movements.
type StockOverview struct {
	Stats           repository.SellerStockStats `json:"stats"`
	RecentMovements []models.StockMovement      `json:"recent_movements"`
}

// Statistics recomputes the seller's stock aggregates on demand.
func (s *StockService) Statistics(sellerID uint) (*StockOverview, error) {
	stats, err := s.variantRepo.SellerStockStats(sellerID, s.lowThreshold())
	if err != nil {
		return nil, err
	}
	recent, err := s.movementRepo.RecentBySeller(sellerID, s.recentLimit())
	if err != nil {
		return nil, err
	}
	return &StockOverview{Stats: stats, RecentMovements: recent}, nil
}

func (s *StockService) lowThreshold() int {
	if s.cfg != nil && s.cfg.Stock.LowThreshold > 0 {
		return s.cfg.Stock.LowThreshold
	}
	return 5
}

func (s *StockService) recentLimit() int {
	if s.cfg != nil && s.cfg.Stock.RecentMovements > 0 {
		return s.cfg.Stock.RecentMovements
	}
	return 5
}
