package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// slugProbeLimit bounds the `-N` suffix search before giving up and
// letting the unique constraint decide.
const slugProbeLimit = 100

// ProductService owns the seller catalog workflow.
type ProductService struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	attrRepo    repository.AttributeRepository
}

// NewProductService creates a product service.
func NewProductService(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	attrRepo repository.AttributeRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		variantRepo: variantRepo,
		attrRepo:    attrRepo,
	}
}

// ProductTranslationInput is one locale's name/description pair.
type ProductTranslationInput struct {
	Name        string
	Description string
}

// VariantInput describes one variant to create.
type VariantInput struct {
	AttributeValues []uint
	Price           decimal.Decimal
	Stock           int
}

// CreateProductInput collects product creation fields. Translations must
// cover every configured locale with non-empty name and description.
type CreateProductInput struct {
	SellerID     uint
	CategoryID   uint
	Price        decimal.Decimal
	OldPrice     *decimal.Decimal
	Images       []string
	Translations map[string]ProductTranslationInput
	Variants     []VariantInput
	Featured     bool
}

// UpdateProductInput carries partial product updates. A non-nil Variants
// slice replaces the full variant set; nil leaves variants alone.
type UpdateProductInput struct {
	CategoryID   *uint
	Price        *decimal.Decimal
	OldPrice     *decimal.Decimal
	Images       []string
	Translations map[string]ProductTranslationInput
	Variants     []VariantInput
	Featured     *bool
}

// List returns the seller's products through the filter.
func (s *ProductService) List(sellerID uint, filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.SellerID = sellerID
	return s.productRepo.List(filter)
}

// Get loads one of the seller's products. Products owned by other sellers
// come back ErrNotFound so their existence is not revealed.
func (s *ProductService) Get(productID, sellerID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create builds the product inside one transaction: slug allocation,
// product row, translations and variants commit or roll back together.
// When no variants are supplied, one default variant is synthesized from
// the top-level price with zero stock. Everything starts inactive.
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if err := validateTranslations(input.Translations); err != nil {
		return nil, err
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if len(input.Images) == 0 {
		return nil, ErrMissingImages
	}
	if err := s.validateVariantValues(input.Variants); err != nil {
		return nil, err
	}

	englishName := input.Translations["en"].Name

	var created *models.Product
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)

		productSlug, err := s.allocateSlug(productRepo, englishName)
		if err != nil {
			return err
		}

		product := &models.Product{
			SellerID:   input.SellerID,
			CategoryID: input.CategoryID,
			Slug:       productSlug,
			Price:      models.NewMoneyFromDecimal(input.Price),
			Images:     models.StringArray(input.Images),
			Active:     false,
			Featured:   input.Featured,
		}
		if input.OldPrice != nil {
			old := models.NewMoneyFromDecimal(*input.OldPrice)
			product.OldPrice = &old
		}
		for locale, tr := range input.Translations {
			product.Translations = append(product.Translations, models.ProductTranslation{
				Locale:      locale,
				Name:        strings.TrimSpace(tr.Name),
				Description: strings.TrimSpace(tr.Description),
			})
		}

		variants := input.Variants
		if len(variants) == 0 {
			// Default variant carries the top-level price with no stock.
			variants = []VariantInput{{Price: input.Price, Stock: 0}}
		}
		for _, v := range variants {
			product.Variants = append(product.Variants, models.ProductVariant{
				SKU:             generateSKU(productSlug),
				Price:           models.NewMoneyFromDecimal(v.Price),
				Stock:           v.Stock,
				AttributeValues: models.UintList(v.AttributeValues),
				Active:          false,
			})
		}

		if err := productRepo.Create(product); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlugExists
			}
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(created.ID)
}

// Update patches columns, upserts translations and, when a variant set is
// supplied, replaces every existing variant with the new set.
func (s *ProductService) Update(productID, sellerID uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	for _, tr := range input.Translations {
		if strings.TrimSpace(tr.Name) == "" || strings.TrimSpace(tr.Description) == "" {
			return nil, ErrMissingTranslation
		}
	}
	if input.Price != nil && input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if err := s.validateVariantValues(input.Variants); err != nil {
		return nil, err
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		variantRepo := s.variantRepo.WithTx(tx)

		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}
		if input.Price != nil {
			product.Price = models.NewMoneyFromDecimal(*input.Price)
		}
		if input.OldPrice != nil {
			old := models.NewMoneyFromDecimal(*input.OldPrice)
			product.OldPrice = &old
		}
		if input.Images != nil {
			product.Images = models.StringArray(input.Images)
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}

		for locale, tr := range input.Translations {
			if err := productRepo.UpsertTranslation(product.ID, locale,
				strings.TrimSpace(tr.Name), strings.TrimSpace(tr.Description)); err != nil {
				return err
			}
		}

		if input.Variants != nil {
			// Full replacement, not a diff: callers resend the whole set.
			if err := variantRepo.DeleteByProduct(product.ID); err != nil {
				return err
			}
			variants := make([]models.ProductVariant, 0, len(input.Variants))
			for _, v := range input.Variants {
				variants = append(variants, models.ProductVariant{
					ProductID:       product.ID,
					SKU:             generateSKU(product.Slug),
					Price:           models.NewMoneyFromDecimal(v.Price),
					Stock:           v.Stock,
					AttributeValues: models.UintList(v.AttributeValues),
					Active:          false,
				})
			}
			if err := variantRepo.CreateBatch(variants); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(productID)
}

// Delete removes the product and everything hanging off it.
func (s *ProductService) Delete(productID, sellerID uint) error {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(productID)
}

// AttributePairInput binds one attribute to one of its values.
type AttributePairInput struct {
	AttributeID uint
	ValueID     uint
}

// ReplaceAttributes swaps the product's attribute/value assignments.
// Every value must belong to its claimed attribute.
func (s *ProductService) ReplaceAttributes(productID, sellerID uint, pairs []AttributePairInput) (*models.Product, error) {
	product, err := s.productRepo.GetByIDForSeller(productID, sellerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	attributeIDs := make([]uint, 0, len(pairs))
	for _, p := range pairs {
		attributeIDs = append(attributeIDs, p.AttributeID)
	}
	attributes, err := s.attrRepo.ListAttributesByIDs(attributeIDs)
	if err != nil {
		return nil, err
	}
	valueOwner := make(map[uint]uint)
	for _, attr := range attributes {
		for _, v := range attr.Values {
			valueOwner[v.ID] = attr.ID
		}
	}
	rows := make([]models.ProductAttribute, 0, len(pairs))
	for _, p := range pairs {
		if valueOwner[p.ValueID] != p.AttributeID {
			return nil, ErrInvalidAttribute
		}
		rows = append(rows, models.ProductAttribute{
			AttributeID: p.AttributeID,
			ValueID:     p.ValueID,
		})
	}

	if err := s.productRepo.ReplaceAttributes(productID, rows); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(productID)
}

// Statistics aggregates the seller's catalog and sales.
func (s *ProductService) Statistics(sellerID uint) (repository.SellerProductStats, error) {
	return s.productRepo.SellerStatistics(sellerID)
}

// allocateSlug probes slug, slug-1, slug-2, ... until a free one is
// found. The probe only narrows the race window; the unique index on
// products.slug is the real guard.
func (s *ProductService) allocateSlug(repo repository.ProductRepository, englishName string) (string, error) {
	base := slug.Make(englishName)
	if base == "" {
		return "", ErrMissingTranslation
	}

	candidate := base
	for i := 1; i <= slugProbeLimit; i++ {
		exists, err := repo.SlugExists(candidate, nil)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return candidate, nil
}

func (s *ProductService) validateVariantValues(variants []VariantInput) error {
	var ids []uint
	for _, v := range variants {
		if v.Price.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidPrice
		}
		if v.Stock < 0 {
			return ErrInvalidStock
		}
		ids = append(ids, v.AttributeValues...)
	}
	if len(ids) == 0 {
		return nil
	}
	ok, err := s.attrRepo.ValueIDsExist(ids)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidAttribute
	}
	return nil
}

// validateTranslations requires a non-empty name and description for
// every configured locale.
func validateTranslations(translations map[string]ProductTranslationInput) error {
	for _, locale := range i18n.Locales() {
		tr, ok := translations[locale]
		if !ok {
			return ErrMissingTranslation
		}
		if strings.TrimSpace(tr.Name) == "" || strings.TrimSpace(tr.Description) == "" {
			return ErrMissingTranslation
		}
	}
	return nil
}

const skuSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateSKU derives a SKU from the product slug plus a random 4-char
// suffix, e.g. RED-SHIRT-7KQ2.
func generateSKU(productSlug string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for request handling;
		// fall back to a constant suffix rather than panic.
		return strings.ToUpper(productSlug) + "-0000"
	}
	suffix := make([]byte, 4)
	for i, b := range buf {
		suffix[i] = skuSuffixAlphabet[int(b)%len(skuSuffixAlphabet)]
	}
	return strings.ToUpper(productSlug) + "-" + string(suffix)
}
