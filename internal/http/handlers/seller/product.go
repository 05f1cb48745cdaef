package seller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/repository"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductTranslationRequest is one locale's name/description.
type ProductTranslationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// VariantRequest describes one variant in create/update payloads.
type VariantRequest struct {
	AttributeValues []uint          `json:"attribute_values"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Stock           int             `json:"stock"`
}

// CreateProductRequest is the product creation payload.
type CreateProductRequest struct {
	CategoryID   uint                                 `json:"category_id" binding:"required"`
	Price        decimal.Decimal                      `json:"price" binding:"required"`
	OldPrice     *decimal.Decimal                     `json:"old_price"`
	Images       []string                             `json:"images" binding:"required,min=1"`
	Translations map[string]ProductTranslationRequest `json:"translations" binding:"required"`
	Variants     []VariantRequest                     `json:"variants"`
	Featured     bool                                 `json:"featured"`
}

// UpdateProductRequest carries partial product updates.
type UpdateProductRequest struct {
	CategoryID   *uint                                `json:"category_id"`
	Price        *decimal.Decimal                     `json:"price"`
	OldPrice     *decimal.Decimal                     `json:"old_price"`
	Images       []string                             `json:"images"`
	Translations map[string]ProductTranslationRequest `json:"translations"`
	Variants     []VariantRequest                     `json:"variants"`
	Featured     *bool                                `json:"featured"`
}

// ListProducts pages the seller's catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: uint(categoryID),
		Status:     strings.TrimSpace(c.Query("status")),
		Search:     strings.TrimSpace(c.Query("search")),
		Sort:       strings.TrimSpace(c.Query("sort")),
	}

	products, total, err := h.ProductService.List(sellerID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, "", products, response.NewPagination(page, pageSize, total))
}

// GetProduct loads one of the seller's products.
func (h *Handler) GetProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	product, err := h.ProductService.Get(parseUintParam(c, "id"), sellerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, "", gin.H{"product": product})
}

// CreateProduct creates an inactive product with translations and
// variants.
func (h *Handler) CreateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	product, err := h.ProductService.Create(buildCreateInput(sellerID, req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("product_created",
		"product_id", product.ID,
		"seller_id", sellerID,
		"slug", product.Slug,
	)

	locale := i18n.ResolveLocale(c)
	response.Created(c, i18n.T(locale, "msg.product_created"), gin.H{"product": product})
}

// UpdateProduct patches a product; a variants list replaces the full set.
func (h *Handler) UpdateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	input := service.UpdateProductInput{
		CategoryID: req.CategoryID,
		Price:      req.Price,
		OldPrice:   req.OldPrice,
		Images:     req.Images,
		Featured:   req.Featured,
	}
	if req.Translations != nil {
		input.Translations = make(map[string]service.ProductTranslationInput, len(req.Translations))
		for locale, tr := range req.Translations {
			input.Translations[locale] = service.ProductTranslationInput{
				Name:        tr.Name,
				Description: tr.Description,
			}
		}
	}
	if req.Variants != nil {
		input.Variants = make([]service.VariantInput, 0, len(req.Variants))
		for _, v := range req.Variants {
			input.Variants = append(input.Variants, service.VariantInput{
				AttributeValues: v.AttributeValues,
				Price:           v.Price,
				Stock:           v.Stock,
			})
		}
	}

	product, err := h.ProductService.Update(parseUintParam(c, "id"), sellerID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.product_updated"), gin.H{"product": product})
}

// DeleteProduct removes a product with everything attached to it.
func (h *Handler) DeleteProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	productID := parseUintParam(c, "id")
	if err := h.ProductService.Delete(productID, sellerID); err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("product_deleted", "product_id", productID, "seller_id", sellerID)

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.product_deleted"), nil)
}

// ProductStatistics aggregates the seller's catalog and sales.
func (h *Handler) ProductStatistics(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	stats, err := h.ProductService.Statistics(sellerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	response.Success(c, "", gin.H{"stats": stats})
}

func buildCreateInput(sellerID uint, req CreateProductRequest) service.CreateProductInput {
	input := service.CreateProductInput{
		SellerID:     sellerID,
		CategoryID:   req.CategoryID,
		Price:        req.Price,
		OldPrice:     req.OldPrice,
		Images:       req.Images,
		Featured:     req.Featured,
		Translations: make(map[string]service.ProductTranslationInput, len(req.Translations)),
	}
	for locale, tr := range req.Translations {
		input.Translations[locale] = service.ProductTranslationInput{
			Name:        tr.Name,
			Description: tr.Description,
		}
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.VariantInput{
			AttributeValues: v.AttributeValues,
			Price:           v.Price,
			Stock:           v.Stock,
		})
	}
	return input
}
