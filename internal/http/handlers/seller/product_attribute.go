package seller

import (
	"net/http"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AttributePairRequest binds one attribute to one of its values.
type AttributePairRequest struct {
	AttributeID uint `json:"attribute_id" binding:"required"`
	ValueID     uint `json:"value_id" binding:"required"`
}

// ReplaceAttributesRequest is the full attribute assignment set; an
// empty list clears the product's attributes.
type ReplaceAttributesRequest struct {
	Attributes []AttributePairRequest `json:"attributes"`
}

// ReplaceProductAttributes swaps the product's attribute assignments.
func (h *Handler) ReplaceProductAttributes(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req ReplaceAttributesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	pairs := make([]service.AttributePairInput, 0, len(req.Attributes))
	for _, p := range req.Attributes {
		pairs = append(pairs, service.AttributePairInput{
			AttributeID: p.AttributeID,
			ValueID:     p.ValueID,
		})
	}

	product, err := h.ProductService.ReplaceAttributes(parseUintParam(c, "id"), sellerID, pairs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("product_attributes_replaced",
		"product_id", product.ID,
		"seller_id", sellerID,
		"count", len(pairs),
	)

	response.Success(c, "", gin.H{"product": product})
}
