package seller

import (
	"net/http"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/i18n"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AttributeTranslationRequest is one {locale, name} pair.
type AttributeTranslationRequest struct {
	Locale string `json:"locale" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// AttributeValueRequest is one candidate value with labels.
type AttributeValueRequest struct {
	Value        string                        `json:"value" binding:"required"`
	Position     int                           `json:"position"`
	Translations []AttributeTranslationRequest `json:"translations" binding:"dive"`
}

// CreateAttributeRequest is the attribute creation payload.
type CreateAttributeRequest struct {
	Name         string                        `json:"name" binding:"required"`
	Type         string                        `json:"type" binding:"required"`
	IsRequired   bool                          `json:"is_required"`
	IsFilterable bool                          `json:"is_filterable"`
	Position     int                           `json:"position"`
	Translations []AttributeTranslationRequest `json:"translations" binding:"required,min=1,dive"`
	Values       []AttributeValueRequest       `json:"values" binding:"dive"`
}

// UpdateAttributeRequest carries partial attribute updates.
type UpdateAttributeRequest struct {
	Name         *string                       `json:"name"`
	Type         *string                       `json:"type"`
	IsRequired   *bool                         `json:"is_required"`
	IsFilterable *bool                         `json:"is_filterable"`
	Position     *int                          `json:"position"`
	Translations []AttributeTranslationRequest `json:"translations" binding:"dive"`
}

// CombinationsRequest selects attributes to enumerate.
type CombinationsRequest struct {
	AttributeIDs []uint `json:"attribute_ids" binding:"required,min=1"`
}

// ListAttributeGroups returns the localized attribute tree.
func (h *Handler) ListAttributeGroups(c *gin.Context) {
	groups, err := h.AttributeService.ListGroups()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	views := make([]gin.H, 0, len(groups))
	for i := range groups {
		views = append(views, attributeGroupView(&groups[i], locale))
	}

	response.Success(c, "", gin.H{"groups": views})
}

// ListGroupAttributes returns one group's attributes.
func (h *Handler) ListGroupAttributes(c *gin.Context) {
	attributes, err := h.AttributeService.ListGroupAttributes(parseUintParam(c, "groupId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	views := make([]gin.H, 0, len(attributes))
	for i := range attributes {
		views = append(views, attributeView(&attributes[i], locale))
	}

	response.Success(c, "", gin.H{"attributes": views})
}

// CreateAttribute adds an attribute to a group.
func (h *Handler) CreateAttribute(c *gin.Context) {
	var req CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	input := service.CreateAttributeInput{
		GroupID:      parseUintParam(c, "groupId"),
		Name:         req.Name,
		Type:         req.Type,
		IsRequired:   req.IsRequired,
		IsFilterable: req.IsFilterable,
		Position:     req.Position,
	}
	for _, tr := range req.Translations {
		input.Translations = append(input.Translations, service.AttributeTranslationInput{
			Locale: tr.Locale,
			Name:   tr.Name,
		})
	}
	for _, v := range req.Values {
		value := service.AttributeValueInput{Value: v.Value, Position: v.Position}
		for _, tr := range v.Translations {
			value.Translations = append(value.Translations, service.AttributeTranslationInput{
				Locale: tr.Locale,
				Name:   tr.Name,
			})
		}
		input.Values = append(input.Values, value)
	}

	attribute, err := h.AttributeService.CreateAttribute(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Created(c, "", gin.H{"attribute": attributeView(attribute, locale)})
}

// UpdateAttribute patches an attribute; listed translations are upserted
// by locale.
func (h *Handler) UpdateAttribute(c *gin.Context) {
	var req UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	input := service.UpdateAttributeInput{
		Name:         req.Name,
		Type:         req.Type,
		IsRequired:   req.IsRequired,
		IsFilterable: req.IsFilterable,
		Position:     req.Position,
	}
	for _, tr := range req.Translations {
		input.Translations = append(input.Translations, service.AttributeTranslationInput{
			Locale: tr.Locale,
			Name:   tr.Name,
		})
	}

	attribute, err := h.AttributeService.UpdateAttribute(
		parseUintParam(c, "groupId"), parseUintParam(c, "id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, "", gin.H{"attribute": attributeView(attribute, locale)})
}

// DeleteAttribute removes an attribute with its values and translations.
func (h *Handler) DeleteAttribute(c *gin.Context) {
	if err := h.AttributeService.DeleteAttribute(
		parseUintParam(c, "groupId"), parseUintParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, i18n.T(locale, "msg.attribute_deleted"), nil)
}

// GenerateCombinations enumerates candidate variant tuples for the
// selected attributes.
func (h *Handler) GenerateCombinations(c *gin.Context) {
	var req CombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "error.validation", err)
		return
	}

	combinations, err := h.AttributeService.GenerateCombinations(req.AttributeIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, "", gin.H{"combinations": combinations})
}

func attributeGroupView(g *models.AttributeGroup, locale string) gin.H {
	attributes := make([]gin.H, 0, len(g.Attributes))
	for i := range g.Attributes {
		attributes = append(attributes, attributeView(&g.Attributes[i], locale))
	}
	return gin.H{
		"id":         g.ID,
		"name":       g.LocalizedName(locale),
		"position":   g.Position,
		"attributes": attributes,
	}
}

func attributeView(a *models.Attribute, locale string) gin.H {
	values := make([]gin.H, 0, len(a.Values))
	for i := range a.Values {
		v := &a.Values[i]
		values = append(values, gin.H{
			"id":       v.ID,
			"value":    v.LocalizedValue(locale),
			"position": v.Position,
		})
	}
	return gin.H{
		"id":            a.ID,
		"group_id":      a.GroupID,
		"name":          a.LocalizedName(locale),
		"type":          a.Type,
		"is_required":   a.IsRequired,
		"is_filterable": a.IsFilterable,
		"position":      a.Position,
		"values":        values,
	}
}
