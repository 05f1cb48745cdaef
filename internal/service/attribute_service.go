package service

import (
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// AttributeService manages the localized attribute tree.
type AttributeService struct {
	repo repository.AttributeRepository
}

// NewAttributeService creates an attribute service.
func NewAttributeService(repo repository.AttributeRepository) *AttributeService {
	return &AttributeService{repo: repo}
}

// AttributeTranslationInput is one locale's label for an attribute.
type AttributeTranslationInput struct {
	Locale string
	Name   string
}

// CreateAttributeInput collects attribute creation fields. Translations
// must be non-empty.
type CreateAttributeInput struct {
	GroupID      uint
	Name         string
	Type         string
	IsRequired   bool
	IsFilterable bool
	Position     int
	Translations []AttributeTranslationInput
	Values       []AttributeValueInput
}

// AttributeValueInput is one candidate value with its labels.
type AttributeValueInput struct {
	Value        string
	Position     int
	Translations []AttributeTranslationInput
}

// UpdateAttributeInput carries partial attribute updates. Nil pointers
// leave the column untouched; listed translations are upserted by locale,
// unlisted locales survive.
type UpdateAttributeInput struct {
	Name         *string
	Type         *string
	IsRequired   *bool
	IsFilterable *bool
	Position     *int
	Translations []AttributeTranslationInput
}

// ListGroups returns the full group → attribute → value tree.
func (s *AttributeService) ListGroups() ([]models.AttributeGroup, error) {
	return s.repo.ListGroups()
}

// GetGroup loads one group.
func (s *AttributeService) GetGroup(id uint) (*models.AttributeGroup, error) {
	group, err := s.repo.GetGroupByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return group, nil
}

// ListGroupAttributes returns a group's attributes.
func (s *AttributeService) ListGroupAttributes(groupID uint) ([]models.Attribute, error) {
	group, err := s.repo.GetGroupByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListGroupAttributes(groupID)
}

// CreateAttribute inserts an attribute with translations and optional
// values under an existing group.
func (s *AttributeService) CreateAttribute(input CreateAttributeInput) (*models.Attribute, error) {
	group, err := s.repo.GetGroupByID(input.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}

	if len(input.Translations) == 0 {
		return nil, ErrMissingTranslation
	}
	attrType := strings.TrimSpace(input.Type)
	if !constants.IsValidAttributeType(attrType) {
		return nil, ErrInvalidAttribute
	}

	attribute := &models.Attribute{
		GroupID:      input.GroupID,
		Name:         strings.TrimSpace(input.Name),
		Type:         attrType,
		IsRequired:   input.IsRequired,
		IsFilterable: input.IsFilterable,
		Position:     input.Position,
	}
	for _, tr := range input.Translations {
		name := strings.TrimSpace(tr.Name)
		if name == "" {
			return nil, ErrMissingTranslation
		}
		attribute.Translations = append(attribute.Translations, models.AttributeTranslation{
			Locale: tr.Locale,
			Name:   name,
		})
	}
	for _, v := range input.Values {
		value := models.AttributeValue{
			Value:    strings.TrimSpace(v.Value),
			Position: v.Position,
		}
		for _, tr := range v.Translations {
			value.Translations = append(value.Translations, models.AttributeValueTranslation{
				Locale: tr.Locale,
				Value:  strings.TrimSpace(tr.Name),
			})
		}
		attribute.Values = append(attribute.Values, value)
	}

	if err := s.repo.CreateAttribute(attribute); err != nil {
		return nil, err
	}
	return s.repo.GetAttributeByID(attribute.ID)
}

// UpdateAttribute patches columns and upserts the listed translations.
// Input is validated in full before any write, and the write itself is
// one transaction, so a bad translation never leaves a half-updated row.
func (s *AttributeService) UpdateAttribute(groupID, attributeID uint, input UpdateAttributeInput) (*models.Attribute, error) {
	attribute, err := s.repo.GetAttribute(groupID, attributeID)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, ErrNotFound
	}

	for _, tr := range input.Translations {
		if strings.TrimSpace(tr.Name) == "" {
			return nil, ErrMissingTranslation
		}
	}

	if input.Name != nil {
		attribute.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		attrType := strings.TrimSpace(*input.Type)
		if !constants.IsValidAttributeType(attrType) {
			return nil, ErrInvalidAttribute
		}
		attribute.Type = attrType
	}
	if input.IsRequired != nil {
		attribute.IsRequired = *input.IsRequired
	}
	if input.IsFilterable != nil {
		attribute.IsFilterable = *input.IsFilterable
	}
	if input.Position != nil {
		attribute.Position = *input.Position
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.SaveAttribute(attribute); err != nil {
			return err
		}
		for _, tr := range input.Translations {
			if err := repo.UpsertTranslation(attributeID, tr.Locale, strings.TrimSpace(tr.Name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetAttributeByID(attributeID)
}

// DeleteAttribute removes the attribute, its values and translations.
func (s *AttributeService) DeleteAttribute(groupID, attributeID uint) error {
	attribute, err := s.repo.GetAttribute(groupID, attributeID)
	if err != nil {
		return err
	}
	if attribute == nil {
		return ErrNotFound
	}
	return s.repo.DeleteAttribute(attributeID)
}

// GenerateCombinations enumerates candidate variant tuples over the
// selected attributes' value sets, in the requested attribute order.
func (s *AttributeService) GenerateCombinations(attributeIDs []uint) ([][]uint, error) {
	if len(attributeIDs) == 0 {
		return [][]uint{}, nil
	}

	attributes, err := s.repo.ListAttributesByIDs(attributeIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Attribute, len(attributes))
	for i := range attributes {
		byID[attributes[i].ID] = &attributes[i]
	}

	lists := make([][]uint, 0, len(attributeIDs))
	for _, id := range attributeIDs {
		attribute, ok := byID[id]
		if !ok {
			return nil, ErrInvalidAttribute
		}
		values := make([]uint, 0, len(attribute.Values))
		for _, v := range attribute.Values {
			values = append(values, v.ID)
		}
		lists = append(lists, values)
	}
	return Combine(lists), nil
}
