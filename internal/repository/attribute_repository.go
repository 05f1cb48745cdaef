package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// AttributeRepository covers groups, attributes, values and their
// translation tables.
type AttributeRepository interface {
	ListGroups() ([]models.AttributeGroup, error)
	GetGroupByID(id uint) (*models.AttributeGroup, error)
	ListGroupAttributes(groupID uint) ([]models.Attribute, error)
	GetAttribute(groupID, attributeID uint) (*models.Attribute, error)
	GetAttributeByID(id uint) (*models.Attribute, error)
	ListAttributesByIDs(ids []uint) ([]models.Attribute, error)
	CreateAttribute(attribute *models.Attribute) error
	SaveAttribute(attribute *models.Attribute) error
	UpsertTranslation(attributeID uint, locale, name string) error
	DeleteAttribute(attributeID uint) error
	ValueIDsExist(ids []uint) (bool, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AttributeRepository
}

// GormAttributeRepository is the GORM implementation.
type GormAttributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository creates an attribute repository.
func NewAttributeRepository(db *gorm.DB) *GormAttributeRepository {
	return &GormAttributeRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAttributeRepository) WithTx(tx *gorm.DB) AttributeRepository {
	if tx == nil {
		return r
	}
	return &GormAttributeRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormAttributeRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListGroups returns the full attribute tree with translations.
func (r *GormAttributeRepository) ListGroups() ([]models.AttributeGroup, error) {
	var groups []models.AttributeGroup
	if err := r.db.
		Preload("Translations").
		Preload("Attributes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("Attributes.Translations").
		Preload("Attributes.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("Attributes.Values.Translations").
		Order("position ASC, id ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroupByID loads one group with translations.
func (r *GormAttributeRepository) GetGroupByID(id uint) (*models.AttributeGroup, error) {
	var group models.AttributeGroup
	if err := r.db.Preload("Translations").First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// ListGroupAttributes returns a group's attributes with translations and
// values.
func (r *GormAttributeRepository) ListGroupAttributes(groupID uint) ([]models.Attribute, error) {
	var attributes []models.Attribute
	if err := r.db.
		Preload("Translations").
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("Values.Translations").
		Where("attribute_group_id = ?", groupID).
		Order("position ASC, id ASC").
		Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// GetAttribute loads one attribute, requiring group membership.
func (r *GormAttributeRepository) GetAttribute(groupID, attributeID uint) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := r.db.
		Preload("Translations").
		Preload("Values.Translations").
		Where("attribute_group_id = ?", groupID).
		First(&attribute, attributeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

// GetAttributeByID loads one attribute regardless of its group.
func (r *GormAttributeRepository) GetAttributeByID(id uint) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := r.db.
		Preload("Translations").
		Preload("Values.Translations").
		First(&attribute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

// ListAttributesByIDs loads attributes (values and translations included)
// preserving the requested set.
func (r *GormAttributeRepository) ListAttributesByIDs(ids []uint) ([]models.Attribute, error) {
	if len(ids) == 0 {
		return []models.Attribute{}, nil
	}
	var attributes []models.Attribute
	if err := r.db.
		Preload("Translations").
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("Values.Translations").
		Where("id IN ?", ids).
		Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// CreateAttribute inserts an attribute (translations included when set).
func (r *GormAttributeRepository) CreateAttribute(attribute *models.Attribute) error {
	return r.db.Create(attribute).Error
}

// SaveAttribute persists attribute column changes.
func (r *GormAttributeRepository) SaveAttribute(attribute *models.Attribute) error {
	return r.db.Omit("Translations", "Values", "Group").Save(attribute).Error
}

// UpsertTranslation overwrites the translation matching (attribute, locale)
// or inserts a new row. Unlisted locales are never touched.
func (r *GormAttributeRepository) UpsertTranslation(attributeID uint, locale, name string) error {
	var existing models.AttributeTranslation
	err := r.db.Where("attribute_id = ? AND locale = ?", attributeID, locale).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.AttributeTranslation{
			AttributeID: attributeID,
			Locale:      locale,
			Name:        name,
		}).Error
	}
	if err != nil {
		return err
	}
	existing.Name = name
	return r.db.Save(&existing).Error
}

// DeleteAttribute removes the attribute with its values and every
// dependent translation row, in referential order.
func (r *GormAttributeRepository) DeleteAttribute(attributeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		valueIDs := tx.Model(&models.AttributeValue{}).
			Select("id").
			Where("attribute_id = ?", attributeID)
		if err := tx.Where("attribute_value_id IN (?)", valueIDs).
			Delete(&models.AttributeValueTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attribute_id = ?", attributeID).
			Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attribute_id = ?", attributeID).
			Delete(&models.AttributeTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, attributeID).Error
	})
}

// ValueIDsExist reports whether every id references an attribute value.
func (r *GormAttributeRepository) ValueIDsExist(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	if err := r.db.Model(&models.AttributeValue{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return false, err
	}
	return count == int64(len(uniqueUints(ids))), nil
}

func uniqueUints(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
