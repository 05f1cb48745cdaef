package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func newTestAttributeService(db *gorm.DB) *AttributeService {
	return NewAttributeService(repository.NewAttributeRepository(db))
}

func seedAttributeGroup(t *testing.T, db *gorm.DB, name string) *models.AttributeGroup {
	t.Helper()
	group := &models.AttributeGroup{Name: name}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	return group
}

func attrTranslations(name string) []AttributeTranslationInput {
	return []AttributeTranslationInput{
		{Locale: "uz", Name: name + " uz"},
		{Locale: "ru", Name: name + " ru"},
		{Locale: "en", Name: name},
	}
}

func TestCreateAttributeWithValues(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Fabric")

	attribute, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "material",
		Type:         constants.AttributeTypeSelect,
		IsFilterable: true,
		Translations: attrTranslations("Material"),
		Values: []AttributeValueInput{
			{Value: "cotton", Position: 1, Translations: attrTranslations("Cotton")},
			{Value: "linen", Position: 2, Translations: attrTranslations("Linen")},
		},
	})
	if err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}
	if attribute.GroupID != group.ID {
		t.Fatalf("attribute group want %d got %d", group.ID, attribute.GroupID)
	}
	if len(attribute.Translations) != 3 {
		t.Fatalf("translations want 3 got %d", len(attribute.Translations))
	}
	if len(attribute.Values) != 2 {
		t.Fatalf("values want 2 got %d", len(attribute.Values))
	}
	for _, v := range attribute.Values {
		if len(v.Translations) != 3 {
			t.Fatalf("value %q translations want 3 got %d", v.Value, len(v.Translations))
		}
	}
}

func TestCreateAttributeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Weight")

	if _, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID: group.ID,
		Name:    "grams",
		Type:    constants.AttributeTypeNumber,
	}); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("no translations want ErrMissingTranslation got %v", err)
	}

	if _, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "grams",
		Type:         "hologram",
		Translations: attrTranslations("Grams"),
	}); !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("unknown type want ErrInvalidAttribute got %v", err)
	}

	if _, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID + 10000,
		Name:         "grams",
		Type:         constants.AttributeTypeNumber,
		Translations: attrTranslations("Grams"),
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing group want ErrNotFound got %v", err)
	}
}

func TestUpdateAttributeUpsertsListedLocales(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Finish")

	attribute, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "coating",
		Type:         constants.AttributeTypeText,
		Translations: attrTranslations("Coating"),
	})
	if err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}

	newName := "surface"
	required := true
	updated, err := svc.UpdateAttribute(group.ID, attribute.ID, UpdateAttributeInput{
		Name:       &newName,
		IsRequired: &required,
		Translations: []AttributeTranslationInput{
			{Locale: "en", Name: "Surface"},
		},
	})
	if err != nil {
		t.Fatalf("update attribute failed: %v", err)
	}
	if updated.Name != "surface" || !updated.IsRequired {
		t.Fatalf("columns not patched: name=%q required=%v", updated.Name, updated.IsRequired)
	}
	if updated.Type != constants.AttributeTypeText {
		t.Fatalf("nil type pointer must leave type alone, got %s", updated.Type)
	}

	byLocale := map[string]string{}
	for _, tr := range updated.Translations {
		byLocale[tr.Locale] = tr.Name
	}
	if byLocale["en"] != "Surface" {
		t.Fatalf("en translation want upserted got %q", byLocale["en"])
	}
	if byLocale["uz"] != "Coating uz" || byLocale["ru"] != "Coating ru" {
		t.Fatalf("unlisted locales must survive, got %v", byLocale)
	}
}

func TestUpdateAttributeBlankTranslationWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Texture")

	attribute, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "grain",
		Type:         constants.AttributeTypeText,
		Translations: attrTranslations("Grain"),
	})
	if err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}

	newName := "renamed-grain"
	if _, err := svc.UpdateAttribute(group.ID, attribute.ID, UpdateAttributeInput{
		Name: &newName,
		Translations: []AttributeTranslationInput{
			{Locale: "en", Name: "Wood Grain"},
			{Locale: "ru", Name: "   "},
		},
	}); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("blank translation want ErrMissingTranslation got %v", err)
	}

	var stored models.Attribute
	if err := db.First(&stored, attribute.ID).Error; err != nil {
		t.Fatalf("load attribute failed: %v", err)
	}
	if stored.Name != "grain" {
		t.Fatalf("rejected update must not rename the attribute, got %q", stored.Name)
	}

	var en models.AttributeTranslation
	if err := db.Where("attribute_id = ? AND locale = ?", attribute.ID, "en").First(&en).Error; err != nil {
		t.Fatalf("load en translation failed: %v", err)
	}
	if en.Name != "Grain" {
		t.Fatalf("rejected update must not touch translations, got %q", en.Name)
	}
}

func TestDeleteAttributeRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Shape")

	attribute, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "profile",
		Type:         constants.AttributeTypeSelect,
		Translations: attrTranslations("Profile"),
		Values: []AttributeValueInput{
			{Value: "round", Translations: attrTranslations("Round")},
		},
	})
	if err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}

	if err := svc.DeleteAttribute(group.ID, attribute.ID); err != nil {
		t.Fatalf("delete attribute failed: %v", err)
	}
	if err := svc.DeleteAttribute(group.ID, attribute.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}

	var valueCount, translationCount int64
	if err := db.Model(&models.AttributeValue{}).Where("attribute_id = ?", attribute.ID).Count(&valueCount).Error; err != nil {
		t.Fatalf("count values failed: %v", err)
	}
	if err := db.Model(&models.AttributeTranslation{}).Where("attribute_id = ?", attribute.ID).Count(&translationCount).Error; err != nil {
		t.Fatalf("count translations failed: %v", err)
	}
	if valueCount != 0 || translationCount != 0 {
		t.Fatalf("dependents must be removed: values=%d translations=%d", valueCount, translationCount)
	}
}

func TestGenerateCombinationsFollowsRequestOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAttributeService(db)
	group := seedAttributeGroup(t, db, "Variants")

	color, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "color",
		Type:         constants.AttributeTypeSelect,
		Translations: attrTranslations("Color"),
		Values: []AttributeValueInput{
			{Value: "black", Position: 1, Translations: attrTranslations("Black")},
			{Value: "white", Position: 2, Translations: attrTranslations("White")},
		},
	})
	if err != nil {
		t.Fatalf("create color failed: %v", err)
	}
	size, err := svc.CreateAttribute(CreateAttributeInput{
		GroupID:      group.ID,
		Name:         "size",
		Type:         constants.AttributeTypeSelect,
		Translations: attrTranslations("Size"),
		Values: []AttributeValueInput{
			{Value: "s", Position: 1, Translations: attrTranslations("Small")},
			{Value: "m", Position: 2, Translations: attrTranslations("Medium")},
			{Value: "l", Position: 3, Translations: attrTranslations("Large")},
		},
	})
	if err != nil {
		t.Fatalf("create size failed: %v", err)
	}

	combos, err := svc.GenerateCombinations([]uint{size.ID, color.ID})
	if err != nil {
		t.Fatalf("generate combinations failed: %v", err)
	}
	if len(combos) != 6 {
		t.Fatalf("combination count want 6 got %d", len(combos))
	}
	// Request order puts size first in every tuple.
	if combos[0][0] != size.Values[0].ID || combos[0][1] != color.Values[0].ID {
		t.Fatalf("first tuple want [size[0] color[0]] got %v", combos[0])
	}
	// Last position varies fastest.
	if combos[1][0] != size.Values[0].ID || combos[1][1] != color.Values[1].ID {
		t.Fatalf("second tuple want [size[0] color[1]] got %v", combos[1])
	}

	if _, err := svc.GenerateCombinations([]uint{color.ID, 99999}); !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("unknown attribute want ErrInvalidAttribute got %v", err)
	}

	empty, err := svc.GenerateCombinations(nil)
	if err != nil {
		t.Fatalf("empty input failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty input want no tuples got %d", len(empty))
	}
}
