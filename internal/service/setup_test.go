package service

import (
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserTranslation{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.AttributeGroup{},
		&models.AttributeGroupTranslation{},
		&models.Attribute{},
		&models.AttributeTranslation{},
		&models.AttributeValue{},
		&models.AttributeValueTranslation{},
		&models.Product{},
		&models.ProductTranslation{},
		&models.ProductVariant{},
		&models.ProductAttribute{},
		&models.StockMovement{},
		&models.StockMovementTranslation{},
		&models.Order{},
		&models.OrderItem{},
		&models.ProductReview{},
		&models.ProductReviewTranslation{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newTestProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
		repository.NewAttributeRepository(db),
	)
}

// productTranslations fills every configured locale so validation passes.
func productTranslations(name string) map[string]ProductTranslationInput {
	return map[string]ProductTranslationInput{
		"uz": {Name: name + " (uz)", Description: "tavsif"},
		"ru": {Name: name + " (ru)", Description: "описание"},
		"en": {Name: name, Description: "description"},
	}
}
