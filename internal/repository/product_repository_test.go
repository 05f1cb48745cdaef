package repository

import (
	"fmt"
	"testing"

	"github.com/savdo-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductTranslation{},
		&models.ProductVariant{},
		&models.ProductAttribute{},
		&models.Category{},
		&models.CategoryTranslation{},
	); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createCatalogProduct(t *testing.T, repo *GormProductRepository, sellerID uint, slug string, active bool, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:   sellerID,
		CategoryID: 1,
		Slug:       slug,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		Images:     models.StringArray{"main.jpg"},
		Active:     active,
		Translations: []models.ProductTranslation{
			{Locale: "uz", Name: name + " uz", Description: "tavsif"},
			{Locale: "ru", Name: name + " ru", Description: "описание"},
			{Locale: "en", Name: name, Description: "description"},
		},
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestSlugExistsHonorsExclusion(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 701, "lacquer-tray", true, "Lacquer Tray")

	exists, err := repo.SlugExists("lacquer-tray", nil)
	if err != nil {
		t.Fatalf("slug exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("taken slug must report exists")
	}

	exists, err = repo.SlugExists("lacquer-tray", &product.ID)
	if err != nil {
		t.Fatalf("slug exists failed: %v", err)
	}
	if exists {
		t.Fatalf("own slug must not count against the owner")
	}

	exists, err = repo.SlugExists("lacquer-tray-free", nil)
	if err != nil {
		t.Fatalf("slug exists failed: %v", err)
	}
	if exists {
		t.Fatalf("free slug must not report exists")
	}
}

func TestListFiltersBySellerStatusAndSearch(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	mine := createCatalogProduct(t, repo, 702, "list-filter-mine", true, "Juniper Shelf")
	createCatalogProduct(t, repo, 702, "list-filter-draft", false, "Draft Shelf")
	createCatalogProduct(t, repo, 703, "list-filter-theirs", true, "Foreign Shelf")

	products, total, err := repo.List(ProductListFilter{SellerID: 702, Status: "active", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != mine.ID {
		t.Fatalf("seller+active filter want only product %d got total=%d", mine.ID, total)
	}

	products, total, err = repo.List(ProductListFilter{SellerID: 702, Search: "Juniper", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || products[0].ID != mine.ID {
		t.Fatalf("translation search want product %d got total=%d", mine.ID, total)
	}
}

func TestGetByIDForSellerScopesOwnership(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 704, "ownership-scope", true, "Owned Shelf")

	loaded, err := repo.GetByIDForSeller(product.ID, 704)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if loaded == nil || loaded.ID != product.ID {
		t.Fatalf("owner must load the product")
	}
	if len(loaded.Translations) != 3 {
		t.Fatalf("translations must be preloaded, got %d", len(loaded.Translations))
	}

	loaded, err = repo.GetByIDForSeller(product.ID, 999)
	if err != nil {
		t.Fatalf("foreign get failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("foreign seller must see nothing")
	}
}

func TestReplaceAttributesSwapsTheFullSet(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 705, "attribute-swap", true, "Attributed Shelf")

	first := []models.ProductAttribute{
		{ProductID: product.ID, AttributeID: 1, ValueID: 11},
		{ProductID: product.ID, AttributeID: 2, ValueID: 21},
	}
	if err := repo.ReplaceAttributes(product.ID, first); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}

	second := []models.ProductAttribute{
		{ProductID: product.ID, AttributeID: 3, ValueID: 31},
	}
	if err := repo.ReplaceAttributes(product.ID, second); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}

	var rows []models.ProductAttribute
	if err := db.Where("product_id = ?", product.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load attribute rows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].AttributeID != 3 || rows[0].ValueID != 31 {
		t.Fatalf("replace must swap the full set, got %+v", rows)
	}

	if err := repo.ReplaceAttributes(product.ID, nil); err != nil {
		t.Fatalf("clearing replace failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.ProductAttribute{}).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attribute rows failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("empty replace must clear the set, got %d rows", count)
	}
}

func TestListPaginates(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	for i := 0; i < 5; i++ {
		createCatalogProduct(t, repo, 706, fmt.Sprintf("paginate-%d", i), true, fmt.Sprintf("Paginated %d", i))
	}

	page1, total, err := repo.List(ProductListFilter{SellerID: 706, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if total != 5 || len(page1) != 2 {
		t.Fatalf("page 1 want total=5 len=2 got total=%d len=%d", total, len(page1))
	}

	page3, _, err := repo.List(ProductListFilter{SellerID: 706, Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("page 3 failed: %v", err)
	}
	if len(page3) != 1 {
		t.Fatalf("page 3 want 1 row got %d", len(page3))
	}
}
