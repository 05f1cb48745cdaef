package main

import (
	"log"

	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with a working data set: an admin, two
// sellers, a customer, categories, an attribute tree, products with
// variants, orders and reviews. Safe to re-run; existing rows are kept.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	seedUser(stdLog, "admin@savdo.local", "Admin#12345", constants.RoleAdmin, constants.UserStatusActive, "Savdo", nil)
	seller := seedUser(stdLog, "seller@savdo.local", "Seller#12345", constants.RoleSeller, constants.UserStatusActive, "Chinor Market", []models.UserTranslation{
		{Locale: "uz", FirstName: "Aziz", LastName: "Karimov", CompanyDescription: "Elektronika va aksessuarlar do'koni"},
		{Locale: "ru", FirstName: "Азиз", LastName: "Каримов", CompanyDescription: "Магазин электроники и аксессуаров"},
		{Locale: "en", FirstName: "Aziz", LastName: "Karimov", CompanyDescription: "Electronics and accessories store"},
	})
	seedUser(stdLog, "pending-seller@savdo.local", "Seller#12345", constants.RoleSeller, constants.UserStatusPending, "Yangi Bozor", []models.UserTranslation{
		{Locale: "uz", FirstName: "Dilnoza", LastName: "Rahimova"},
		{Locale: "ru", FirstName: "Дильноза", LastName: "Рахимова"},
		{Locale: "en", FirstName: "Dilnoza", LastName: "Rahimova"},
	})
	customer := seedUser(stdLog, "customer@savdo.local", "Customer#12345", constants.RoleCustomer, constants.UserStatusActive, "", nil)

	electronics := seedCategory(stdLog, "electronics", "Electronics", 1, map[string]string{
		"uz": "Elektronika", "ru": "Электроника", "en": "Electronics",
	})
	seedCategory(stdLog, "clothing", "Clothing", 2, map[string]string{
		"uz": "Kiyim", "ru": "Одежда", "en": "Clothing",
	})

	group := seedAttributeGroup(stdLog, "Appearance", 1, map[string]string{
		"uz": "Tashqi ko'rinish", "ru": "Внешний вид", "en": "Appearance",
	})
	color := seedAttribute(stdLog, group.ID, "Color", constants.AttributeTypeSelect, 1, map[string]string{
		"uz": "Rang", "ru": "Цвет", "en": "Color",
	}, []seedValue{
		{value: "red", position: 1, labels: map[string]string{"uz": "Qizil", "ru": "Красный", "en": "Red"}},
		{value: "blue", position: 2, labels: map[string]string{"uz": "Ko'k", "ru": "Синий", "en": "Blue"}},
	})
	size := seedAttribute(stdLog, group.ID, "Size", constants.AttributeTypeSelect, 2, map[string]string{
		"uz": "O'lcham", "ru": "Размер", "en": "Size",
	}, []seedValue{
		{value: "m", position: 1, labels: map[string]string{"uz": "M", "ru": "M", "en": "M"}},
		{value: "l", position: 2, labels: map[string]string{"uz": "L", "ru": "L", "en": "L"}},
	})

	product := seedProduct(stdLog, seller.ID, electronics.ID, "wireless-earphones",
		decimal.NewFromFloat(249000), map[string][2]string{
			"uz": {"Simsiz quloqchinlar", "Yuqori sifatli ovoz, uzoq ishlash vaqti"},
			"ru": {"Беспроводные наушники", "Качественный звук, долгая работа от батареи"},
			"en": {"Wireless Earphones", "High quality sound and long battery life"},
		})

	if product != nil && color != nil && size != nil && len(color.Values) > 0 && len(size.Values) > 0 {
		seedVariant(stdLog, product.ID, "WIRELESS-EARPHONES-AB12",
			decimal.NewFromFloat(249000), 20, []uint{color.Values[0].ID, size.Values[0].ID})
		seedVariant(stdLog, product.ID, "WIRELESS-EARPHONES-CD34",
			decimal.NewFromFloat(259000), 3, []uint{color.Values[1].ID, size.Values[1].ID})
	}

	if product != nil && customer != nil {
		seedOrder(stdLog, customer.ID, product)
		seedReview(stdLog, product.ID, customer.ID)
	}

	stdLog.Printf("seed finished")
}

func seedUser(stdLog *log.Logger, email, password, role, status, companyName string, translations []models.UserTranslation) *models.User {
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		stdLog.Printf("user already exists: %s", email)
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("failed to hash password for %s: %v", email, err)
		return nil
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CompanyName:  companyName,
		Translations: translations,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("failed to create user %s: %v", email, err)
		return nil
	}
	stdLog.Printf("created user: %s (%s)", email, role)
	return &user
}

func seedCategory(stdLog *log.Logger, slug, name string, position int, names map[string]string) *models.Category {
	var existing models.Category
	if err := models.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		stdLog.Printf("category already exists: %s", slug)
		return &existing
	}

	category := models.Category{Slug: slug, Name: name, Position: position}
	for locale, localized := range names {
		category.Translations = append(category.Translations, models.CategoryTranslation{
			Locale: locale,
			Name:   localized,
		})
	}
	if err := models.DB.Create(&category).Error; err != nil {
		stdLog.Printf("failed to create category %s: %v", slug, err)
		return nil
	}
	stdLog.Printf("created category: %s", slug)
	return &category
}

func seedAttributeGroup(stdLog *log.Logger, name string, position int, names map[string]string) *models.AttributeGroup {
	var existing models.AttributeGroup
	if err := models.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		stdLog.Printf("attribute group already exists: %s", name)
		return &existing
	}

	group := models.AttributeGroup{Name: name, Position: position}
	for locale, localized := range names {
		group.Translations = append(group.Translations, models.AttributeGroupTranslation{
			Locale: locale,
			Name:   localized,
		})
	}
	if err := models.DB.Create(&group).Error; err != nil {
		stdLog.Printf("failed to create attribute group %s: %v", name, err)
		return nil
	}
	stdLog.Printf("created attribute group: %s", name)
	return &group
}

type seedValue struct {
	value    string
	position int
	labels   map[string]string
}

func seedAttribute(stdLog *log.Logger, groupID uint, name, attrType string, position int, names map[string]string, values []seedValue) *models.Attribute {
	var existing models.Attribute
	if err := models.DB.Preload("Values").
		Where("attribute_group_id = ? AND name = ?", groupID, name).
		First(&existing).Error; err == nil {
		stdLog.Printf("attribute already exists: %s", name)
		return &existing
	}

	attribute := models.Attribute{
		GroupID:  groupID,
		Name:     name,
		Type:     attrType,
		Position: position,
	}
	for locale, localized := range names {
		attribute.Translations = append(attribute.Translations, models.AttributeTranslation{
			Locale: locale,
			Name:   localized,
		})
	}
	for _, v := range values {
		value := models.AttributeValue{Value: v.value, Position: v.position}
		for locale, label := range v.labels {
			value.Translations = append(value.Translations, models.AttributeValueTranslation{
				Locale: locale,
				Value:  label,
			})
		}
		attribute.Values = append(attribute.Values, value)
	}
	if err := models.DB.Create(&attribute).Error; err != nil {
		stdLog.Printf("failed to create attribute %s: %v", name, err)
		return nil
	}
	stdLog.Printf("created attribute: %s", name)
	return &attribute
}

func seedProduct(stdLog *log.Logger, sellerID, categoryID uint, slug string, price decimal.Decimal, texts map[string][2]string) *models.Product {
	var existing models.Product
	if err := models.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		stdLog.Printf("product already exists: %s", slug)
		return &existing
	}

	product := models.Product{
		SellerID:   sellerID,
		CategoryID: categoryID,
		Slug:       slug,
		Price:      models.NewMoneyFromDecimal(price),
		Images:     models.StringArray{"https://images.savdo.local/" + slug + ".jpg"},
		Active:     true,
	}
	for locale, pair := range texts {
		product.Translations = append(product.Translations, models.ProductTranslation{
			Locale:      locale,
			Name:        pair[0],
			Description: pair[1],
		})
	}
	if err := models.DB.Create(&product).Error; err != nil {
		stdLog.Printf("failed to create product %s: %v", slug, err)
		return nil
	}
	stdLog.Printf("created product: %s", slug)
	return &product
}

func seedVariant(stdLog *log.Logger, productID uint, sku string, price decimal.Decimal, stock int, valueIDs []uint) {
	var existing models.ProductVariant
	if err := models.DB.Where("sku = ?", sku).First(&existing).Error; err == nil {
		stdLog.Printf("variant already exists: %s", sku)
		return
	}

	variant := models.ProductVariant{
		ProductID:       productID,
		SKU:             sku,
		Price:           models.NewMoneyFromDecimal(price),
		Stock:           stock,
		AttributeValues: models.UintList(valueIDs),
		Active:          true,
	}
	if err := models.DB.Create(&variant).Error; err != nil {
		stdLog.Printf("failed to create variant %s: %v", sku, err)
		return
	}
	stdLog.Printf("created variant: %s", sku)
}

func seedOrder(stdLog *log.Logger, customerID uint, product *models.Product) {
	var count int64
	models.DB.Model(&models.Order{}).Where("user_id = ?", customerID).Count(&count)
	if count > 0 {
		stdLog.Printf("orders already exist for customer %d", customerID)
		return
	}

	order := models.Order{
		UserID:      customerID,
		Status:      constants.OrderStatusPending,
		TotalAmount: product.Price,
		Items: []models.OrderItem{
			{
				ProductID: product.ID,
				Price:     product.Price,
				Quantity:  1,
				Status:    constants.OrderStatusPending,
			},
		},
	}
	if err := models.DB.Create(&order).Error; err != nil {
		stdLog.Printf("failed to create order: %v", err)
		return
	}
	stdLog.Printf("created order %d", order.ID)
}

func seedReview(stdLog *log.Logger, productID, customerID uint) {
	var count int64
	models.DB.Model(&models.ProductReview{}).
		Where("product_id = ? AND user_id = ?", productID, customerID).
		Count(&count)
	if count > 0 {
		stdLog.Printf("review already exists for product %d", productID)
		return
	}

	review := models.ProductReview{
		ProductID: productID,
		UserID:    customerID,
		Rating:    5,
		Comment:   "Great sound quality, fast delivery.",
	}
	if err := models.DB.Create(&review).Error; err != nil {
		stdLog.Printf("failed to create review: %v", err)
		return
	}
	stdLog.Printf("created review %d", review.ID)
}
