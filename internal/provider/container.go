package provider

import (
	"github.com/savdo-next/internal/cache"
	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
	"github.com/savdo-next/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo      repository.UserRepository
	CategoryRepo  repository.CategoryRepository
	AttributeRepo repository.AttributeRepository
	ProductRepo   repository.ProductRepository
	VariantRepo   repository.VariantRepository
	MovementRepo  repository.StockMovementRepository
	OrderRepo     repository.OrderRepository
	ReviewRepo    repository.ReviewRepository

	// Services
	AuthService      *service.AuthService
	CategoryService  *service.CategoryService
	AttributeService *service.AttributeService
	ProductService   *service.ProductService
	StockService     *service.StockService
	OrderService     *service.OrderService
	ReviewService    *service.ReviewService
	UserAdminService *service.UserAdminService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.AttributeRepo = repository.NewAttributeRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.MovementRepo = repository.NewStockMovementRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.AttributeService = service.NewAttributeService(c.AttributeRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.VariantRepo, c.AttributeRepo)
	c.StockService = service.NewStockService(c.Config, c.ProductRepo, c.VariantRepo, c.MovementRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
}
