package router

import (
	"fmt"
	"strings"

	"github.com/savdo-next/internal/cache"
	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/constants"
	adminhandlers "github.com/savdo-next/internal/http/handlers/admin"
	sellerhandlers "github.com/savdo-next/internal/http/handlers/seller"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all API routes mounted.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	sellerHandler := sellerhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "savdo"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		sellerGroup := apiV1.Group("/seller")
		{
			auth := sellerGroup.Group("/auth")
			{
				auth.POST("/register", sellerHandler.Register)
				auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), sellerHandler.Login)
			}

			authorized := sellerGroup.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RequireRole(constants.RoleSeller))
			{
				authorized.GET("/me", sellerHandler.Me)

				authorized.GET("/categories", sellerHandler.ListCategories)

				authorized.GET("/attribute-groups", sellerHandler.ListAttributeGroups)
				authorized.GET("/attribute-groups/:groupId/attributes", sellerHandler.ListGroupAttributes)
				authorized.POST("/attribute-groups/:groupId/attributes", sellerHandler.CreateAttribute)
				authorized.PUT("/attribute-groups/:groupId/attributes/:id", sellerHandler.UpdateAttribute)
				authorized.DELETE("/attribute-groups/:groupId/attributes/:id", sellerHandler.DeleteAttribute)
				authorized.POST("/attributes/combinations", sellerHandler.GenerateCombinations)

				authorized.GET("/products", sellerHandler.ListProducts)
				authorized.POST("/products", sellerHandler.CreateProduct)
				authorized.GET("/products/statistics", sellerHandler.ProductStatistics)
				authorized.GET("/products/:id", sellerHandler.GetProduct)
				authorized.PUT("/products/:id", sellerHandler.UpdateProduct)
				authorized.DELETE("/products/:id", sellerHandler.DeleteProduct)
				authorized.PUT("/products/:id/attributes", sellerHandler.ReplaceProductAttributes)

				authorized.PUT("/products/:id/variants/:variantId/stock", sellerHandler.UpdateStock)
				authorized.GET("/products/:id/stock", sellerHandler.GetStock)
				authorized.GET("/products/:id/stock/movements", sellerHandler.ListMovements)
				authorized.GET("/stock/low", sellerHandler.LowStock)
				authorized.GET("/stock/statistics", sellerHandler.StockStatistics)

				authorized.GET("/orders", sellerHandler.ListOrders)
				authorized.GET("/orders/statistics", sellerHandler.OrderStatistics)
				authorized.GET("/orders/:id", sellerHandler.GetOrder)
				authorized.PUT("/orders/:id/status", sellerHandler.UpdateOrderStatus)

				authorized.GET("/reviews", sellerHandler.ListReviews)
				authorized.GET("/reviews/statistics", sellerHandler.ReviewStatistics)
				authorized.GET("/reviews/:id", sellerHandler.GetReview)
				authorized.POST("/reviews/:id/reply", sellerHandler.ReplyReview)
				authorized.POST("/reviews/:id/report", sellerHandler.ReportReview)
			}
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RequireRole(constants.RoleAdmin))
			{
				authorized.GET("/sellers", adminHandler.ListSellers)
				authorized.GET("/sellers/:id", adminHandler.GetSeller)
				authorized.POST("/sellers/:id/approve", adminHandler.ApproveSeller)
				authorized.POST("/sellers/:id/reject", adminHandler.RejectSeller)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
