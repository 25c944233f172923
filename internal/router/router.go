package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DRTX2/products-api/internal/config"
	"github.com/DRTX2/products-api/internal/handler"
	"github.com/DRTX2/products-api/internal/middleware"
	"github.com/DRTX2/products-api/internal/repository"
	"github.com/DRTX2/products-api/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	// ── Repositories ─────────────────────────────────────────────────────────
	currencyRepo := repository.NewCurrencyRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceRepo := repository.NewProductPriceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, priceRepo, currencyRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	products := r.Group("/products")
	{
		products.GET("", productsH.List)
		products.POST("", productsH.Create)
		products.GET("/:id", productsH.Show)
		products.PUT("/:id", productsH.Update)
		products.DELETE("/:id", productsH.Delete)
		products.GET("/:id/prices", productsH.ListPrices)
		products.POST("/:id/prices", productsH.CreatePrice)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
