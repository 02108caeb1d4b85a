// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/config"
	"github.com/projectgichatbot-max/gitag-backend/internal/handlers"
	"github.com/projectgichatbot-max/gitag-backend/internal/middleware"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/services"
)

// Initialize wires services and handlers onto a gin engine. Every handler
// resolves its store through the provider, so the engine works identically
// whichever backend selection picked.
func Initialize(provider *repository.Provider, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(provider, logger)
	artisanService := services.NewArtisanService(provider, logger)
	searchService := services.NewSearchService(provider, logger)
	newsletterService := services.NewNewsletterService(provider, logger)
	inquiryService := services.NewInquiryService(provider, logger)
	chatService := services.NewChatService(searchService, logger)
	storageService := services.NewStorageService(cfg, logger)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	artisanHandler := handlers.NewArtisanHandler(artisanService)
	searchHandler := handlers.NewSearchHandler(searchService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	chatHandler := handlers.NewChatHandler(chatService)
	uploadHandler := handlers.NewUploadHandler(storageService, cfg.Upload.MaxSizeMB)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	adminOnly := middleware.AdminRequired(cfg.Admin.JWTSecret)

	// Health check reports which backend is serving traffic.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"backend": provider.Active(),
		})
	})

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", productHandler.ListReviews)
			products.POST("/:id/reviews", productHandler.AddReview)

			protected := products.Group("")
			protected.Use(adminOnly)
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		artisans := v1.Group("/artisans")
		{
			artisans.GET("", artisanHandler.ListArtisans)
			artisans.GET("/:id", artisanHandler.GetArtisan)

			protected := artisans.Group("")
			protected.Use(adminOnly)
			{
				protected.POST("", artisanHandler.CreateArtisan)
				protected.PUT("/:id", artisanHandler.UpdateArtisan)
				protected.DELETE("/:id", artisanHandler.DeleteArtisan)
			}
		}

		v1.GET("/search", searchHandler.Search)

		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("/subscribe", newsletterHandler.Subscribe)
			newsletter.POST("/unsubscribe", newsletterHandler.Unsubscribe)
			newsletter.GET("/subscribers", adminOnly, newsletterHandler.ListSubscribers)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("", inquiryHandler.CreateInquiry)
			inquiries.GET("", adminOnly, inquiryHandler.ListInquiries)
			inquiries.PUT("/:id/status", adminOnly, inquiryHandler.UpdateStatus)
		}

		v1.POST("/chat", middleware.ChatRateLimit(), chatHandler.Chat)
		v1.POST("/upload", adminOnly, middleware.UploadRateLimit(), uploadHandler.Upload)
	}

	return r
}
