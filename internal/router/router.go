// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/config"
	"github.com/spareshub/spareshub-backend/internal/handlers"
	"github.com/spareshub/spareshub-backend/internal/middleware"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	vendorService := services.NewVendorService(db, notificationService)
	productService := services.NewProductService(db)
	catalogService := services.NewCatalogService(db)
	garageService := services.NewGarageService(db)
	addressService := services.NewAddressService(db)
	cartService := services.NewCartService(db, catalogService)
	adminService := services.NewAdminService(db, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	vendorHandler := handlers.NewVendorHandler(vendorService, storageService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	garageHandler := handlers.NewGarageHandler(garageService)
	addressHandler := handlers.NewAddressHandler(addressService)
	cartHandler := handlers.NewCartHandler(cartService)
	adminHandler := handlers.NewAdminHandler(adminService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/vendor-login", authHandler.VendorLogin)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Customer profile routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
			users.PUT("/me/password", userHandler.ChangePassword)
		}

		// Vendor routes
		vendors := v1.Group("/vendors")
		{
			vendors.POST("/register", middleware.AuthRateLimit(), vendorHandler.Register)
			vendors.POST("/documents", middleware.UploadRateLimit(), vendorHandler.UploadDocument)

			// Authenticated vendor routes
			protected := vendors.Group("")
			protected.Use(middleware.AuthRequired(), middleware.VendorRequired())
			{
				protected.GET("/me", vendorHandler.GetProfile)
				protected.PUT("/me", vendorHandler.UpdateProfile)
				protected.GET("/me/dashboard", vendorHandler.GetDashboard)
			}
		}

		// Listing lifecycle routes (vendor only)
		products := v1.Group("/products")
		products.Use(middleware.AuthRequired(), middleware.VendorRequired())
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/submit", productHandler.SubmitForReview)
			products.POST("/:id/unpublish", productHandler.Unpublish)
			products.POST("/:id/archive", productHandler.Archive)
			products.POST("/images", middleware.UploadRateLimit(), productHandler.UploadImage)
		}

		// Public storefront routes
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/products", middleware.OptionalAuth(), catalogHandler.Search)
			catalog.GET("/products/:id", middleware.OptionalAuth(), catalogHandler.GetProduct)
			catalog.GET("/categories", catalogHandler.ListCategories)
			catalog.GET("/brands", catalogHandler.ListBrands)
		}

		// Garage routes (customer only)
		garage := v1.Group("/garage")
		garage.Use(middleware.AuthRequired())
		{
			garage.POST("/vehicles", garageHandler.AddVehicle)
			garage.GET("/vehicles", garageHandler.ListVehicles)
			garage.PUT("/vehicles/:id", garageHandler.UpdateVehicle)
			garage.DELETE("/vehicles/:id", garageHandler.DeleteVehicle)
		}

		// Address routes
		addresses := v1.Group("/addresses")
		addresses.Use(middleware.AuthRequired())
		{
			addresses.POST("", addressHandler.AddAddress)
			addresses.GET("", addressHandler.ListAddresses)
			addresses.PUT("/:id", addressHandler.UpdateAddress)
			addresses.DELETE("/:id", addressHandler.DeleteAddress)
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)

			adminVendors := admin.Group("/vendors")
			{
				adminVendors.GET("", adminHandler.GetVendors)
				adminVendors.GET("/:id", adminHandler.GetVendorDetail)
				adminVendors.GET("/:id/documents", adminHandler.GetVendorDocuments)
				adminVendors.POST("/:id/approve", adminHandler.ApproveVendor)
				adminVendors.POST("/:id/reject", adminHandler.RejectVendor)
				adminVendors.POST("/:id/suspend", adminHandler.SuspendVendor)
				adminVendors.POST("/:id/unsuspend", adminHandler.UnsuspendVendor)
				adminVendors.DELETE("/:id", adminHandler.DeleteVendor)
			}

			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("", adminHandler.GetProducts)
				adminProducts.GET("/queue", adminHandler.GetReviewQueue)
				adminProducts.POST("/:id/approve", adminHandler.ApproveProduct)
				adminProducts.POST("/:id/reject", adminHandler.RejectProduct)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", adminHandler.GetUsers)
				adminUsers.PUT("/:id/status", adminHandler.SetUserStatus)
			}

			admin.GET("/logs", adminHandler.GetAccountLogs)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
