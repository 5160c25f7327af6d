// internal/interfaces/http/routes/routes.go
package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/domain/cashback"
	"github.com/your-org/catering-backend/internal/domain/checkout"
	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/domain/menu"
	"github.com/your-org/catering-backend/internal/domain/schedule"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/interfaces/http/handlers"
	"github.com/your-org/catering-backend/internal/interfaces/http/middleware"
	"github.com/your-org/catering-backend/internal/pkg/auth"
	"github.com/your-org/catering-backend/internal/pkg/email"
)

// SetupRoutes wires all API routes onto the router group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	logger := newLogger(cfg)

	// Shared services
	crmClient := crm.NewClient(cfg, logger)
	emailService := email.NewEmailService(cfg)
	otpManager := auth.NewOTPManager(redisClient, cfg)
	cartService := cart.NewService(redisClient, cfg)
	cashbackService := cashback.NewService(cashback.NewGormStore(db), crmClient, cfg, logger)
	contactService := contact.NewService(crmClient, otpManager, emailService, redisClient, cfg, logger)
	menuService := menu.NewService(db, redisClient, cfg)
	checkoutService := checkout.NewService(cartService, cashbackService, contactService, crmClient, emailService, cfg, logger)
	scheduleService := schedule.NewService(cartService, redisClient, cfg, logger)

	setupAuthRoutes(rg, contactService, cfg)
	setupMenuRoutes(rg, menuService, cartService, cfg)
	setupCartRoutes(rg, cartService, cashbackService, cfg)
	setupAccountRoutes(rg, contactService, cashbackService, cfg)
	setupOrderRoutes(rg, crmClient, cartService, contactService, checkoutService, scheduleService, redisClient, cfg)
}

// setupAuthRoutes sets up OTP login routes
func setupAuthRoutes(rg *gin.RouterGroup, contactService *contact.Service, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(contactService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/request-otp", authHandler.RequestOTP)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/refresh", authHandler.RefreshToken)
	}
}

// setupMenuRoutes sets up menu browsing and recommendation routes
func setupMenuRoutes(rg *gin.RouterGroup, menuService *menu.Service, cartService *cart.Service, cfg *config.Config) {
	menuHandler := handlers.NewMenuHandler(menuService)
	recommendationHandler := handlers.NewRecommendationHandler(cartService)

	menuGroup := rg.Group("/menu")
	{
		menuGroup.GET("/categories", menuHandler.ListCategories)
		menuGroup.GET("/categories/:id/items", menuHandler.ListCategoryItems)
		menuGroup.GET("/items/:id", menuHandler.GetItem)
	}

	recommendations := rg.Group("/recommendations")
	{
		recommendations.GET("", recommendationHandler.GetRecommendation)
		recommendations.POST("/populate-cart", recommendationHandler.PopulateCart)
	}
}

// setupCartRoutes sets up cart routes; guests get session carts via cookie
func setupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, cashbackService *cashback.Service, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartService, cashbackService)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// setupAccountRoutes sets up profile, delivery details, and cashback routes
func setupAccountRoutes(rg *gin.RouterGroup, contactService *contact.Service, cashbackService *cashback.Service, cfg *config.Config) {
	profileHandler := handlers.NewProfileHandler(contactService)
	cashbackHandler := handlers.NewCashbackHandler(cashbackService)

	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware(cfg))
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
		profile.GET("/delivery-details", profileHandler.GetDeliveryDetails)
		profile.PUT("/delivery-details", profileHandler.SaveDeliveryDetails)
	}

	cashbackGroup := rg.Group("/cashback")
	cashbackGroup.Use(middleware.AuthMiddleware(cfg))
	{
		cashbackGroup.GET("/balance", cashbackHandler.GetBalance)
		cashbackGroup.GET("/history", cashbackHandler.GetHistory)
	}
}

// setupOrderRoutes sets up order history, reorder, checkout, and schedules
func setupOrderRoutes(rg *gin.RouterGroup, crmClient *crm.Client, cartService *cart.Service,
	contactService *contact.Service, checkoutService *checkout.Service,
	scheduleService *schedule.Service, redisClient *redis.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(crmClient, cartService, contactService, redisClient)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("/:id/reorder", orderHandler.Reorder)
	}

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.AuthMiddleware(cfg))
	{
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}

	schedules := rg.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware(cfg))
	{
		schedules.POST("", scheduleHandler.Create)
		schedules.GET("", scheduleHandler.List)
		schedules.DELETE("/:id", scheduleHandler.Cancel)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
