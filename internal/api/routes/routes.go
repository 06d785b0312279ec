package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/api/handlers"
	"github.com/localmart/community-backend/internal/api/middleware"
	"github.com/localmart/community-backend/internal/config"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, cfg.JWTSecret, emailService, cfg.BaseURL)
	listingService := services.NewListingService(db)
	directoryService := services.NewDirectoryService(db)
	forumService := services.NewForumService(db)
	messageService := services.NewMessageService(db)
	eventService := services.NewEventService(db)
	subscriptionService := services.NewSubscriptionService(db)
	adService := services.NewAdService(db)
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket, cfg.AWSAccessKey, cfg.AWSSecretKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	passwordHandler := handlers.NewPasswordHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService, adService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, authService)
	forumHandler := handlers.NewForumHandler(forumService)
	messageHandler := handlers.NewMessageHandler(messageService)
	eventHandler := handlers.NewEventHandler(eventService, cfg.BaseURL)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	adHandler := handlers.NewAdHandler(adService, s3Service)

	requireAuth := middleware.AuthMiddleware(cfg)
	requireAdmin := middleware.RequireRole(authService, "admin")

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api/v1")

	// Homepage: recent listings plus the rotating ad slot
	api.GET("/home", listingHandler.GetHomepage)

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", requireAuth, authHandler.Logout)
		auth.POST("/refresh-token", authHandler.RefreshToken)
		auth.GET("/profile", requireAuth, authHandler.GetProfile)
		auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
	}

	// Password reset routes
	password := api.Group("/password")
	{
		password.POST("/forgot", passwordHandler.ForgotPassword)
		password.POST("/reset", passwordHandler.ResetPassword)
		password.POST("/change", requireAuth, passwordHandler.ChangePassword)
	}

	// Listings
	listings := api.Group("/listings")
	{
		listings.GET("/", listingHandler.GetAllListings)
		listings.GET("/categories", listingHandler.GetCategories)
		listings.GET("/mine", requireAuth, listingHandler.GetMyListings)
		listings.GET("/:listing_id", listingHandler.GetListing)
		listings.POST("/", requireAuth, listingHandler.CreateListing)
	}

	// Business directory and reviews
	directory := api.Group("/directory")
	{
		directory.GET("/businesses", directoryHandler.GetBusinesses)
		directory.GET("/businesses/:business_id", directoryHandler.GetBusiness)
		directory.POST("/businesses", requireAuth, directoryHandler.CreateBusiness)
		directory.POST("/businesses/:business_id/reviews", requireAuth, directoryHandler.CreateBusinessReview)
	}

	// Seller profiles and seller reviews
	users := api.Group("/users")
	{
		users.GET("/:username", directoryHandler.GetSellerProfile)
		users.POST("/:username/reviews", requireAuth, directoryHandler.CreateSellerReview)
	}

	// Forum
	forum := api.Group("/forum")
	{
		forum.GET("/categories", forumHandler.GetCategories)
		forum.GET("/categories/:category_id/posts", forumHandler.GetCategoryPosts)
		forum.GET("/posts/:post_id", forumHandler.GetPost)
		forum.POST("/categories/:category_id/posts", requireAuth, forumHandler.CreatePost)
		forum.POST("/posts/:post_id/comments", requireAuth, forumHandler.CreateComment)
	}

	// Messaging
	messages := api.Group("/messages", requireAuth)
	{
		messages.GET("/", messageHandler.GetConversations)
		messages.GET("/:listing_id/:recipient_id", messageHandler.GetConversation)
		messages.POST("/:listing_id/:recipient_id", messageHandler.SendMessage)
	}

	// Events
	events := api.Group("/events")
	{
		events.GET("/", eventHandler.GetEvents)
		events.GET("/feed", eventHandler.GetCalendarFeed)
		events.GET("/:event_id", eventHandler.GetEvent)
		events.POST("/", requireAuth, eventHandler.CreateEvent)
	}

	// Subscriptions
	subscriptions := api.Group("/subscriptions", requireAuth)
	{
		subscriptions.POST("/purchase/:plan_type", subscriptionHandler.Purchase)
	}

	// Public ad slot
	api.GET("/ads/random", adHandler.GetRandomAd)

	// Admin ad management, gated by the centralized role check
	ads := api.Group("/admin/ads", requireAuth, requireAdmin)
	{
		ads.GET("/", adHandler.GetAds)
		ads.POST("/", adHandler.CreateAd)
		ads.POST("/creatives", adHandler.UploadCreative)
		ads.PUT("/:ad_id", adHandler.UpdateAd)
		ads.DELETE("/:ad_id", adHandler.DeleteAd)
	}

	logger.Info("Routes initialized successfully")
}
