package main

import (
	"github.com/gin-gonic/gin"

	"github.com/GraceParish/controllers"
	"github.com/GraceParish/initializers"
	"github.com/GraceParish/logger"
	"github.com/GraceParish/middlewares"
	"github.com/GraceParish/services"
	"github.com/GraceParish/stores"
)

func main() {
	initializers.LoadEnv()
	log := logger.New()
	cfg := initializers.LoadConfig()

	db, err := initializers.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.ContactNotifyEmail, log)

	prayerController := controllers.NewPrayerController(stores.NewPrayerStore(db), cfg.AutoApprovePrayers, log)
	galleryController := controllers.NewGalleryController(stores.NewMediaStore(db), cfg.UploadDir, log)
	contactController := controllers.NewContactController(stores.NewContactStore(db), emailService, log)
	pageController := controllers.NewPageController(cfg.ContentDir, log)

	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), pageController.Ping)
	router.Static("/static", "./static")
	router.Static("/media", cfg.UploadDir)
	router.GET("/pages/:slug", middlewares.RateLimitMiddleware(10, 10, getKey), pageController.RenderPage)

	// prayer requests
	router.POST("/prayers", middlewares.RateLimitMiddleware(2, 2, getKey), prayerController.SubmitPrayer)
	router.GET("/prayers", middlewares.RateLimitMiddleware(10, 10, getKey), prayerController.GetApprovedPrayers)
	router.POST("/prayers/:prayer_id/pray", middlewares.RateLimitMiddleware(5, 5, getKey), prayerController.RecordPrayer)
	router.DELETE("/prayers/:prayer_id", middlewares.RateLimitMiddleware(2, 2, getKey), prayerController.DeletePrayer)

	// gallery
	router.GET("/gallery", middlewares.RateLimitMiddleware(10, 10, getKey), galleryController.GetMediaFiles)
	router.POST("/gallery", middlewares.RateLimitMiddleware(2, 2, getKey), galleryController.UploadMedia)
	router.DELETE("/gallery/:media_file_id", middlewares.RateLimitMiddleware(2, 2, getKey), galleryController.DeleteMedia)

	// contact form
	router.POST("/contact", middlewares.RateLimitMiddleware(2, 2, getKey), contactController.SubmitContactMessage)

	// moderation and inbox routes
	admin := router.Group("/admin")
	admin.Use(middlewares.CheckAdmin(cfg.AdminAPIKey))
	admin.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		admin.GET("/prayers", prayerController.GetAllPrayers)
		admin.GET("/prayers/pending", prayerController.GetPendingPrayers)
		admin.POST("/prayers/moderate", prayerController.ModeratePrayer)

		admin.GET("/messages", contactController.GetContactMessages)
		admin.PATCH("/messages/:message_id/read", contactController.SetContactMessageRead)
		admin.DELETE("/messages/:message_id", contactController.DeleteContactMessage)
	}

	if err := router.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
