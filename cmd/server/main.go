package main

import (
	"log"
	"net/http"

	"isp_billing_backend/internal/config"
	"isp_billing_backend/internal/database"
	"isp_billing_backend/internal/email"
	"isp_billing_backend/internal/router"
	"isp_billing_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load .env if present, then parse configuration from the environment
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	database.InitDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// Select the email transport. Missing credentials only disable the email
	// endpoint; everything else keeps serving.
	var sender email.Sender
	if cfg.PostmarkServerToken == "" || cfg.PostmarkAccountToken == "" {
		utils.LogWarn("Postmark credentials not configured, email sending is disabled")
		sender = email.NewDisabledSender()
	} else {
		sender, err = email.NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.SenderEmail)
		if err != nil {
			log.Fatalf("Failed to configure email sender: %v", err)
		}
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Presentational pages for the dashboard frontend
	engine.StaticFile("/", "./web/index.html")
	engine.StaticFile("/dashboard", "./web/dashboard.html")

	// Setup all application routes
	router.Setup(engine, database.GetDB(), sender)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
