package router

import (
	"database/sql"

	"isp_billing_backend/internal/email"
	"isp_billing_backend/internal/email/templates"
	"isp_billing_backend/internal/handlers"
	"isp_billing_backend/internal/repositories"
	"isp_billing_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, sender email.Sender) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository(db)

	// Initialize Services
	clientService := services.NewClientService(clientRepo, db)
	notificationService := services.NewNotificationService(templates.NewEngine(), sender)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	api := engine.Group("/api")
	{
		SetupClientRoutes(api, clientHandler)
		SetupNotificationRoutes(api, notificationHandler)
	}
}
