package router

import (
	"isp_billing_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client routes.
// The bulk due-date route is registered alongside the :id routes; Gin resolves
// the static segment before the parameter.
func SetupClientRoutes(apiGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := apiGroup.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.POST("/:id/status", clientHandler.UpdateClientStatus)
		clientRoutes.POST("/update-due-dates", clientHandler.UpdateAllDueDates)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupNotificationRoutes sets up the outbound email route.
func SetupNotificationRoutes(apiGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	apiGroup.POST("/send-email", notificationHandler.SendEmail)
}
