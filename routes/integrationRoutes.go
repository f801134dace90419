package routes

import (
	"github.com/gin-gonic/gin"

	"janawaaz-be/controllers"
	"janawaaz-be/middlewares"
	"janawaaz-be/models"
)

// IntegrationRoutes sets up the external ministry integration routes
func IntegrationRoutes(r *gin.Engine, ctrl *controllers.IntegrationController) {
	integration := r.Group("/api/integration")
	integration.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleMinistryAdmin))
	{
		integration.GET("", ctrl.ListIntegrations)
		integration.POST("/:id/sync", ctrl.SyncIntegration)
		integration.POST("/:id/test", ctrl.TestIntegrationConnection)
	}
}
