package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"janawaaz-be/controllers"
	"janawaaz-be/middlewares"
	"janawaaz-be/models"
)

// dailyReportLimit caps reports per citizen per day
const dailyReportLimit = 10

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, ctrl *controllers.IssueController, rdb *redis.Client) {
	issue := r.Group("/api/issue")
	issue.Use(middlewares.AuthMiddleware())
	{
		issue.POST("/create",
			middlewares.RequireRole(models.RoleCitizen),
			middlewares.IssueRateLimiter(rdb, dailyReportLimit),
			ctrl.CreateIssue)
		issue.GET("", ctrl.GetAllIssues)
		issue.GET("/mine", ctrl.GetMyIssues)
		issue.GET("/zone/:zone",
			middlewares.RequireRole(models.RoleZonalAdmin, models.RoleMinistryAdmin),
			ctrl.GetIssuesByZone)
		issue.GET("/ministry/:ministry",
			middlewares.RequireRole(models.RoleMinistryAdmin),
			ctrl.GetIssuesByMinistry)
		issue.GET("/analytics",
			middlewares.RequireRole(models.RoleZonalAdmin, models.RoleMinistryAdmin),
			ctrl.GetIssueAnalytics)
		issue.GET("/stream", ctrl.StreamIssues)
		issue.GET("/:id", ctrl.GetIssue)
		issue.PATCH("/:id/status",
			middlewares.RequireRole(models.RoleZonalAdmin, models.RoleMinistryAdmin),
			ctrl.UpdateIssueStatus)
	}
}
