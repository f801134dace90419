package routes

import (
	"github.com/gin-gonic/gin"

	"janawaaz-be/controllers"
	"janawaaz-be/middlewares"
	"janawaaz-be/models"
)

// UserRoutes sets up the user and gamification routes
func UserRoutes(r *gin.Engine, ctrl *controllers.UserController) {
	user := r.Group("/api/user")
	{
		user.GET("/leaderboard", ctrl.GetLeaderboard)
		user.GET("/reference", ctrl.GetReferenceData)
		user.GET("/gamification",
			middlewares.AuthMiddleware(),
			middlewares.RequireRole(models.RoleCitizen),
			ctrl.GetGamificationProfile)
	}
}
