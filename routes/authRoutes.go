package routes

import (
	"github.com/gin-gonic/gin"

	"janawaaz-be/controllers"
	"janawaaz-be/middlewares"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctrl.RegisterUser)
		auth.POST("/login", ctrl.LoginUser)
		auth.POST("/logout", ctrl.LogoutUser)
		auth.GET("/me", middlewares.AuthMiddleware(), ctrl.GetMe)
	}
}
