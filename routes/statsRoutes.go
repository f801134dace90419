package routes

import (
	"github.com/gin-gonic/gin"

	"janawaaz-be/controllers"
)

// StatsRoutes sets up the platform statistics routes
func StatsRoutes(r *gin.Engine, ctrl *controllers.StatsController) {
	stats := r.Group("/api/statistics")
	{
		stats.GET("", ctrl.GetStatistics)
		stats.GET("/stream", ctrl.StreamStatistics)
	}
}
