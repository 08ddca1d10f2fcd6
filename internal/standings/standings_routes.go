package standings

import "github.com/gin-gonic/gin"

// StandingsRoutes mounts the points table under router.
func StandingsRoutes(router *gin.RouterGroup, sc *StandingsController) {
	points := router.Group("/points")
	{
		points.GET("", sc.GetTable)
		points.POST("/update", sc.UpdatePoints)
		points.POST("/rebuild", sc.RebuildTable)
		points.GET("/:team_id", sc.GetTeamRecord)
	}
}
