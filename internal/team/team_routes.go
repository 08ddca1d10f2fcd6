package team

import "github.com/gin-gonic/gin"

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, tc *TeamController) {
	teams := router.Group("/teams")
	{
		// Registered before /:id so it is not read as an ID.
		teams.GET("/available-players", tc.GetAvailablePlayers)

		teams.GET("", tc.GetAllTeams)
		teams.POST("", tc.CreateTeam)
		teams.GET("/:id", tc.GetTeamByID)
		teams.PUT("/:id", tc.UpdateTeam)
		teams.DELETE("/:id", tc.DeleteTeam)
	}
}
