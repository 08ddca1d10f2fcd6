package player

import "github.com/gin-gonic/gin"

// PlayerRoutes mounts the player registry under router.
func PlayerRoutes(router *gin.RouterGroup, pc *PlayerController) {
	players := router.Group("/players")
	{
		players.GET("", pc.GetAllPlayers)
		players.POST("", pc.CreatePlayer)
		players.GET("/:id", pc.GetPlayerByID)
		players.PUT("/:id", pc.UpdatePlayer)
		players.DELETE("/:id", pc.DeletePlayer)
	}
}
