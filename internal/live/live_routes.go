package live

import "github.com/gin-gonic/gin"

// LiveRoutes mounts the relay under router.
func LiveRoutes(router *gin.RouterGroup, lc *LiveController) {
	live := router.Group("/live")
	{
		live.GET("/ws", lc.Subscribe)
		live.POST("/score", lc.PublishScore)
	}
}
