package match

import "github.com/gin-gonic/gin"

// MatchRoutes sets up all match-related routes
func MatchRoutes(router *gin.RouterGroup, mc *MatchController) {
	matches := router.Group("/matches")
	{
		matches.GET("", mc.GetMatches)
		matches.POST("", mc.CreateMatch)
		matches.GET("/:id", mc.GetMatchByID)
		matches.PUT("/:id", mc.UpdateMatch)
		matches.DELETE("/:id", mc.DeleteMatch)

		// Lifecycle and live scoring
		matches.POST("/:id/start", mc.StartMatch)
		matches.POST("/:id/complete", mc.CompleteMatch)
		matches.POST("/:id/deliveries", mc.RecordDelivery)
		matches.POST("/:id/overs", mc.RecordOverSummary)
	}
}
