package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/crickettourney/internal/live"
	"github.com/DhavalSuthar-24/crickettourney/internal/match"
	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
)

// Controllers is every feature mounted under /api.
type Controllers struct {
	Players   *player.PlayerController
	Teams     *team.TeamController
	Matches   *match.MatchController
	Standings *standings.StandingsController
	Live      *live.LiveController
}

type Options struct {
	FrontendURL string
	UploadDir   string
	// Health reports whether the database is reachable. Nil means always healthy.
	Health func(ctx context.Context) error
}

func SetupRoutes(opts Options, ctrls Controllers, log *logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logging.GinMiddleware(log), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{opts.FrontendURL}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	// Team images
	r.Static("/uploads", opts.UploadDir)

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Cricket Tournament</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Cricket Tournament API</h1>
					<a href="/swagger/index.html">API documentation</a>
				</body>
			</html>
		`))
	})

	r.GET("/healthz", func(c *gin.Context) {
		if opts.Health != nil {
			if err := opts.Health(c.Request.Context()); err != nil {
				log.Error("health check failed", "err", err)
				responses.SendError(c, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		responses.SendSuccess(c, http.StatusOK, "ok", nil)
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	player.PlayerRoutes(api, ctrls.Players)
	team.TeamRoutes(api, ctrls.Teams)
	match.MatchRoutes(api, ctrls.Matches)
	standings.StandingsRoutes(api, ctrls.Standings)
	live.LiveRoutes(api, ctrls.Live)

	return r
}
