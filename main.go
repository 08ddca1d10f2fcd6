package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crickettourney/config"
	_ "github.com/DhavalSuthar-24/crickettourney/docs"
	"github.com/DhavalSuthar-24/crickettourney/internal/live"
	"github.com/DhavalSuthar-24/crickettourney/internal/match"
	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/DhavalSuthar-24/crickettourney/pkg/upload"
	"github.com/DhavalSuthar-24/crickettourney/routes"
)

// container holds everything main wires together.
type container struct {
	db    *gorm.DB
	hub   *live.Hub
	ctrls routes.Controllers
}

func build(cfg *config.Config, db *gorm.DB, log *logging.Logger) (*container, error) {
	store := upload.NewStore(cfg.App.UploadDir, "/uploads")
	if err := store.EnsureDir(); err != nil {
		return nil, err
	}
	hub := live.NewHub([]string{cfg.App.FrontendURL}, log.With("component", "live"))

	players := player.NewPlayerRepository(db)
	teams := team.NewTeamRepository(db)
	matches := match.NewGormMatchRepository(db)
	engine := standings.NewEngine(standings.NewRepository(db), log.With("component", "standings"))
	matchService := match.NewMatchService(matches, teams, engine, hub, cfg.App.DefaultOversLimit, log.With("component", "match"))

	return &container{
		db:  db,
		hub: hub,
		ctrls: routes.Controllers{
			Players:   player.NewPlayerController(players, teams, log.With("component", "player")),
			Teams:     team.NewTeamController(teams, players, matches, store, log.With("component", "team")),
			Matches:   match.NewMatchController(matchService),
			Standings: standings.NewStandingsController(engine, matchService),
			Live:      live.NewLiveController(hub),
		},
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&player.Player{},
		&team.Team{}, &team.TeamPlayer{},
		&match.Match{}, &match.Delivery{}, &match.OverSummary{},
		&standings.Record{},
	)
}

// @title Cricket Tournament API
// @version 1.0
// @description Teams, players, matches and the points table of a cricket tournament, with live score updates.
// @host localhost:5000
// @BasePath /api
func main() {
	bootLog := logging.NewJSON(logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	log := logging.NewJSON(logging.ParseLevel(cfg.App.LogLevel)).With("env", cfg.App.Env)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "err", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrate(db); err != nil {
		return err
	}
	log.Info("AutoMigrate successful")

	c, err := build(cfg, db, log)
	if err != nil {
		return err
	}
	defer c.hub.Close()

	handler := routes.SetupRoutes(routes.Options{
		FrontendURL: cfg.App.FrontendURL,
		UploadDir:   cfg.App.UploadDir,
		Health:      sqlDB.PingContext,
	}, c.ctrls, log)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.App.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	// Websockets are hijacked connections that Shutdown does not wait for.
	c.hub.Close()
	return srv.Shutdown(shutdownCtx)
}
