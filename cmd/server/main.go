package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/kategengler/api-v2/internal/app/migrate"
	"github.com/kategengler/api-v2/internal/http/handlers"
	canvash "github.com/kategengler/api-v2/internal/http/handlers/canvas"
	overviewh "github.com/kategengler/api-v2/internal/http/handlers/overview"
	teamh "github.com/kategengler/api-v2/internal/http/handlers/team"
	mw "github.com/kategengler/api-v2/internal/http/middleware"
	"github.com/kategengler/api-v2/internal/lib/config"
	"github.com/kategengler/api-v2/internal/lib/sl"
	repo "github.com/kategengler/api-v2/internal/repository"
	"github.com/kategengler/api-v2/internal/service/canvas"
	"github.com/kategengler/api-v2/internal/service/overview"
	"github.com/kategengler/api-v2/internal/service/team"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Team Tenancy Service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	runner, err := migrate.New(db, cfg.Migrations.Dir, log)
	if err != nil {
		log.Error("failed to set up migrations", sl.Err(err))
		os.Exit(1)
	}
	if err := runner.Ensure(context.Background()); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	accountRepo := repo.NewAccountRepo(db, trmsqlx.DefaultCtxGetter)
	tokenRepo := repo.NewAccessTokenRepo(db, trmsqlx.DefaultCtxGetter)
	canvasRepo := repo.NewCanvasRepo(db, trmsqlx.DefaultCtxGetter)
	overviewRepo := repo.NewOverviewRepo(db, trmsqlx.DefaultCtxGetter)

	teamService := team.NewTeamService(trManager, teamRepo, accountRepo, tokenRepo)
	canvasService := canvas.NewCanvasService(trManager, canvasRepo, teamRepo)
	overviewService := overview.NewOverviewService(overviewRepo, teamRepo)

	teamHandler := teamh.NewTeamHandler(log, teamService)
	canvasHandler := canvash.NewCanvasHandler(log, canvasService)
	overviewHandler := overviewh.NewOverviewHandler(log, overviewService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Post("/teams/createFromSlack", teamHandler.CreateFromSlack)

	// user methods
	router.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		r.Get("/teams/get", teamHandler.Get)
		r.Post("/teams/createPersonal", teamHandler.CreatePersonal)
		r.Post("/teams/updateDomain", teamHandler.UpdateDomain)
		r.Get("/teams/overview", overviewHandler.Get)
		r.Get("/canvases/get", canvasHandler.Get)
		r.Get("/canvases/list", canvasHandler.List)
	})

	// admin methods
	router.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)
		r.Use(mw.AdminOnly)

		r.Get("/teams/accessToken", teamHandler.GetAccessToken)
		r.Post("/canvases/create", canvasHandler.Create)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
