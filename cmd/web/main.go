package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/class-match/internal/config"
	"github.com/AdamBeresnev/class-match/internal/db"
	"github.com/AdamBeresnev/class-match/internal/service"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/jmoiron/sqlx"
)

func newApplication(database *sqlx.DB) *application {
	teamStore := store.NewTeamStore(database)
	leagueStore := store.NewLeagueStore(database)
	tournamentStore := store.NewTournamentStore(database)

	return &application{
		teams:       service.NewTeamService(teamStore),
		leagues:     service.NewLeagueService(database, leagueStore, teamStore),
		tournaments: service.NewTournamentService(database, tournamentStore, leagueStore),
		rankings:    service.NewRankingService(teamStore, leagueStore, tournamentStore),
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	database, err := db.Connect(db.DSN(cfg.Database.Path))
	if err != nil {
		slog.Error("Failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      newRouter(newApplication(database), cfg.CORS.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			if err := server.Close(); err != nil {
				slog.Error("Failed to close server", "error", err)
			}
		}
		slog.Info("Server stopped")
	}
}
