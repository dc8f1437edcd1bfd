package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movieweb/internal/config"
	"github.com/iliyamo/movieweb/internal/database"
	"github.com/iliyamo/movieweb/internal/handler"
	"github.com/iliyamo/movieweb/internal/omdb"
	"github.com/iliyamo/movieweb/internal/repository"
	"github.com/iliyamo/movieweb/internal/router"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", "path", cfg.DBPath, "err", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	fetcher := omdb.NewClient(cfg.OMDbAPIKey, cfg.OMDbBaseURL)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	router.RegisterRoutes(e,
		handler.NewUserHandler(users),
		handler.NewMovieHandler(users, movies, fetcher, logger))

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
