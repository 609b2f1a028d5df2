package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	myHTTP "github.com/MKhiriev/go-micro-blog/internal/handler/http"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/render"
	"github.com/MKhiriev/go-micro-blog/internal/server"
	"github.com/MKhiriev/go-micro-blog/internal/service"
	"github.com/MKhiriev/go-micro-blog/internal/session"
	"github.com/MKhiriev/go-micro-blog/internal/store"
	"github.com/MKhiriev/go-micro-blog/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-micro-blog")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB, db.Driver()); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)
	sessions := session.NewManager(cfg.Auth, log)

	renderer, err := render.NewRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handler := myHTTP.NewHandler(services, sessions, renderer, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
