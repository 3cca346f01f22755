package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-advert-board/internal/config"
	"github.com/MKhiriev/go-advert-board/internal/handler"
	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/server"
	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("advert-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
