package main

import (
	"context"
	"fmt"

	"github.com/dokanlabs/dokan-hisab/internal/config"
	httpapi "github.com/dokanlabs/dokan-hisab/internal/handler/http"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/server"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("dokan-hisab-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	handler := httpapi.NewHandler(storages, validators.NewRecordValidator(), log)

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
