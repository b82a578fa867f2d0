package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/openderm/lesionsnap/internal/adapter"
	"github.com/openderm/lesionsnap/internal/camera"
	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("capture-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessionDB, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session database")
	}

	session, err := store.NewSessionStore(sessionDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	provider := camera.NewExecProvider(cfg.Camera.SnapshotCommand, log)

	services := service.NewClientServices(provider, session, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
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
