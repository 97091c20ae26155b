package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jortega/trackvault/internal/adapter"
	"github.com/jortega/trackvault/internal/client"
	"github.com/jortega/trackvault/internal/config"
	"github.com/jortega/trackvault/internal/crypto"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/service"
	"github.com/jortega/trackvault/internal/validators"
	"github.com/jortega/trackvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-cli")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Vault.AccountID == "" || cfg.Vault.ProjectID == "" {
		fmt.Fprintln(os.Stderr, "account id and project id are required (flags -account/-project or env VAULT_ACCOUNT_ID/VAULT_PROJECT_ID)")
		os.Exit(1)
	}

	recordStore, err := adapter.NewRemoteRecordStore(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record store adapter")
	}

	codec := crypto.NewEnvelopeCodec()
	services := service.NewServices(recordStore, codec, log)
	session := services.NewProjectSession(
		recordStore,
		validators.NewCredentialValidator(),
		cfg.Vault.AccountID,
		cfg.Vault.ProjectID,
		log,
	)

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	autoLock := workers.NewAutoLockWorker(ctx, session, cfg.Vault.AutoLockAfter, log)
	workers.NewWorkers(autoLock).Run()

	app := client.NewApp(session, recordStore, os.Stdin, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
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
