package config

import (
	"flag"
	"os"
)

// parseServerFlags reads the server command line. Flags sit at the top of
// the merge order, above env and JSON.
func parseServerFlags() *ServerConfig {
	fs := flag.NewFlagSet("trackvault-server", flag.ContinueOnError)

	cfg := &ServerConfig{}
	fs.StringVar(&cfg.Server.HTTPAddress, "a", "", "HTTP listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "t", 0, "inbound request timeout")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", `database driver: "pgx" or "sqlite3"`)
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	// Errors fall through to the merged config validation.
	_ = fs.Parse(os.Args[1:])

	return cfg
}

// parseClientFlags reads the vault CLI command line.
func parseClientFlags() *ClientConfig {
	fs := flag.NewFlagSet("trackvault", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "backend base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "backend request timeout")
	fs.StringVar(&cfg.Vault.AccountID, "account", "", "account id owning the vault")
	fs.StringVar(&cfg.Vault.ProjectID, "project", "", "project id the session operates on")
	fs.DurationVar(&cfg.Vault.AutoLockAfter, "auto-lock", 0, "lock the vault after this idle duration (0 disables)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	_ = fs.Parse(os.Args[1:])

	return cfg
}
