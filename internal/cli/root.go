// Package cli wires the cobra commands: the root command runs the HTTP
// server; subcommands cover migrations and seeding.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whiteboard/internal/config"
	"whiteboard/internal/logging"
)

// Version is the application version reported at startup.
var Version = "1.0.0"

// Global config object populated by flags/env/file.
var cfg *config.Config

// Flags
var (
	cfgFile  string
	port     int
	logLevel string
	dbPath   string
	seedFile string
)

// RootCmd represents the base command when called without any
// subcommands. It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "whiteboard",
	Short: "Whiteboard workout tracking API",
	Long:  `A REST API for tracking workouts, scores and tags, with a seeded catalog of movements and equipment.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the configuration file. (Env: WB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: WB_LOGGING_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: WB_DATABASE_PATH)")

	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: WB_SERVER_PORT)")
	RootCmd.Flags().StringVar(&seedFile, "seed", "", "Path to a TOML file of users and reference data applied once at startup. (Env: WB_SEED_PATH)")
}

// initializeConfig loads the configuration and applies flag overrides.
func initializeConfig(cmd *cobra.Command) error {
	if envPath := os.Getenv("WB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
	}

	// CLI flags win over file and environment.
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if seedFile != "" {
		cfg.Seed.Path = seedFile
	}

	logging.Init(cfg.Logging.Level)
	return nil
}
