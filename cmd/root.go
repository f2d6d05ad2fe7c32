package cmd

import (
	"fmt"

	"logistics-requests/config"
	"logistics-requests/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "logistics-requests",
	Short:        "Shipment request API: intake, tracking, lifecycle and reports",
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads and validates the environment and starts the file logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := logger.Setup(cfg.LogDir, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}
