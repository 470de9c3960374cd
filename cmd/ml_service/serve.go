package main

import (
	"fmt"

	"github.com/jonathan/career-coach-ml/internal/config"
	"github.com/jonathan/career-coach-ml/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ML service REST API",
	Long: `Start an HTTP server that exposes the status and salary prediction endpoints.

Settings come from the environment (PORT, SERVER_*_TIMEOUT, RATE_LIMIT_*), with
an optional JSON config file via --config. Command-line flags override both.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Server settings come from the environment first
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	// Config file overrides the environment
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		if fileCfg.Port != 0 {
			cfg.Port = fileCfg.Port
		}
	}

	// An explicit flag wins over both
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
