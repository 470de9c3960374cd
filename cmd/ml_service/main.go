// Package main provides the entry point for the AI Career Coach ML service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ml_service",
	Short: "AI Career Coach ML Service",
	Long:  "ML microservice for the AI Career Coach: serves placeholder salary predictions from skill lists via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
