package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/storefront/core/cmd/api/commands"
)

// @title Storefront API
// @version 1.0
// @description Storefront web service: HTML pages and a JSON API over flat-file collections.

// @host localhost:3000
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront web server",
		Long:  `Storefront serves the shop's HTML pages and a JSON API over the products, users and orders collections.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
