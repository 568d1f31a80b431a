// Package main is the command-line entry point for the Pokédex viewer
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokeview/pokedex/internal/app"
	"github.com/pokeview/pokedex/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "PokéAPI creature viewer",
	Long:  `Look up a creature on PokéAPI by name or number and view its card: artwork, types, size, abilities and base stats.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.SetupLogging(os.Stderr, verbose)
	},
	RunE: runViewer,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = version

	rootCmd.AddCommand(exportCmd)
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return app.RunViewer(cfg, version)
}
