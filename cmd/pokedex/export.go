package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pokeview/pokedex/internal/app"
	"github.com/pokeview/pokedex/internal/config"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <name-or-id>",
	Short: "Render a creature card to PNG or PDF without opening a window",
	Long: `Fetch one creature and write its card to a file. The format follows the
extension of --out (.png or .pdf). Without --out the card is saved as
pokeapi-pokedex.png in the Downloads directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (.png or .pdf)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	path, err := app.ExportCard(ctx, cfg, args[0], exportOut)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
