package main

import (
	"fmt"
	"os"

	"github.com/pokeview/pokedex/internal/app"
	"github.com/pokeview/pokedex/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("%s v%s starting...\n", app.AppName, version)

	app.SetupLogging(os.Stderr, os.Getenv("POKEDEX_DEBUG") != "")

	cfg, err := config.Load(os.Getenv("POKEDEX_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := app.RunViewer(cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
