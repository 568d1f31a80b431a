package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/pokeview/pokedex/internal/config"
	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/export"
	"github.com/pokeview/pokedex/internal/fetch"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/platform"
	"github.com/pokeview/pokedex/internal/pokeapi"
	"github.com/pokeview/pokedex/internal/render"
	"github.com/pokeview/pokedex/internal/ui"
)

const (
	AppID   = "io.pokeview.pokedex"
	AppName = "PokéAPI Pokédex"

	// Window leaves room for the query row above the fixed-size card
	WindowWidth  = render.CanvasWidth + 40
	WindowHeight = render.CanvasHeight + 110
)

// SetupLogging installs a text slog handler on w as the default logger
func SetupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// NewController builds the API client and controller described by cfg
func NewController(cfg *config.Config, logger *slog.Logger) (*fetch.Controller, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	client, err := pokeapi.New(cfg.ClientConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create api client")
	}

	return fetch.NewController(&fetch.Config{
		Client:      client,
		MaxRandomID: cfg.RandomMaxID,
		Logger:      logger,
	})
}

// RunViewer opens the viewer window and blocks until it is closed
func RunViewer(cfg *config.Config, version string) error {
	logger := slog.Default()

	ctrl, err := NewController(cfg, logger)
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewViewerTheme())

	w := a.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	viewer := ui.NewRootUI(w, a, ctrl, export.NewExporter())
	viewer.Start()

	logger.Info("viewer started", "version", version, "api_base", cfg.APIBase)
	w.ShowAndRun()
	return nil
}

// ExportCard fetches query and writes its card to out (.png or .pdf). An
// empty out picks a free name in the user's Downloads directory.
func ExportCard(ctx context.Context, cfg *config.Config, query, out string) (string, error) {
	ctrl, err := NewController(cfg, slog.Default())
	if err != nil {
		return "", err
	}

	<-ctrl.Submit(ctx, query)

	state := ctrl.Snapshot()
	switch state.Phase {
	case model.QueryPhaseLoaded:
	case model.QueryPhaseFailed:
		code := errors.CodeInternal
		if state.Err == errors.NotFoundMessage {
			code = errors.CodeNotFound
		}
		return "", errors.Newf(code, "query %q failed: %s", query, state.Err)
	default:
		return "", errors.InvalidArgumentf("query %q is blank", query)
	}

	if out == "" {
		out, err = defaultExportPath()
		if err != nil {
			return "", err
		}
	}

	if err := export.NewExporter().WriteFile(out, state); err != nil {
		return "", err
	}
	return out, nil
}

func defaultExportPath() (string, error) {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		dir, err = os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "no export directory")
		}
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	return platform.UniquePath(filepath.Clean(dir), config.DefaultExportName)
}
