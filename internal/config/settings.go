package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/pokeview/pokedex/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLastQuery       = "last_query"
	KeyExportDirectory = "export_directory"
	KeyLastExport      = "last_export_path"
)

// Default values
const (
	DefaultQuery          = "pikachu"
	DefaultExportName     = "pokeapi-pokedex.png"
	FallbackExportDirName = "pokedex-exports"
)

// Settings manages state remembered between sessions
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastQuery returns the last submitted query, or the default on first run
func (s *Settings) GetLastQuery() string {
	q := strings.TrimSpace(s.app.Preferences().String(KeyLastQuery))
	if q == "" {
		return DefaultQuery
	}
	return q
}

// SetLastQuery remembers a submitted query. Blank input is ignored.
func (s *Settings) SetLastQuery(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	s.app.Preferences().SetString(KeyLastQuery, query)
}

// GetExportDirectory returns the configured export directory
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(s.app.Storage().RootURI().Path(), FallbackExportDirName)
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDirectory, dir)
}

// GetLastExportPath returns the most recently written export, if any
func (s *Settings) GetLastExportPath() string {
	return s.app.Preferences().String(KeyLastExport)
}

// SetLastExportPath records a written export and moves the export
// directory to where it was saved
func (s *Settings) SetLastExportPath(path string) {
	if path == "" {
		return
	}
	s.app.Preferences().SetString(KeyLastExport, path)
	s.SetExportDirectory(filepath.Dir(path))
}
