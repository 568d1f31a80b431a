package ui

import (
	"context"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeview/pokedex/internal/config"
	"github.com/pokeview/pokedex/internal/export"
	"github.com/pokeview/pokedex/internal/fetch"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/platform"
	"github.com/pokeview/pokedex/internal/render"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	queryEntry  *widget.Entry
	goBtn       *widget.Button
	randomBtn   *widget.Button
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	card        *CardView

	ctrl     fetch.QueryController
	exporter *export.Exporter
	settings *config.Settings

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI. Call Start to run the
// initial query.
func NewRootUI(window fyne.Window, app fyne.App, ctrl fetch.QueryController, exporter *export.Exporter) *RootUI {
	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:   window,
		ctrl:     ctrl,
		exporter: exporter,
		settings: config.NewSettings(app),
		ctx:      ctx,
		cancel:   cancel,
	}

	ui.ctrl.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.applyState(ctrl.Snapshot())

	window.SetOnClosed(cancel)
	return ui
}

// Start submits the query left in the entry from the previous session
func (ui *RootUI) Start() <-chan struct{} {
	return ui.submit(ui.queryEntry.Text)
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(QueryPlaceholder)
	ui.queryEntry.SetText(ui.settings.GetLastQuery())
	ui.queryEntry.OnSubmitted = func(string) {
		ui.onGoClick()
	}

	ui.goBtn = widget.NewButton(GoButtonText, ui.onGoClick)
	ui.goBtn.Importance = widget.HighImportance

	ui.randomBtn = widget.NewButton(RandomButtonText, ui.onRandomClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.goBtn, ui.randomBtn, settingsBtn),
		ui.queryEntry,
	)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	statusRow := container.NewBorder(nil, nil, ui.spinner, nil, ui.statusLabel)

	ui.card = NewCardView()

	content := container.NewBorder(
		container.NewVBox(topPanel, statusRow),
		nil, nil, nil,
		container.NewCenter(ui.card.Object()),
	)
	ui.window.SetContent(container.NewPadded(content))

	ui.setupShortcuts()
}

func (ui *RootUI) createMenu() {
	exportPNG := fyne.NewMenuItem("Export PNG…", func() { ui.onExport(export.FormatPNG) })
	exportPNG.Shortcut = saveShortcut()
	exportPDF := fyne.NewMenuItem("Export PDF…", func() { ui.onExport(export.FormatPDF) })
	reveal := fyne.NewMenuItem("Reveal Last Export", ui.onRevealLastExport)
	settingsItem := fyne.NewMenuItem("Settings…", ui.onShowSettings)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", exportPNG, exportPDF, fyne.NewMenuItemSeparator(), reveal, settingsItem),
	))
}

// setupShortcuts binds S (when no widget has focus) and Ctrl/Cmd+S to PNG export
func (ui *RootUI) setupShortcuts() {
	c := ui.window.Canvas()
	c.SetOnTypedRune(func(r rune) {
		if r == 's' || r == 'S' {
			ui.onExport(export.FormatPNG)
		}
	})
	c.AddShortcut(saveShortcut(), func(fyne.Shortcut) {
		ui.onExport(export.FormatPNG)
	})
}

func saveShortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
}

func (ui *RootUI) onGoClick() {
	ui.submit(ui.queryEntry.Text)
}

func (ui *RootUI) onRandomClick() {
	id := ui.ctrl.RandomQueryID()
	ui.queryEntry.SetText(strconv.Itoa(id))
	ui.submit(ui.queryEntry.Text)
}

func (ui *RootUI) submit(raw string) <-chan struct{} {
	ui.settings.SetLastQuery(raw)
	return ui.ctrl.Submit(ui.ctx, raw)
}

// onStateUpdate receives snapshots from the controller goroutines
func (ui *RootUI) onStateUpdate(state *model.QueryState) {
	log.Printf("State update: gen=%d request=%s query=%q phase=%s",
		state.Generation, state.RequestID, state.Query, state.Phase)

	fyne.Do(func() {
		ui.applyState(state)
	})
}

// applyState redraws the status line and card. Must run on the UI thread.
func (ui *RootUI) applyState(state *model.QueryState) {
	if state == nil {
		state = model.IdleState()
	}

	ui.statusLabel.SetText(state.StatusMessage())
	if state.Phase.IsActive() {
		ui.spinner.Show()
	} else {
		ui.spinner.Hide()
	}

	ui.card.Show(render.Frame(state))
}

// onExport asks for a destination and writes the card shown right now
func (ui *RootUI) onExport(format export.Format) {
	state := ui.ctrl.Snapshot()

	name := DefaultPNGName
	if format == export.FormatPDF {
		name = DefaultPDFName
	}

	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("Export dialog error: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		if err := ui.exporter.Write(wc, format, state); err != nil {
			log.Printf("Export failed: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}

		path := wc.URI().Path()
		log.Printf("Card exported: %s", path)
		ui.settings.SetLastExportPath(path)
		ui.showExportToast(path)
	}, ui.window)

	fs.SetFileName(name)
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err == nil {
		if location, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fs.SetLocation(location)
		}
	}
	fs.Show()
}

func (ui *RootUI) onRevealLastExport() {
	path := ui.settings.GetLastExportPath()
	if path == "" {
		dialog.ShowInformation("Reveal", "Nothing exported yet.", ui.window)
		return
	}
	ui.onRevealFile(path)
}

func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}
