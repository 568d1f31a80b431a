package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/platform"
	"github.com/pokeview/pokedex/internal/render"
)

// Format is an export file format
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// DefaultTitle names documents exported without a loaded record
const DefaultTitle = "Pokédex"

const (
	pdfImageName = "card"
	pdfChartName = "stats"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", errors.InvalidArgumentf("unsupported export format %q (use .png or .pdf)", filepath.Ext(path))
	}
}

// Exporter rasterizes query snapshots and encodes them
type Exporter struct {
	raster *render.Rasterizer
}

// NewExporter creates an exporter with its own font cache
func NewExporter() *Exporter {
	return &Exporter{raster: render.NewRasterizer()}
}

// Card draws the full canvas for a snapshot
func (e *Exporter) Card(state *model.QueryState) *image.RGBA {
	return e.raster.Draw(render.Frame(state), render.CanvasWidth, render.CanvasHeight)
}

// Write encodes the snapshot's canvas to w
func (e *Exporter) Write(w io.Writer, format Format, state *model.QueryState) error {
	img := e.Card(state)

	switch format {
	case FormatPNG:
		return PNG(w, img)
	case FormatPDF:
		var rec *model.Record
		if state != nil {
			rec = state.Record
		}
		return PDF(w, img, Title(state), rec)
	default:
		return errors.InvalidArgumentf("unsupported export format %q", format)
	}
}

// WriteFile exports the snapshot to path, creating its directory. The format
// follows the file extension.
func (e *Exporter) WriteFile(path string, state *model.QueryState) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "create export directory for %s", path)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := e.Write(f, format, state); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	slog.Info("card exported", "path", path, "format", format, "query", queryOf(state))
	return nil
}

// PNG encodes img as PNG
func PNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// PDF writes a page the size of img, in points, with img filling it. When rec
// has stats a second page carries them as a bar chart.
func PDF(w io.Writer, img image.Image, title string, rec *model.Record) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "encode pdf image")
	}

	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	orientation := "L"
	if height > width {
		orientation = "P"
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetTitle(title, true)
	pdf.SetCreator("pokedex", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &buf)
	pdf.ImageOptions(pdfImageName, 0, 0, width, height, false, opts, 0, "")

	if rec != nil && len(rec.Stats) > 0 {
		chartPNG, err := StatsChart(rec, b.Dx(), b.Dy())
		if err != nil {
			return err
		}
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(pdfChartName, opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions(pdfChartName, 0, 0, width, height, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

// Title is the document title for a snapshot
func Title(state *model.QueryState) string {
	if state == nil || state.Record == nil {
		return DefaultTitle
	}
	return fmt.Sprintf("%s - %s", DefaultTitle, render.Title(state.Record))
}

func queryOf(state *model.QueryState) string {
	if state == nil {
		return ""
	}
	return state.Query
}
