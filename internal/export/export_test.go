package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/render"
)

func loadedState() *model.QueryState {
	rec := &model.Record{
		ID:     1,
		Name:   "bulbasaur",
		Types:  []model.TypeSlot{{Slot: 1, Name: "grass"}, {Slot: 2, Name: "poison"}},
		Height: 7,
		Weight: 69,
		Stats:  []model.Stat{{Name: "hp", BaseValue: 45}},
	}
	return model.LoadingState(1, "req-1", "bulbasaur").Loaded(rec, nil)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"card.png", FormatPNG, false},
		{"/tmp/CARD.PNG", FormatPNG, false},
		{"card.pdf", FormatPDF, false},
		{"card.jpg", "", true},
		{"card", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if err == nil || !errors.IsInvalidArgument(err) {
				t.Errorf("FormatFromPath(%s) error = %v, expected invalid argument", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("FormatFromPath(%s) = %v, %v, expected %v", tt.path, got, err, tt.expected)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Write(&buf, FormatPNG, loadedState()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, render.CanvasWidth, render.CanvasHeight), img.Bounds())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Write(&buf, FormatPDF, loadedState()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with %%PDF")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewExporter().Write(&buf, Format("gif"), loadedState())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	e := NewExporter()

	pngPath := filepath.Join(dir, "card.png")
	require.NoError(t, e.WriteFile(pngPath, loadedState()))

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)

	pdfPath := filepath.Join(dir, "card.pdf")
	require.NoError(t, e.WriteFile(pdfPath, model.IdleState()))

	b, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestWriteFileRejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.bmp")
	require.Error(t, NewExporter().WriteFile(path, loadedState()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, DefaultTitle, Title(nil))
	assert.Equal(t, DefaultTitle, Title(model.IdleState()))
	assert.Equal(t, "Pokédex - #1  Bulbasaur", Title(loadedState()))
}
