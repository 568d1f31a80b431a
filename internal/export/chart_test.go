package export

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
)

func TestStatsChart(t *testing.T) {
	rec := &model.Record{
		ID:   6,
		Name: "charizard",
		Stats: []model.Stat{
			{Name: "hp", BaseValue: 78},
			{Name: "attack", BaseValue: 84},
			{Name: "special-attack", BaseValue: 109},
			{Name: "speed", BaseValue: 100},
		},
	}

	b, err := StatsChart(rec, 900, 520)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 900, 520), img.Bounds())
}

func TestStatsChartAboveDomain(t *testing.T) {
	rec := &model.Record{ID: 242, Name: "blissey", Stats: []model.Stat{{Name: "hp", BaseValue: 255}}}

	_, err := StatsChart(rec, 600, 400)
	assert.NoError(t, err)
}

func TestStatsChartWithoutStats(t *testing.T) {
	_, err := StatsChart(&model.Record{ID: 1, Name: "bulbasaur"}, 600, 400)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = StatsChart(nil, 600, 400)
	assert.Error(t, err)
}

func TestPDFWithStatsPageIsLarger(t *testing.T) {
	e := NewExporter()
	state := loadedState()
	img := e.Card(state)

	var withChart, cardOnly bytes.Buffer
	require.NoError(t, PDF(&withChart, img, Title(state), state.Record))
	require.NoError(t, PDF(&cardOnly, img, Title(state), nil))

	assert.Greater(t, withChart.Len(), cardOnly.Len())
}
