package export

import (
	"bytes"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/render"
)

// Chart sizing for the stats page
const (
	ChartBarWidth   = 60
	ChartBarSpacing = 24
)

// barColor matches the card's stat bars (black at alpha 120)
var barColor = drawing.Color{R: 0, G: 0, B: 0, A: 120}

// StatsChart draws the record's base stats as a PNG bar chart. The value
// axis spans the stat domain so charts of different records compare at a
// glance; values above the domain widen it.
func StatsChart(rec *model.Record, width, height int) ([]byte, error) {
	if rec == nil || len(rec.Stats) == 0 {
		return nil, errors.InvalidArgument("record has no stats to chart")
	}

	top := float64(render.StatDomainMax)
	bars := make([]chart.Value, 0, len(rec.Stats))
	for _, s := range rec.Stats {
		v := float64(max(s.BaseValue, 0))
		top = max(top, v)
		bars = append(bars, chart.Value{
			Label: strings.ToUpper(s.Name),
			Value: v,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
	}

	bc := chart.BarChart{
		Title:      render.StatsHeading + " - " + render.Title(rec),
		Width:      width,
		Height:     height,
		BarWidth:   ChartBarWidth,
		BarSpacing: ChartBarSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top}},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render stats chart")
	}
	return buf.Bytes(), nil
}
