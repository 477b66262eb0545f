package main

import (
	"errors"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// errNoData marks an aggregation that produced nothing to draw. Pages
// show a placeholder instead and the chart endpoint answers 404.
var errNoData = errors.New("no data to chart")

// topK bounds display-oriented frequency tables.
const topK = 10

// renderable is what every go-chart figure type already implements.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// chartDef binds one aggregation to one chart. The slug doubles as the
// image name under /charts/.
type chartDef struct {
	Slug  string
	Title string
	Build func(*Dataset) (renderable, error)
}

// chartCatalog is the static aggregation→chart binding for the
// visualizations page, in page order.
var chartCatalog = []chartDef{
	{"city", "Matches by City", cityChart},
	{"teams", "Top 10 Teams by Matches Played", teamsChart},
	{"years", "Matches Over Years", yearsChart},
	{"venue-share", "Top 10 Venues", venueShareChart},
	{"series-share", "Top 10 Series", seriesShareChart},
	{"toss", "Matches by Toss Winner", tossChart},
	{"venues", "Matches by Venue", venuesChart},
	{"team-detail", "Matches per Team (Detailed)", teamDetailChart},
}

// categoryDef lives on the KPI page rather than the visuals grid.
var categoryDef = chartDef{"category", "Matches by Category", categoryChart}

func chartBySlug(slug string) (chartDef, bool) {
	if slug == categoryDef.Slug {
		return categoryDef, true
	}
	for _, def := range chartCatalog {
		if def.Slug == slug {
			return def, true
		}
	}
	return chartDef{}, false
}

var barPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorRed,
	chart.ColorYellow,
}

func categoryChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Match Category"), 0)
	return barFigure("Matches by Category", "Count", counts)
}

func cityChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "City"), 0)
	return barFigure("Matches by City", "Matches", counts)
}

func teamsChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Team 1", "Team 2"), topK)
	return barFigure("Top 10 Teams by Matches Played", "Matches Played", counts)
}

func tossChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Toss Winner"), topK)
	return barFigure("Matches by Toss Winner", "Count", counts)
}

func venuesChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Venue"), topK)
	return barFigure("Matches by Venue", "Matches", counts)
}

func venueShareChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Venue"), topK)
	return donutFigure("Top 10 Venues", counts)
}

func seriesShareChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Series"), topK)
	return donutFigure("Top 10 Series", counts)
}

func yearsChart(d *Dataset) (renderable, error) {
	pts := countByYear(d.Matches, "Start Date")
	if len(pts) == 0 {
		return nil, errNoData
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.Year)
		ys[i] = float64(p.Count)
	}
	return chart.Chart{
		Title:  "Matches Over Years",
		Height: 420,
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: wholeNumberFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Matches",
			ValueFormatter: wholeNumberFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}, nil
}

func teamDetailChart(d *Dataset) (renderable, error) {
	counts := topCounts(valueCounts(d.Matches, "Team 1", "Team 2"), 0)
	if len(counts) == 0 {
		return nil, errNoData
	}
	xs := make([]float64, len(counts))
	ys := make([]float64, len(counts))
	ticks := make([]chart.Tick, len(counts))
	for i, lc := range counts {
		xs[i] = float64(i + 1)
		ys[i] = float64(lc.Count)
		ticks[i] = chart.Tick{Value: float64(i + 1), Label: lc.Label}
	}
	return chart.Chart{
		Title:  "Matches per Team (Detailed)",
		Height: 420,
		XAxis: chart.XAxis{
			Ticks:     ticks,
			TickStyle: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:           "Total Matches",
			ValueFormatter: wholeNumberFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				// points only, no connecting line
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    6,
					DotColor:    chart.ColorOrange,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}, nil
}

func barFigure(title, yName string, counts []labelCount) (renderable, error) {
	if len(counts) == 0 {
		return nil, errNoData
	}
	bars := make([]chart.Value, 0, len(counts))
	for i, lc := range counts {
		bars = append(bars, chart.Value{
			Label: lc.Label,
			Value: float64(lc.Count),
			Style: chart.Style{FillColor: barPalette[i%len(barPalette)]},
		})
	}
	return chart.BarChart{
		Title:      title,
		Height:     420,
		BarWidth:   48,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		YAxis: chart.YAxis{
			Name:           yName,
			ValueFormatter: wholeNumberFormatter,
		},
		Bars: bars,
	}, nil
}

func donutFigure(title string, counts []labelCount) (renderable, error) {
	if len(counts) == 0 {
		return nil, errNoData
	}
	vals := make([]chart.Value, 0, len(counts))
	for _, lc := range counts {
		vals = append(vals, chart.Value{Label: lc.Label, Value: float64(lc.Count)})
	}
	return chart.DonutChart{
		Title:  title,
		Width:  512,
		Height: 420,
		Values: vals,
	}, nil
}

func wholeNumberFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f + 0.5))
	}
	return ""
}
