package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Columns every downstream aggregation expects on the match table.
// Missing ones are backfilled with nulls at load time so nothing has to
// check for presence later.
var expectedMatchCols = []string{
	"Venue", "City", "Team 1", "Team 2",
	"Series", "Match Category", "Start Date", "Toss Winner",
}

// Dataset is the immutable snapshot loaded once at startup and passed
// explicitly to everything that aggregates or renders. Nothing mutates
// it after load.
type Dataset struct {
	Matches dataframe.DataFrame
	Teams   dataframe.DataFrame
	Series  dataframe.DataFrame
	Venues  dataframe.DataFrame
}

// tableNames lists the selectable tables in display order.
func tableNames() []string {
	return []string{"Matches", "Teams", "Series", "Venues"}
}

// Table looks a table up by its display name.
func (d *Dataset) Table(name string) (dataframe.DataFrame, bool) {
	switch name {
	case "Matches":
		return d.Matches, true
	case "Teams":
		return d.Teams, true
	case "Series":
		return d.Series, true
	case "Venues":
		return d.Venues, true
	}
	return dataframe.DataFrame{}, false
}

// loadDataset reads the four CSV files into the snapshot. A missing or
// unreadable file is an error; the dashboard is useless without its data
// so the caller treats that as fatal. Everything else degrades: missing
// match columns are backfilled with nulls and unparseable dates become
// null instead of aborting the load.
func loadDataset(cfg *Config) (*Dataset, error) {
	matches, err := readTable(cfg.matchesPath())
	if err != nil {
		return nil, err
	}
	teams, err := readTable(cfg.teamsPath())
	if err != nil {
		return nil, err
	}
	seriesTable, err := readTable(cfg.seriesPath())
	if err != nil {
		return nil, err
	}
	venues, err := readTable(cfg.venuesPath())
	if err != nil {
		return nil, err
	}

	matches = ensureMatchColumns(matches)
	matches = normalizeDates(matches, "Start Date")

	return &Dataset{
		Matches: matches,
		Teams:   teams,
		Series:  seriesTable,
		Venues:  venues,
	}, nil
}

// readTable loads one CSV with every column kept as text, so empty cells
// stay empty instead of being coerced into typed zero values.
func readTable(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

// ensureMatchColumns backfills any expected column that is absent from
// the source file with an all-null column.
func ensureMatchColumns(df dataframe.DataFrame) dataframe.DataFrame {
	have := make(map[string]bool)
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, col := range expectedMatchCols {
		if have[col] {
			continue
		}
		blanks := make([]string, df.Nrow())
		df = df.Mutate(series.New(blanks, series.String, col))
	}
	return df
}

// Date formats seen in cricbuzz exports, most common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 02, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"01/02/2006",
}

// normalizeDates rewrites a date column to canonical YYYY-MM-DD, nulling
// anything that does not parse. Canonical values re-parse to themselves,
// so running it twice is a no-op.
func normalizeDates(df dataframe.DataFrame, col string) dataframe.DataFrame {
	src := df.Col(col)
	out := make([]string, src.Len())
	for i := 0; i < src.Len(); i++ {
		if t, ok := parseDate(src.Elem(i).String()); ok {
			out[i] = t.Format("2006-01-02")
		}
	}
	return df.Mutate(series.New(out, series.String, col))
}

// parseDate tries each known layout in turn. It never errors: a value
// either parses or is reported as absent.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if isNull(raw) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isNull is the single definition of a missing cell: CSV blanks stay ""
// and gota marks NA elements as "NaN".
func isNull(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "NaN"
}

// tablePreview returns the header and up to limit rows of a table.
func tablePreview(df dataframe.DataFrame, limit int) ([]string, [][]string) {
	records := df.Records()
	if len(records) == 0 {
		return nil, nil
	}
	header, rows := records[0], records[1:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return header, rows
}
