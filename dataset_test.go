package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testConfig(t *testing.T, matchesCSV string) *Config {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "matches.csv", matchesCSV)
	writeFile(t, dir, "teams.csv", "Team Name\nIndia\nAustralia\n")
	writeFile(t, dir, "series.csv", "Series Name\nAsia Cup 2022\n")
	writeFile(t, dir, "venues.csv", "Venue Name\nLord's\n")
	return &Config{
		DataDir:     dir,
		MatchesFile: "matches.csv",
		TeamsFile:   "teams.csv",
		SeriesFile:  "series.csv",
		VenuesFile:  "venues.csv",
	}
}

func TestLoadBackfillsMissingMatchColumns(t *testing.T) {
	// no Toss Winner, Start Date, Match Category, ... in the source file
	cfg := testConfig(t, "Venue,City\nLord's,London\nEden Gardens,Kolkata\n")

	d, err := loadDataset(cfg)
	require.NoError(t, err)

	names := d.Matches.Names()
	for _, col := range expectedMatchCols {
		assert.Contains(t, names, col)
	}

	// backfilled columns are entirely null
	assert.Equal(t, "N/A", columnMode(d.Matches, "Toss Winner"))
	assert.Equal(t, 0, categoryCount(d.Matches, "Match Category", "upcoming"))
	assert.Empty(t, countByYear(d.Matches, "Start Date"))

	// columns that were present are untouched
	assert.Equal(t, 2, rowCount(d.Matches))
	assert.Len(t, valueCounts(d.Matches, "Venue"), 2)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	cfg := testConfig(t, "Venue\nLord's\n")
	require.NoError(t, os.Remove(filepath.Join(cfg.DataDir, cfg.MatchesFile)))

	_, err := loadDataset(cfg)
	assert.Error(t, err)
}

func TestDateNormalizationIsTotalAndIdempotent(t *testing.T) {
	cfg := testConfig(t, `Venue,Start Date
Lord's,2023-01-05
Wankhede Stadium,"Mar 22, 2024"
Eden Gardens,not-a-date
Adelaide Oval,
`)

	d, err := loadDataset(cfg)
	require.NoError(t, err)

	got := d.Matches.Col("Start Date").Records()
	assert.Equal(t, []string{"2023-01-05", "2024-03-22", "", ""}, got)

	// a second pass changes nothing
	again := normalizeDates(d.Matches, "Start Date").Col("Start Date").Records()
	assert.Equal(t, got, again)
}

func TestParseDateNeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []string{"", "NaN", "not-a-date", "2023-13-45", "  ", "TBC"} {
		_, ok := parseDate(raw)
		assert.False(t, ok, "expected %q to be treated as null", raw)
	}

	ts, ok := parseDate("Jan 2, 2023")
	require.True(t, ok)
	assert.Equal(t, "2023-01-02", ts.Format("2006-01-02"))
}

func TestTablePreviewLimitsRows(t *testing.T) {
	cfg := testConfig(t, "Venue\nA\nB\nC\nD\n")

	d, err := loadDataset(cfg)
	require.NoError(t, err)

	header, rows := tablePreview(d.Matches, 2)
	assert.Contains(t, header, "Venue")
	assert.Len(t, rows, 2)

	_, all := tablePreview(d.Matches, 20)
	assert.Len(t, all, 4)
}

func TestTableLookup(t *testing.T) {
	cfg := testConfig(t, "Venue\nLord's\n")

	d, err := loadDataset(cfg)
	require.NoError(t, err)

	for _, name := range tableNames() {
		_, ok := d.Table(name)
		assert.True(t, ok, name)
	}
	_, ok := d.Table("Nope")
	assert.False(t, ok)
}
