package main

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
)

func frameWith(col string, vals []string) dataframe.DataFrame {
	return dataframe.New(series.New(vals, series.String, col))
}

func TestCategoryCountIgnoresCase(t *testing.T) {
	df := frameWith("Match Category", []string{"live", "Live", "recent"})

	assert.Equal(t, 2, categoryCount(df, "Match Category", "live"))
	assert.Equal(t, 1, categoryCount(df, "Match Category", "recent"))
	assert.Equal(t, 0, categoryCount(df, "Match Category", "upcoming"))
}

func TestCategoryCountAllNullIsZero(t *testing.T) {
	df := frameWith("Match Category", []string{"", "", ""})

	assert.Equal(t, 0, categoryCount(df, "Match Category", "live"))
}

func TestCategoryCountsBoundedByTotal(t *testing.T) {
	df := frameWith("Match Category", []string{"live", "Live", "recent", "", "upcoming", "other"})

	total := rowCount(df)
	sum := 0
	for _, target := range []string{"live", "recent", "upcoming"} {
		n := categoryCount(df, "Match Category", target)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, total)
		sum += n
	}
	assert.LessOrEqual(t, sum, total)
}

func TestColumnMode(t *testing.T) {
	df := frameWith("Venue", []string{"Lord's", "Wankhede Stadium", "Lord's", ""})

	assert.Equal(t, "Lord's", columnMode(df, "Venue"))
}

func TestColumnModeTieBreaksLexicographically(t *testing.T) {
	df := frameWith("Venue", []string{"Wankhede Stadium", "Eden Gardens"})

	assert.Equal(t, "Eden Gardens", columnMode(df, "Venue"))
}

func TestColumnModeAllNullReturnsSentinel(t *testing.T) {
	df := frameWith("Toss Winner", []string{"", "", ""})

	assert.Equal(t, "N/A", columnMode(df, "Toss Winner"))
}

func TestValueCountsUnionOfColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"India", "England", ""}, series.String, "Team 1"),
		series.New([]string{"Australia", "India", "India"}, series.String, "Team 2"),
	)

	counts := valueCounts(df, "Team 1", "Team 2")

	assert.Equal(t, []labelCount{
		{Label: "India", Count: 3},
		{Label: "England", Count: 1},
		{Label: "Australia", Count: 1},
	}, counts)
}

func TestTopCountsTruncatesAndKeepsTieOrder(t *testing.T) {
	counts := []labelCount{
		{Label: "a", Count: 1},
		{Label: "b", Count: 3},
		{Label: "c", Count: 1},
		{Label: "d", Count: 3},
	}

	top := topCounts(counts, 3)

	// descending by count, ties in first-appearance order
	assert.Equal(t, []labelCount{
		{Label: "b", Count: 3},
		{Label: "d", Count: 3},
		{Label: "a", Count: 1},
	}, top)

	// the input is left untouched
	assert.Equal(t, "a", counts[0].Label)
}

func TestTopCountsZeroMeansAll(t *testing.T) {
	counts := []labelCount{{Label: "a", Count: 2}, {Label: "b", Count: 1}}

	assert.Len(t, topCounts(counts, 0), 2)
}

func TestCountByYearSkipsMalformedDates(t *testing.T) {
	df := frameWith("Start Date", []string{"2023-01-05", "not-a-date", "2023-06-01"})
	df = normalizeDates(df, "Start Date")

	assert.Equal(t, []yearCount{{Year: 2023, Count: 2}}, countByYear(df, "Start Date"))
}

func TestCountByYearAscendingYears(t *testing.T) {
	df := frameWith("Start Date", []string{"2024-03-22", "2022-06-02", "2023-11-19", "2022-09-11"})

	assert.Equal(t, []yearCount{
		{Year: 2022, Count: 2},
		{Year: 2023, Count: 1},
		{Year: 2024, Count: 1},
	}, countByYear(df, "Start Date"))
}

func TestCountByYearAllNullIsEmpty(t *testing.T) {
	df := frameWith("Start Date", []string{"", "", ""})

	assert.Empty(t, countByYear(df, "Start Date"))
}
