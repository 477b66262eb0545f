package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartTestDataset() *Dataset {
	matches := dataframe.New(
		series.New([]string{"Lord's", "Lord's", "Eden Gardens"}, series.String, "Venue"),
		series.New([]string{"London", "London", "Kolkata"}, series.String, "City"),
		series.New([]string{"England", "England", "India"}, series.String, "Team 1"),
		series.New([]string{"India", "Australia", "Australia"}, series.String, "Team 2"),
		series.New([]string{"India tour of England 2025", "The Ashes 2025-26", "Border-Gavaskar Trophy 2023"}, series.String, "Series"),
		series.New([]string{"live", "Live", "recent"}, series.String, "Match Category"),
		series.New([]string{"2023-01-05", "", "2023-06-01"}, series.String, "Start Date"),
		series.New([]string{"England", "", "India"}, series.String, "Toss Winner"),
	)
	return &Dataset{Matches: matches}
}

func emptyDataset() *Dataset {
	blank := func(col string) series.Series {
		return series.New([]string{"", ""}, series.String, col)
	}
	matches := dataframe.New(
		blank("Venue"), blank("City"), blank("Team 1"), blank("Team 2"),
		blank("Series"), blank("Match Category"), blank("Start Date"), blank("Toss Winner"),
	)
	return &Dataset{Matches: matches}
}

func TestEveryChartBuildsFromData(t *testing.T) {
	d := chartTestDataset()

	for _, def := range append([]chartDef{categoryDef}, chartCatalog...) {
		graph, err := def.Build(d)
		require.NoError(t, err, def.Slug)
		require.NotNil(t, graph, def.Slug)
	}
}

func TestEveryChartReportsNoDataOnAllNullColumns(t *testing.T) {
	d := emptyDataset()

	for _, def := range append([]chartDef{categoryDef}, chartCatalog...) {
		_, err := def.Build(d)
		assert.ErrorIs(t, err, errNoData, def.Slug)
	}
}

func TestChartHandlerServesPNG(t *testing.T) {
	s := &server{log: logrus.New(), data: chartTestDataset()}

	req := httptest.NewRequest(http.MethodGet, "/charts/category.png", nil)
	rec := httptest.NewRecorder()
	s.chartHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestChartHandlerUnknownSlug(t *testing.T) {
	s := &server{log: logrus.New(), data: chartTestDataset()}

	req := httptest.NewRequest(http.MethodGet, "/charts/nope.png", nil)
	rec := httptest.NewRecorder()
	s.chartHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChartHandlerEmptySeriesIsNotAnError(t *testing.T) {
	s := &server{log: logrus.New(), data: emptyDataset()}

	req := httptest.NewRequest(http.MethodGet, "/charts/years.png", nil)
	rec := httptest.NewRecorder()
	s.chartHandler(rec, req)

	// degraded, not crashed
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
