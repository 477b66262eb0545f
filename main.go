package main

//go:generate go run github.com/a-h/templ/cmd/templ generate

import (
	"errors"
	"net/http"
	"strings"

	"cricbuzz-dashboard/templates"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"
)

// server holds everything a request needs: config, logger, and the
// dataset snapshot loaded once in main.
type server struct {
	cfg  *Config
	log  *logrus.Logger
	data *Dataset
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig()

	data, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("loading datasets: %v", err)
	}
	log.WithFields(logrus.Fields{
		"matches": rowCount(data.Matches),
		"teams":   rowCount(data.Teams),
		"series":  rowCount(data.Series),
		"venues":  rowCount(data.Venues),
	}).Info("datasets loaded")

	s := &server{cfg: cfg, log: log, data: data}

	http.HandleFunc("/", s.homeHandler)
	http.HandleFunc("/metrics", s.metricsHandler)
	http.HandleFunc("/visuals", s.visualsHandler)
	http.HandleFunc("/profile", s.profileHandler)
	http.HandleFunc("/charts/", s.chartHandler)

	log.Infof("🏏 Cricbuzz dashboard is running on http://localhost%s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func (s *server) homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(templates.Home()).ServeHTTP(w, r)
}

func (s *server) profileHandler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.Profile()).ServeHTTP(w, r)
}

func (s *server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	d := s.data

	kpis := []templates.Metric{
		{Label: "Total Matches", Value: humanize.Comma(int64(rowCount(d.Matches)))},
		{Label: "Total Teams", Value: humanize.Comma(int64(rowCount(d.Teams)))},
		{Label: "Total Series", Value: humanize.Comma(int64(rowCount(d.Series)))},
		{Label: "Total Venues", Value: humanize.Comma(int64(rowCount(d.Venues)))},
		{Label: "Most Played Venue", Value: columnMode(d.Matches, "Venue")},
		{Label: "Upcoming Matches", Value: humanize.Comma(int64(categoryCount(d.Matches, "Match Category", "upcoming")))},
		{Label: "Live Matches", Value: humanize.Comma(int64(categoryCount(d.Matches, "Match Category", "live")))},
		{Label: "Recent Matches", Value: humanize.Comma(int64(categoryCount(d.Matches, "Match Category", "recent")))},
	}

	page := templates.MetricsPageData{
		KPIs:        kpis,
		Tables:      tableNames(),
		Selected:    tableNames()[0],
		HasCategory: len(valueCounts(d.Matches, "Match Category")) > 0,
	}
	page.QuickCols, page.QuickRows = tablePreview(d.Matches, 10)

	if choice := r.URL.Query().Get("table"); choice != "" {
		page.Selected = choice
	}
	if r.URL.Query().Get("generate") != "" {
		if t, ok := d.Table(page.Selected); ok {
			page.ShowTable = true
			page.TableCols, page.TableRows = tablePreview(t, 20)
		}
	}

	templ.Handler(templates.MetricsPage(page)).ServeHTTP(w, r)
}

func (s *server) visualsHandler(w http.ResponseWriter, r *http.Request) {
	cards := make([]templates.ChartCard, 0, len(chartCatalog))
	for _, def := range chartCatalog {
		_, err := def.Build(s.data)
		cards = append(cards, templates.ChartCard{
			Slug:    def.Slug,
			Title:   def.Title,
			HasData: err == nil,
		})
	}
	templ.Handler(templates.VisualsPage(cards)).ServeHTTP(w, r)
}

// chartHandler serves /charts/<slug>.png for every entry in the catalog.
func (s *server) chartHandler(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/charts/"), ".png")
	def, ok := chartBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	graph, err := def.Build(s.data)
	if errors.Is(err, errNoData) {
		http.Error(w, "no data for chart "+slug, http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.WithError(err).Errorf("building chart %s", slug)
		http.Error(w, "chart failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, w); err != nil {
		s.log.WithError(err).Errorf("rendering chart %s", slug)
	}
}
