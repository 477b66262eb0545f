package templates

// Metric is one KPI tile on the metrics page.
type Metric struct {
	Label string
	Value string
}

// MetricsPageData carries everything the KPIs & Metrics page renders.
type MetricsPageData struct {
	KPIs []Metric

	QuickCols []string
	QuickRows [][]string

	Tables    []string
	Selected  string
	ShowTable bool
	TableCols []string
	TableRows [][]string

	HasCategory bool
}

// ChartCard is one figure slot on the visualizations page. HasData false
// swaps the image for a placeholder so empty aggregations never 404 an
// <img> tag.
type ChartCard struct {
	Slug    string
	Title   string
	HasData bool
}
