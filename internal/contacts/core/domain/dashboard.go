package domain

// ChartKind is the rendering family of a chart.
type ChartKind string

const (
	ChartLine      ChartKind = "line"
	ChartBar       ChartKind = "bar"
	ChartPie       ChartKind = "pie"
	ChartHistogram ChartKind = "histogram"
)

// ChartSeries is one named value series aligned with ChartSpec.Categories.
type ChartSeries struct {
	Name   string
	Values []float64
}

// ChartSpec describes a chart for an external charting collaborator.
type ChartSpec struct {
	Kind        ChartKind
	Title       string
	XLabel      string
	YLabel      string
	Categories  []string
	Series      []ChartSeries
	Colors      []string
	ColorScale  string
	LineWidth   int
	Markers     bool
	TextInfo    string // pie only, e.g. "percent+label"
	Orientation string // "v" or "h"
	Height      int
	Placeholder string // set when there is nothing to draw
}

// Panel is one chart slot of the dashboard.
type Panel struct {
	ID      string
	Title   string
	Status  ViewStatus
	Message string
	Chart   ChartSpec
}

// KPI is one headline number. Display holds the formatted value.
type KPI struct {
	Name    string
	Status  ViewStatus
	Value   float64
	Display string
}

// KPIs are the dashboard's headline numbers.
type KPIs struct {
	TotalContacts     KPI
	AverageAge        KPI
	LongConversations KPI
	Girls             KPI
}

// Warning is a non-fatal condition of a render pass.
type Warning struct {
	Code    string
	Message string
}

const WarningEmptyResult = "empty_result"

// Dashboard is the result of one render pass.
type Dashboard struct {
	Filters  Filters
	RowCount int
	KPIs     KPIs
	Panels   []Panel
	Warnings []Warning
}

// Panel returns the panel with the given id.
func (d Dashboard) Panel(id string) (Panel, bool) {
	for _, p := range d.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}
