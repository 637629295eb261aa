package fiber

import (
	"time"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/usecase"
)

const dateLayout = "2006-01-02"

// ContactQuery is the shared filter query string of the read endpoints.
type ContactQuery struct {
	From           string `query:"from" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	To             string `query:"to" validate:"omitempty,datetime=2006-01-02" example:"2024-03-31"`
	Channel        string `query:"channel" validate:"omitempty,max=64" example:"Chat"`
	PrimaryTopic   string `query:"primary_topic" validate:"omitempty,max=128" example:"Magány"`
	SecondaryTopic string `query:"secondary_topic" validate:"omitempty,max=128"`
	Age            string `query:"age" validate:"omitempty,max=16" example:"16"`
	Gender         string `query:"gender" validate:"omitempty,max=64"`
}

// ExportQuery adds the file format to ContactQuery.
type ExportQuery struct {
	Format string `query:"format" validate:"omitempty,oneof=csv xlsx" example:"csv"`
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func (q ContactQuery) toInput() usecase.ContactQueryInput {
	return usecase.ContactQueryInput{
		From:           parseDay(q.From),
		To:             parseDay(q.To),
		Channel:        q.Channel,
		PrimaryTopic:   q.PrimaryTopic,
		SecondaryTopic: q.SecondaryTopic,
		Age:            q.Age,
		Gender:         q.Gender,
	}
}

type FiltersResponse struct {
	From           *string `json:"from,omitempty" example:"2024-01-01"`
	To             *string `json:"to,omitempty" example:"2024-03-31"`
	Channel        string  `json:"channel,omitempty"`
	PrimaryTopic   string  `json:"primary_topic,omitempty"`
	SecondaryTopic string  `json:"secondary_topic,omitempty"`
	Age            string  `json:"age,omitempty"`
	Gender         string  `json:"gender,omitempty"`
}

func formatDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toFiltersResponse(f domain.Filters) FiltersResponse {
	return FiltersResponse{
		From:           formatDay(f.DateFrom),
		To:             formatDay(f.DateTo),
		Channel:        f.Channel,
		PrimaryTopic:   f.PrimaryTopic,
		SecondaryTopic: f.SecondaryTopic,
		Age:            f.Age,
		Gender:         f.Gender,
	}
}

type KPIResponse struct {
	Name    string  `json:"name" example:"Total Contacts"`
	Status  string  `json:"status" example:"ok"`
	Value   float64 `json:"value" example:"1234"`
	Display string  `json:"display" example:"1,234"`
}

type SeriesResponse struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type ChartResponse struct {
	Kind        string           `json:"kind" example:"line"`
	Title       string           `json:"title"`
	XLabel      string           `json:"x_label,omitempty"`
	YLabel      string           `json:"y_label,omitempty"`
	Categories  []string         `json:"categories"`
	Series      []SeriesResponse `json:"series"`
	Colors      []string         `json:"colors,omitempty"`
	ColorScale  string           `json:"color_scale,omitempty"`
	LineWidth   int              `json:"line_width,omitempty"`
	Markers     bool             `json:"markers,omitempty"`
	TextInfo    string           `json:"text_info,omitempty"`
	Orientation string           `json:"orientation,omitempty"`
	Height      int              `json:"height,omitempty"`
}

type PanelResponse struct {
	ID      string         `json:"id" example:"monthly_trend"`
	Title   string         `json:"title"`
	Status  string         `json:"status" example:"ok"`
	Message string         `json:"message,omitempty"`
	Chart   *ChartResponse `json:"chart,omitempty"`
}

type WarningResponse struct {
	Code    string `json:"code" example:"empty_result"`
	Message string `json:"message"`
}

type DashboardResponse struct {
	Filters  FiltersResponse   `json:"filters"`
	RowCount int               `json:"row_count"`
	KPIs     []KPIResponse     `json:"kpis"`
	Panels   []PanelResponse   `json:"panels"`
	Warnings []WarningResponse `json:"warnings"`
}

func toKPIResponse(k domain.KPI) KPIResponse {
	return KPIResponse{Name: k.Name, Status: string(k.Status), Value: k.Value, Display: k.Display}
}

func toChartResponse(s domain.ChartSpec) *ChartResponse {
	series := make([]SeriesResponse, 0, len(s.Series))
	for _, sr := range s.Series {
		series = append(series, SeriesResponse{Name: sr.Name, Values: sr.Values})
	}
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return &ChartResponse{
		Kind:        string(s.Kind),
		Title:       s.Title,
		XLabel:      s.XLabel,
		YLabel:      s.YLabel,
		Categories:  categories,
		Series:      series,
		Colors:      s.Colors,
		ColorScale:  s.ColorScale,
		LineWidth:   s.LineWidth,
		Markers:     s.Markers,
		TextInfo:    s.TextInfo,
		Orientation: s.Orientation,
		Height:      s.Height,
	}
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Filters:  toFiltersResponse(d.Filters),
		RowCount: d.RowCount,
		KPIs: []KPIResponse{
			toKPIResponse(d.KPIs.TotalContacts),
			toKPIResponse(d.KPIs.AverageAge),
			toKPIResponse(d.KPIs.LongConversations),
			toKPIResponse(d.KPIs.Girls),
		},
		Panels:   make([]PanelResponse, 0, len(d.Panels)),
		Warnings: make([]WarningResponse, 0, len(d.Warnings)),
	}
	for _, p := range d.Panels {
		pr := PanelResponse{ID: p.ID, Title: p.Title, Status: string(p.Status), Message: p.Message}
		if p.Status == domain.StatusOK {
			pr.Chart = toChartResponse(p.Chart)
		}
		resp.Panels = append(resp.Panels, pr)
	}
	for _, w := range d.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{Code: w.Code, Message: w.Message})
	}
	return resp
}

type ContactsResponse struct {
	Filters FiltersResponse     `json:"filters"`
	Count   int                 `json:"count" example:"2"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

func toContactsResponse(set *domain.ContactSet, f domain.Filters) ContactsResponse {
	resp := ContactsResponse{
		Filters: toFiltersResponse(f),
		Count:   set.Len(),
		Columns: set.Columns,
		Rows:    make([]map[string]string, 0, set.Len()),
	}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	for _, r := range set.Records {
		row := make(map[string]string, len(set.Columns))
		for _, c := range set.Columns {
			row[c] = r.Value(c)
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}

type StatsResponse struct {
	TotalRecords   int64   `json:"total_records" example:"15230"`
	MinDate        *string `json:"min_date,omitempty" example:"2021-01-04"`
	MaxDate        *string `json:"max_date,omitempty" example:"2024-06-30"`
	UniqueChannels int64   `json:"unique_channels" example:"4"`
}

func toStatsResponse(s *domain.DatabaseStats) StatsResponse {
	return StatsResponse{
		TotalRecords:   s.TotalRecords,
		MinDate:        formatDay(s.MinCreatedAt),
		MaxDate:        formatDay(s.MaxCreatedAt),
		UniqueChannels: s.UniqueChannels,
	}
}

type FilterOptionsResponse struct {
	Categories []string `json:"categories"`
	Channels   []string `json:"channels"`
}

type RefreshResponse struct {
	Status string `json:"status" example:"refreshed"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"from must be a valid date (YYYY-MM-DD)"`
}
