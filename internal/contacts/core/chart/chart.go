// Package chart maps derived views to chart specifications. The functions are
// pure; the style policy per chart type lives here and nowhere else.
package chart

import (
	"contact-analytics-service/internal/contacts/core/domain"
)

const (
	lineColor    = "#4A90E2"
	ageColor     = "#50C878"
	lineWidth    = 3
	defaultH     = 400
	topicsHeight = 600

	noData = "No data available"
)

var pastel = []string{
	"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
	"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B3B3B3",
}

// placeholder returns the text shown instead of a chart, or "" when the
// view has data.
func placeholder(status domain.ViewStatus, noDataText, field string) string {
	switch status {
	case domain.StatusOK:
		return ""
	case domain.StatusFieldUnavailable:
		return field + " not available in data source"
	default:
		return noDataText
	}
}

func labelsAndValues(points []domain.Point) ([]string, []float64) {
	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		values = append(values, float64(p.Count))
	}
	return labels, values
}

// MonthlyTrend draws contacts per month as a marked line.
func MonthlyTrend(v domain.CountSeries) domain.ChartSpec {
	labels, values := labelsAndValues(v.Points)
	return domain.ChartSpec{
		Kind:        domain.ChartLine,
		Title:       "Monthly Contact Trends",
		XLabel:      "Month",
		YLabel:      "Total Contacts",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "contacts", Values: values}},
		Colors:      []string{lineColor},
		LineWidth:   lineWidth,
		Markers:     true,
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, noData, v.Field),
	}
}

// Weekday draws the Monday-first weekly pattern.
func Weekday(v domain.CountSeries) domain.ChartSpec {
	labels, values := labelsAndValues(v.Points)
	return domain.ChartSpec{
		Kind:        domain.ChartBar,
		Title:       "Weekly Pattern",
		XLabel:      "Day",
		YLabel:      "Contacts",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "contacts", Values: values}},
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, noData, v.Field),
	}
}

// Hourly draws contacts per hour of day.
func Hourly(v domain.CountSeries) domain.ChartSpec {
	labels, values := labelsAndValues(v.Points)
	return domain.ChartSpec{
		Kind:        domain.ChartLine,
		Title:       "Hourly Pattern",
		XLabel:      "Hour",
		YLabel:      "Contacts",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "contacts", Values: values}},
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, noData, v.Field),
	}
}

// Channels draws the ranked channel breakdown.
func Channels(v domain.CategoryBreakdown) domain.ChartSpec {
	labels, values := labelsAndValues(v.Entries)
	return domain.ChartSpec{
		Kind:        domain.ChartBar,
		Title:       "Contact Channels",
		XLabel:      "Channel",
		YLabel:      "Count",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "Count", Values: values}},
		ColorScale:  "Blues",
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, "No channel data available", v.Field),
	}
}

// Gender draws the gender identity split as a pie with label and percent.
func Gender(v domain.CategoryBreakdown) domain.ChartSpec {
	labels, values := labelsAndValues(v.Entries)
	colors := make([]string, 0, len(labels))
	for i := range labels {
		colors = append(colors, pastel[i%len(pastel)])
	}
	return domain.ChartSpec{
		Kind:        domain.ChartPie,
		Title:       "Gender Distribution",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "contacts", Values: values}},
		Colors:      colors,
		TextInfo:    "percent+label",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, "No gender data available", v.Field),
	}
}

// Topics draws the top topics as horizontal bars, largest first.
func Topics(v domain.CategoryBreakdown, title string) domain.ChartSpec {
	labels, values := labelsAndValues(v.Entries)
	return domain.ChartSpec{
		Kind:        domain.ChartBar,
		Title:       title,
		XLabel:      "Number of Mentions",
		YLabel:      "Topic",
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "mentions", Values: values}},
		ColorScale:  "Reds",
		Orientation: "h",
		Height:      topicsHeight,
		Placeholder: placeholder(v.Status, "No topic data available", v.Field),
	}
}

func histogram(v domain.DistributionBuckets, title, xLabel, yLabel, noDataText string, colors []string) domain.ChartSpec {
	labels := make([]string, 0, len(v.Buckets))
	values := make([]float64, 0, len(v.Buckets))
	for _, b := range v.Buckets {
		labels = append(labels, b.Label)
		values = append(values, float64(b.Count))
	}
	return domain.ChartSpec{
		Kind:        domain.ChartHistogram,
		Title:       title,
		XLabel:      xLabel,
		YLabel:      yLabel,
		Categories:  labels,
		Series:      []domain.ChartSeries{{Name: "count", Values: values}},
		Colors:      colors,
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, noDataText, v.Field),
	}
}

// Age draws the age histogram.
func Age(v domain.DistributionBuckets) domain.ChartSpec {
	return histogram(v, "Age Distribution", "Age", "Number of Contacts", "No age data available", []string{ageColor})
}

// Duration draws the conversation length histogram.
func Duration(v domain.DistributionBuckets) domain.ChartSpec {
	return histogram(v, "Conversation Length Distribution", "Duration (minutes)", "Number of Conversations", "No conversation length data", nil)
}

func crossTab(v domain.CrossTab, title, yLabel, noDataText string) domain.ChartSpec {
	series := make([]domain.ChartSeries, 0, len(v.Groups))
	for j, g := range v.Groups {
		values := make([]float64, len(v.Periods))
		for i := range v.Periods {
			values[i] = float64(v.Counts[i][j])
		}
		series = append(series, domain.ChartSeries{Name: g, Values: values})
	}
	return domain.ChartSpec{
		Kind:        domain.ChartLine,
		Title:       title,
		XLabel:      "Month",
		YLabel:      yLabel,
		Categories:  append([]string{}, v.Periods...),
		Series:      series,
		Orientation: "v",
		Height:      defaultH,
		Placeholder: placeholder(v.Status, noDataText, v.Field),
	}
}

// ChannelOverTime draws one line per channel across months.
func ChannelOverTime(v domain.CrossTab) domain.ChartSpec {
	return crossTab(v, "Channel Usage Over Time", "Contacts", "No channel data available")
}

// TopicTrend draws one line per top topic across months.
func TopicTrend(v domain.CrossTab) domain.ChartSpec {
	return crossTab(v, "Topic Trends Over Time", "Mentions", "No topic data available")
}
