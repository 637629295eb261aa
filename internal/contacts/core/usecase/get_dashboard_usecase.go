package usecase

import (
	"context"

	"contact-analytics-service/internal/contacts/core/analytics"
	"contact-analytics-service/internal/contacts/core/chart"
	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

// Panel ids of the dashboard response.
const (
	PanelMonthlyTrend     = "monthly_trend"
	PanelWeeklyPattern    = "weekly_pattern"
	PanelHourlyPattern    = "hourly_pattern"
	PanelGender           = "gender"
	PanelAge              = "age"
	PanelChannels         = "channels"
	PanelChannelOverTime  = "channel_over_time"
	PanelTopics           = "topics"
	PanelTopicTrend       = "topic_trend"
	PanelSecondaryTopics  = "secondary_topics"
	PanelDuration         = "duration"
	emptyResultMessage    = "No data found for the selected filters."
	topicsFilteredMessage = "Showing data filtered by: "
)

type GetDashboardUseCase struct {
	reader ports.ContactReaderPort
	opts   Options
}

func NewGetDashboardUseCase(reader ports.ContactReaderPort, opts Options) *GetDashboardUseCase {
	return &GetDashboardUseCase{reader: reader, opts: opts.withDefaults()}
}

// Execute runs one render pass: validate, fetch, filter, aggregate, map to
// charts. Only a data access failure or invalid input returns an error; an
// empty selection yields placeholders and a warning.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in ContactQueryInput) (*domain.Dashboard, error) {
	f, err := uc.opts.resolveFilters(in)
	if err != nil {
		return nil, err
	}

	set, err := loadFiltered(ctx, uc.reader, f)
	if err != nil {
		return nil, err
	}

	d := &domain.Dashboard{
		Filters:  f,
		RowCount: set.Len(),
		KPIs:     analytics.ComputeKPIs(set),
		Panels:   uc.panels(set, f),
	}
	if set.Len() == 0 {
		d.Warnings = append(d.Warnings, domain.Warning{
			Code:    domain.WarningEmptyResult,
			Message: emptyResultMessage,
		})
	}
	return d, nil
}

func (uc *GetDashboardUseCase) panels(set domain.ContactSet, f domain.Filters) []domain.Panel {
	primary, secondary := uc.opts.PrimaryTopics, uc.opts.SecondaryTopics

	monthly := analytics.MonthlyTrend(set)
	weekly := analytics.WeekdayPattern(set)
	hourly := analytics.HourlyPattern(set)
	gender := analytics.GenderSplit(set)
	age := analytics.AgeDistribution(set)
	channels := analytics.ChannelBreakdown(set)
	channelTime := analytics.ChannelOverTime(set)
	topicTrend := analytics.TopicTrend(set, primary, analytics.TopicTrendTopK)
	secondaryTopics := analytics.TopicBreakdown(set, secondary, analytics.TopicBreakdownLimit)
	duration := analytics.DurationDistribution(set)

	panels := []domain.Panel{
		panel(PanelMonthlyTrend, monthly.Status, chart.MonthlyTrend(monthly)),
		panel(PanelWeeklyPattern, weekly.Status, chart.Weekday(weekly)),
		panel(PanelHourlyPattern, hourly.Status, chart.Hourly(hourly)),
		panel(PanelGender, gender.Status, chart.Gender(gender)),
		panel(PanelAge, age.Status, chart.Age(age)),
		panel(PanelChannels, channels.Status, chart.Channels(channels)),
		panel(PanelChannelOverTime, channelTime.Status, chart.ChannelOverTime(channelTime)),
	}

	// A topic filter makes the breakdown degenerate, so it is replaced by a note.
	if f.PrimaryTopic != "" {
		panels = append(panels, domain.Panel{
			ID:      PanelTopics,
			Title:   "Mental Health Topics",
			Status:  domain.StatusSkipped,
			Message: topicsFilteredMessage + f.PrimaryTopic,
		})
	} else {
		topics := analytics.TopicBreakdown(set, primary, analytics.TopicBreakdownLimit)
		panels = append(panels, panel(PanelTopics, topics.Status, chart.Topics(topics, "Top 15 Mental Health Topics")))
	}

	panels = append(panels,
		panel(PanelTopicTrend, topicTrend.Status, chart.TopicTrend(topicTrend)),
		panel(PanelSecondaryTopics, secondaryTopics.Status, chart.Topics(secondaryTopics, "Top 15 Subtopics")),
		panel(PanelDuration, duration.Status, chart.Duration(duration)),
	)
	return panels
}

func panel(id string, status domain.ViewStatus, spec domain.ChartSpec) domain.Panel {
	return domain.Panel{
		ID:      id,
		Title:   spec.Title,
		Status:  status,
		Message: spec.Placeholder,
		Chart:   spec,
	}
}
