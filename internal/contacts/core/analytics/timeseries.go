package analytics

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"contact-analytics-service/internal/contacts/core/domain"
)

const monthLayout = "2006-01"

// weekdayOrder is the canonical Monday-first week.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// MonthKey is the period label of t.
func MonthKey(t time.Time) string { return t.Format(monthLayout) }

// MonthlyTrend counts contacts per calendar month in chronological order.
func MonthlyTrend(set domain.ContactSet) domain.CountSeries {
	res := domain.CountSeries{Field: domain.ColCreatedAt, Points: []domain.Point{}}
	if !set.HasColumn(domain.ColCreatedAt) {
		res.Status = domain.StatusFieldUnavailable
		return res
	}
	counts := map[string]int{}
	for _, r := range set.Records {
		if r.CreatedAt.IsZero() {
			continue
		}
		counts[MonthKey(r.CreatedAt)]++
	}
	if len(counts) == 0 {
		res.Status = domain.StatusNoData
		return res
	}
	for _, m := range sortedKeys(counts) {
		res.Points = append(res.Points, domain.Point{Label: m, Count: counts[m]})
	}
	res.Status = domain.StatusOK
	return res
}

// WeekdayPattern always returns seven buckets, Monday to Sunday.
func WeekdayPattern(set domain.ContactSet) domain.CountSeries {
	counts := map[time.Weekday]int{}
	res := domain.CountSeries{Field: domain.ColCreatedAt}
	if set.HasColumn(domain.ColCreatedAt) {
		for _, r := range set.Records {
			if r.CreatedAt.IsZero() {
				continue
			}
			counts[r.CreatedAt.Weekday()]++
		}
	}
	res.Points = make([]domain.Point, 0, len(weekdayOrder))
	for _, d := range weekdayOrder {
		res.Points = append(res.Points, domain.Point{Label: d.String(), Count: counts[d]})
	}
	res.Status = seriesStatus(set, len(counts) > 0)
	return res
}

// HourlyPattern always returns 24 buckets, hour 0 to 23.
func HourlyPattern(set domain.ContactSet) domain.CountSeries {
	var counts [24]int
	seen := false
	res := domain.CountSeries{Field: domain.ColCreatedAt}
	if set.HasColumn(domain.ColCreatedAt) {
		for _, r := range set.Records {
			if r.CreatedAt.IsZero() {
				continue
			}
			counts[r.CreatedAt.Hour()]++
			seen = true
		}
	}
	res.Points = make([]domain.Point, 0, 24)
	for h, n := range counts {
		res.Points = append(res.Points, domain.Point{Label: strconv.Itoa(h), Count: n})
	}
	res.Status = seriesStatus(set, seen)
	return res
}

func seriesStatus(set domain.ContactSet, seen bool) domain.ViewStatus {
	switch {
	case !set.HasColumn(domain.ColCreatedAt):
		return domain.StatusFieldUnavailable
	case !seen:
		return domain.StatusNoData
	default:
		return domain.StatusOK
	}
}

// ChannelOverTime cross-tabulates months (chronological) with channels
// (first seen in input order).
func ChannelOverTime(set domain.ContactSet) domain.CrossTab {
	res := emptyCrossTab(domain.ColChannel)
	if missing := missingColumn(set, domain.ColCreatedAt, domain.ColChannel); missing != "" {
		res.Field = missing
		res.Status = domain.StatusFieldUnavailable
		return res
	}

	type cell struct{ month, channel string }
	cells := map[cell]int{}
	months := map[string]struct{}{}
	var channels []string
	seenChannel := map[string]struct{}{}

	for _, r := range set.Records {
		ch := strings.TrimSpace(r.Channel)
		if r.CreatedAt.IsZero() || ch == "" {
			continue
		}
		m := MonthKey(r.CreatedAt)
		months[m] = struct{}{}
		if _, ok := seenChannel[ch]; !ok {
			seenChannel[ch] = struct{}{}
			channels = append(channels, ch)
		}
		cells[cell{m, ch}]++
	}
	if len(cells) == 0 {
		res.Status = domain.StatusNoData
		return res
	}

	res.Periods = sortedKeys(months)
	res.Groups = channels
	res.Counts = make([][]int, len(res.Periods))
	for i, m := range res.Periods {
		res.Counts[i] = make([]int, len(channels))
		for j, ch := range channels {
			res.Counts[i][j] = cells[cell{m, ch}]
		}
	}
	res.Status = domain.StatusOK
	return res
}

// TopicTrend picks the top k topics by mentions over the whole set, then
// counts per month the records whose raw field contains each of them.
func TopicTrend(set domain.ContactSet, field TopicField, k int) domain.CrossTab {
	res := emptyCrossTab(field.Column)
	if missing := missingColumn(set, domain.ColCreatedAt, field.Column); missing != "" {
		res.Field = missing
		res.Status = domain.StatusFieldUnavailable
		return res
	}

	top := topicMentions(set, field).ranked(k)
	if len(top) == 0 {
		res.Status = domain.StatusNoData
		return res
	}

	months := map[string]struct{}{}
	for _, r := range set.Records {
		if !r.CreatedAt.IsZero() {
			months[MonthKey(r.CreatedAt)] = struct{}{}
		}
	}
	res.Periods = sortedKeys(months)
	index := make(map[string]int, len(res.Periods))
	res.Counts = make([][]int, len(res.Periods))
	for i, m := range res.Periods {
		index[m] = i
		res.Counts[i] = make([]int, len(top))
	}
	for _, p := range top {
		res.Groups = append(res.Groups, p.Label)
	}

	for _, r := range set.Records {
		if r.CreatedAt.IsZero() {
			continue
		}
		i := index[MonthKey(r.CreatedAt)]
		raw := field.Raw(r)
		for j, topic := range res.Groups {
			if ContainsSubstring(raw, topic) {
				res.Counts[i][j]++
			}
		}
	}
	res.Status = domain.StatusOK
	return res
}

func emptyCrossTab(field string) domain.CrossTab {
	return domain.CrossTab{
		Field:   field,
		Periods: []string{},
		Groups:  []string{},
		Counts:  [][]int{},
	}
}

func missingColumn(set domain.ContactSet, columns ...string) string {
	for _, c := range columns {
		if !set.HasColumn(c) {
			return c
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
