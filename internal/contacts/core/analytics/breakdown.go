package analytics

import (
	"slices"
	"strings"

	"contact-analytics-service/internal/contacts/core/domain"
)

const (
	TopicBreakdownLimit = 15
	TopicTrendTopK      = 5
)

// counter counts labels and remembers first-seen order for tie breaks.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) empty() bool { return len(c.order) == 0 }

// ranked returns counts descending, ties in first-seen order. limit <= 0
// keeps everything.
func (c *counter) ranked(limit int) []domain.Point {
	labels := slices.Clone(c.order)
	slices.SortStableFunc(labels, func(a, b string) int {
		return c.counts[b] - c.counts[a]
	})
	if limit > 0 && len(labels) > limit {
		labels = labels[:limit]
	}
	out := make([]domain.Point, 0, len(labels))
	for _, l := range labels {
		out = append(out, domain.Point{Label: l, Count: c.counts[l]})
	}
	return out
}

func categoryBreakdown(set domain.ContactSet, column string, value func(domain.ContactRecord) string, limit int) domain.CategoryBreakdown {
	res := domain.CategoryBreakdown{Field: column, Entries: []domain.Point{}}
	if !set.HasColumn(column) {
		res.Status = domain.StatusFieldUnavailable
		return res
	}
	c := newCounter()
	for _, r := range set.Records {
		v := strings.TrimSpace(value(r))
		if v == "" {
			continue
		}
		c.add(v)
	}
	if c.empty() {
		res.Status = domain.StatusNoData
		return res
	}
	res.Status = domain.StatusOK
	res.Entries = c.ranked(limit)
	return res
}

// ChannelBreakdown counts contacts per channel, most used first.
func ChannelBreakdown(set domain.ContactSet) domain.CategoryBreakdown {
	return categoryBreakdown(set, domain.ColChannel, func(r domain.ContactRecord) string { return r.Channel }, 0)
}

// GenderSplit counts contacts per gender identity, most frequent first.
func GenderSplit(set domain.ContactSet) domain.CategoryBreakdown {
	return categoryBreakdown(set, domain.ColGenderIdentity, func(r domain.ContactRecord) string { return r.GenderIdentity }, 0)
}

// TopicBreakdown counts topic mentions of field and keeps the top limit
// labels. A record naming a topic twice contributes two mentions.
func TopicBreakdown(set domain.ContactSet, field TopicField, limit int) domain.CategoryBreakdown {
	res := domain.CategoryBreakdown{Field: field.Column, Entries: []domain.Point{}}
	if !set.HasColumn(field.Column) {
		res.Status = domain.StatusFieldUnavailable
		return res
	}
	c := topicMentions(set, field)
	if c.empty() {
		res.Status = domain.StatusNoData
		return res
	}
	res.Status = domain.StatusOK
	res.Entries = c.ranked(limit)
	return res
}

func topicMentions(set domain.ContactSet, field TopicField) *counter {
	c := newCounter()
	for _, r := range set.Records {
		for _, t := range field.Decode(r) {
			c.add(t)
		}
	}
	return c
}
