package domain

import (
	"strings"
	"time"
)

// Sentinel choices meaning "no constraint".
const (
	AllSentinel         = "All"
	AllCategories       = "All Categories"
	AllChannels         = "All Channels"
	DefaultWindowInDays = 90
)

// IsAll reports whether a filter value is unspecified.
func IsAll(v string) bool {
	switch strings.TrimSpace(v) {
	case "", AllSentinel, AllCategories, AllChannels:
		return true
	}
	return false
}

// Filters is the analyst's selection for one render pass. It is a value type
// and never mutated after construction.
type Filters struct {
	DateFrom       *time.Time // inclusive, start of day
	DateTo         *time.Time // inclusive whole day
	Channel        string
	PrimaryTopic   string
	SecondaryTopic string
	Age            string
	Gender         string
}

// Normalized returns a copy with sentinel values cleared and whitespace
// trimmed so that equal selections produce equal filters.
func (f Filters) Normalized() Filters {
	clean := func(v string) string {
		if IsAll(v) {
			return ""
		}
		return strings.TrimSpace(v)
	}
	return Filters{
		DateFrom:       f.DateFrom,
		DateTo:         f.DateTo,
		Channel:        clean(f.Channel),
		PrimaryTopic:   clean(f.PrimaryTopic),
		SecondaryTopic: clean(f.SecondaryTopic),
		Age:            clean(f.Age),
		Gender:         clean(f.Gender),
	}
}

// EndBound returns DateTo widened by one day. Records are kept while
// CreatedAt <= EndBound, in the database query and in memory alike.
func (f Filters) EndBound() *time.Time {
	if f.DateTo == nil {
		return nil
	}
	t := f.DateTo.AddDate(0, 0, 1)
	return &t
}
