package ports

import (
	"context"
	"time"

	"contact-analytics-service/internal/contacts/core/domain"
)

// FetchFilter is what the record store can evaluate itself. Remaining
// predicates are applied in memory by the analytics package.
type FetchFilter struct {
	From           *time.Time // letrehozva >= From
	To             *time.Time // letrehozva <= To + 1 day
	TopicSubstring *string    // temak_listanezet LIKE %v%
	Channel        *string    // csatorna = v
}

// Key renders the full filter tuple as a cache key.
func (f FetchFilter) Key() string {
	day := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02")
	}
	str := func(s *string) string {
		if s == nil {
			return "-"
		}
		return "=" + *s
	}
	return day(f.From) + "|" + day(f.To) + "|" + str(f.TopicSubstring) + "|" + str(f.Channel)
}

// FetchFilterFrom keeps the store-side part of the analyst filters.
func FetchFilterFrom(f domain.Filters) FetchFilter {
	n := f.Normalized()
	out := FetchFilter{From: n.DateFrom, To: n.DateTo}
	if n.PrimaryTopic != "" {
		v := n.PrimaryTopic
		out.TopicSubstring = &v
	}
	if n.Channel != "" {
		v := n.Channel
		out.Channel = &v
	}
	return out
}

type ContactReaderPort interface {
	// FetchContacts returns the matching rows sorted by letrehozva descending.
	FetchContacts(ctx context.Context, f FetchFilter) (*domain.ContactSet, error)
	DatabaseStats(ctx context.Context) (*domain.DatabaseStats, error)
}

// CacheInvalidator drops cached reads.
type CacheInvalidator interface {
	Invalidate()
}
