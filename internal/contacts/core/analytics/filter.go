package analytics

import (
	"contact-analytics-service/internal/contacts/core/domain"
)

// Apply returns the records of set satisfying every specified predicate of f,
// in input order. Topic predicates use ContainsSubstring on the raw field.
func Apply(set domain.ContactSet, f domain.Filters) domain.ContactSet {
	n := f.Normalized()
	out := make([]domain.ContactRecord, 0, len(set.Records))
	for _, r := range set.Records {
		if Matches(r, n) {
			out = append(out, r)
		}
	}
	return set.WithRecords(out)
}

// Matches evaluates f against a single record. f is expected to be
// normalized.
func Matches(r domain.ContactRecord, f domain.Filters) bool {
	if f.DateFrom != nil && r.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if end := f.EndBound(); end != nil && r.CreatedAt.After(*end) {
		return false
	}
	if f.Channel != "" && r.Channel != f.Channel {
		return false
	}
	if f.PrimaryTopic != "" && !ContainsSubstring(r.TopicsPrimary, f.PrimaryTopic) {
		return false
	}
	if f.SecondaryTopic != "" && !ContainsSubstring(r.TopicsSecondary, f.SecondaryTopic) {
		return false
	}
	if f.Age != "" && r.Age != f.Age {
		return false
	}
	if f.Gender != "" && r.Gender != f.Gender {
		return false
	}
	return true
}
