package usecase

import (
	"context"
	"errors"
	"time"

	"contact-analytics-service/internal/contacts/core/analytics"
	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

var (
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// ContactQueryInput is the analyst's raw selection. Empty strings and the
// "All ..." sentinels mean no constraint.
type ContactQueryInput struct {
	From           *time.Time
	To             *time.Time
	Channel        string
	PrimaryTopic   string
	SecondaryTopic string
	Age            string
	Gender         string
}

// Options are shared by the contact usecases.
type Options struct {
	PrimaryTopics   analytics.TopicField
	SecondaryTopics analytics.TopicField
	// DefaultWindowDays fills a missing date range with the last N days.
	// Zero or negative leaves it open.
	DefaultWindowDays int
	Now               func() time.Time
}

// DefaultOptions mirrors the production configuration defaults.
func DefaultOptions() Options {
	return Options{
		PrimaryTopics:     analytics.PrimaryTopics(analytics.DefaultTopicDelimiter),
		SecondaryTopics:   analytics.SecondaryTopics(analytics.DefaultTopicDelimiter),
		DefaultWindowDays: domain.DefaultWindowInDays,
		Now:               time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PrimaryTopics.Column == "" {
		o.PrimaryTopics = d.PrimaryTopics
	}
	if o.SecondaryTopics.Column == "" {
		o.SecondaryTopics = d.SecondaryTopics
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// resolveFilters validates in and turns it into the immutable filter value of
// one pass.
func (o Options) resolveFilters(in ContactQueryInput) (domain.Filters, error) {
	from, to := in.From, in.To
	if from == nil && to == nil && o.DefaultWindowDays > 0 {
		today := truncateDay(o.Now())
		start := today.AddDate(0, 0, -o.DefaultWindowDays)
		from, to = &start, &today
	}
	if from != nil {
		t := truncateDay(*from)
		from = &t
	}
	if to != nil {
		t := truncateDay(*to)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return domain.Filters{}, ErrInvalidDateRange
	}

	f := domain.Filters{
		DateFrom:       from,
		DateTo:         to,
		Channel:        in.Channel,
		PrimaryTopic:   in.PrimaryTopic,
		SecondaryTopic: in.SecondaryTopic,
		Age:            in.Age,
		Gender:         in.Gender,
	}
	return f.Normalized(), nil
}

// loadFiltered fetches the store-side selection and applies every predicate
// in memory.
func loadFiltered(ctx context.Context, reader ports.ContactReaderPort, f domain.Filters) (domain.ContactSet, error) {
	set, err := reader.FetchContacts(ctx, ports.FetchFilterFrom(f))
	if err != nil {
		return domain.ContactSet{}, domain.NewDataAccessError("fetch contacts", err)
	}
	if set == nil {
		return domain.ContactSet{}, nil
	}
	return analytics.Apply(*set, f), nil
}

// ListContactsUseCase returns the filtered raw rows.
type ListContactsUseCase struct {
	reader ports.ContactReaderPort
	opts   Options
}

func NewListContactsUseCase(reader ports.ContactReaderPort, opts Options) *ListContactsUseCase {
	return &ListContactsUseCase{reader: reader, opts: opts.withDefaults()}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, in ContactQueryInput) (*domain.ContactSet, domain.Filters, error) {
	f, err := uc.opts.resolveFilters(in)
	if err != nil {
		return nil, domain.Filters{}, err
	}
	set, err := loadFiltered(ctx, uc.reader, f)
	if err != nil {
		return nil, f, err
	}
	return &set, f, nil
}

// FilterOptions are the choices offered for the select filters, each led by
// its "All" sentinel.
type FilterOptions struct {
	Categories []string
	Channels   []string
}

func GetFilterOptions() FilterOptions {
	return FilterOptions{
		Categories: append([]string{domain.AllCategories}, analytics.ReferenceCategories()...),
		Channels:   append([]string{domain.AllChannels}, analytics.KnownChannels()...),
	}
}
