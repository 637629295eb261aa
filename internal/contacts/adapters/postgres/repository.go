package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

const contactsTable = "jegyzokonyv"

type RowScanner interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ContactRepository struct {
	db DB
}

func NewContactRepository(db DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// FetchContacts selects every column of the contacts table, newest first.
// The end date is widened by one day and compared inclusively, so a day
// given as `to` is fully covered.
func (r *ContactRepository) FetchContacts(ctx context.Context, f ports.FetchFilter) (*domain.ContactSet, error) {
	var conds []string
	var args []any
	argIndex := 1

	if f.From != nil {
		conds = append(conds, fmt.Sprintf("%s >= $%d", domain.ColCreatedAt, argIndex))
		args = append(args, *f.From)
		argIndex++
	}
	if f.To != nil {
		conds = append(conds, fmt.Sprintf("%s <= $%d", domain.ColCreatedAt, argIndex))
		args = append(args, f.To.AddDate(0, 0, 1))
		argIndex++
	}
	if f.TopicSubstring != nil {
		conds = append(conds, fmt.Sprintf("%s LIKE $%d", domain.ColTopicsPrimary, argIndex))
		args = append(args, "%"+*f.TopicSubstring+"%")
		argIndex++
	}
	if f.Channel != nil {
		conds = append(conds, fmt.Sprintf("%s = $%d", domain.ColChannel, argIndex))
		args = append(args, *f.Channel)
	}

	query := "SELECT j.* FROM " + contactsTable + " j"
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY " + domain.ColCreatedAt + " DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	set := &domain.ContactSet{Columns: cols, Records: []domain.ContactRecord{}}
	values := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		rec, err := toRecord(cols, values)
		if err != nil {
			return nil, err
		}
		set.Records = append(set.Records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// DatabaseStats summarizes the whole table, ignoring any filter.
func (r *ContactRepository) DatabaseStats(ctx context.Context) (*domain.DatabaseStats, error) {
	query := `
SELECT
    COUNT(*) AS total_records,
    MIN(letrehozva) AS min_date,
    MAX(letrehozva) AS max_date,
    COUNT(DISTINCT csatorna) AS unique_channels
FROM ` + contactsTable

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &domain.DatabaseStats{}
	if rows.Next() {
		var total, unique int64
		var minDate, maxDate any
		if err := rows.Scan(&total, &minDate, &maxDate, &unique); err != nil {
			return nil, err
		}
		stats.TotalRecords = total
		stats.UniqueChannels = unique
		if t, ok := minDate.(time.Time); ok {
			stats.MinCreatedAt = &t
		}
		if t, ok := maxDate.(time.Time); ok {
			stats.MaxCreatedAt = &t
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func toRecord(cols []string, values []any) (domain.ContactRecord, error) {
	var rec domain.ContactRecord
	for i, col := range cols {
		v := values[i]
		switch col {
		case domain.ColID:
			rec.ID = text(v)
		case domain.ColProtocolID:
			rec.ProtocolID = text(v)
		case domain.ColCreatedAt:
			t, err := timestamp(v)
			if err != nil {
				return rec, fmt.Errorf("column %s: %w", col, err)
			}
			rec.CreatedAt = t
		case domain.ColChannel:
			rec.Channel = text(v)
		case domain.ColCallerName:
			rec.CallerName = text(v)
		case domain.ColAge:
			rec.Age = text(v)
		case domain.ColGender:
			rec.Gender = text(v)
		case domain.ColGenderIdentity:
			rec.GenderIdentity = text(v)
		case domain.ColShortLong:
			rec.ShortLong = boolean(v)
		case domain.ColClientSince:
			rec.ClientSince = text(v)
		case domain.ColLivesWith:
			rec.LivesWith = text(v)
		case domain.ColDuration:
			rec.DurationMinutes = number(v)
		case domain.ColTopicsPrimary:
			rec.TopicsPrimary = text(v)
		case domain.ColTopicsSecondary:
			rec.TopicsSecondary = text(v)
		case domain.ColHelp:
			rec.Help = text(v)
		case domain.ColProfessional:
			rec.Professional = text(v)
		case domain.ColTraits:
			rec.Traits = text(v)
		case domain.ColContactType:
			rec.ContactType = text(v)
		case domain.ColCreatedBy:
			rec.CreatedBy = text(v)
		default:
			if rec.Extra == nil {
				rec.Extra = map[string]string{}
			}
			rec.Extra[col] = text(v)
		}
	}
	return rec, nil
}

// text renders a driver value the way it would be exported. lib/pq hands
// back numeric columns as []byte.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}

func timestamp(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return x, nil
	default:
		s := text(x)
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
	}
}

func boolean(v any) *bool {
	switch x := v.(type) {
	case bool:
		return &x
	case nil:
		return nil
	default:
		b, err := strconv.ParseBool(strings.TrimSpace(text(x)))
		if err != nil {
			return nil
		}
		return &b
	}
}

func number(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case int64:
		f := float64(x)
		return &f
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(text(x)), 64)
		if err != nil {
			return nil
		}
		return &f
	}
}
