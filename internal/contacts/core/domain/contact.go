package domain

import (
	"strconv"
	"strings"
	"time"
)

// Column names of the jegyzokonyv table.
const (
	ColID              = "id"
	ColProtocolID      = "jegyzokonyv_azonosito"
	ColCreatedAt       = "letrehozva"
	ColChannel         = "csatorna"
	ColCallerName      = "megkereso_neve"
	ColAge             = "eletkor"
	ColGender          = "nem"
	ColGenderIdentity  = "nemi_identitasa"
	ColShortLong       = "rovid_hosszu"
	ColClientSince     = "miota_megkeresonk"
	ColLivesWith       = "kivel_el"
	ColDuration        = "hivas_hossza"
	ColTopicsPrimary   = "temak_listanezet"
	ColTopicsSecondary = "altemak_listanezet"
	ColHelp            = "segitseg_listanezet"
	ColProfessional    = "szakember_listanezet"
	ColTraits          = "jellemzok_listanezet"
	ColContactType     = "megkereses_tipus"
	ColCreatedBy       = "letrehozo_neve"
)

// ContactRecord is one logged helpline contact. Nullable columns are either
// pointers or empty strings.
type ContactRecord struct {
	ID              string
	ProtocolID      string
	CreatedAt       time.Time
	Channel         string
	CallerName      string
	Age             string // integer or label, "" when absent
	Gender          string
	GenderIdentity  string
	ShortLong       *bool
	ClientSince     string
	LivesWith       string
	DurationMinutes *float64
	TopicsPrimary   string
	TopicsSecondary string
	Help            string
	Professional    string
	Traits          string
	ContactType     string
	CreatedBy       string

	// Extra holds columns outside the known schema, keyed by column name.
	Extra map[string]string
}

// AgeYears returns the numeric age when the field holds a number.
func (r ContactRecord) AgeYears() (float64, bool) {
	s := strings.TrimSpace(r.Age)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Value renders a column of the record as text, the way it is exported.
func (r ContactRecord) Value(column string) string {
	switch column {
	case ColID:
		return r.ID
	case ColProtocolID:
		return r.ProtocolID
	case ColCreatedAt:
		if r.CreatedAt.IsZero() {
			return ""
		}
		return r.CreatedAt.Format("2006-01-02 15:04:05")
	case ColChannel:
		return r.Channel
	case ColCallerName:
		return r.CallerName
	case ColAge:
		return r.Age
	case ColGender:
		return r.Gender
	case ColGenderIdentity:
		return r.GenderIdentity
	case ColShortLong:
		if r.ShortLong == nil {
			return ""
		}
		return strconv.FormatBool(*r.ShortLong)
	case ColClientSince:
		return r.ClientSince
	case ColLivesWith:
		return r.LivesWith
	case ColDuration:
		if r.DurationMinutes == nil {
			return ""
		}
		return strconv.FormatFloat(*r.DurationMinutes, 'f', -1, 64)
	case ColTopicsPrimary:
		return r.TopicsPrimary
	case ColTopicsSecondary:
		return r.TopicsSecondary
	case ColHelp:
		return r.Help
	case ColProfessional:
		return r.Professional
	case ColTraits:
		return r.Traits
	case ColContactType:
		return r.ContactType
	case ColCreatedBy:
		return r.CreatedBy
	default:
		return r.Extra[column]
	}
}

// ContactSet is an immutable snapshot of fetched records together with the
// columns that were present in the fetched schema.
type ContactSet struct {
	Columns []string
	Records []ContactRecord
}

// HasColumn reports whether the fetched schema contained the column.
func (s ContactSet) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (s ContactSet) Len() int { return len(s.Records) }

// WithRecords returns a set sharing the schema of s but holding recs.
func (s ContactSet) WithRecords(recs []ContactRecord) ContactSet {
	return ContactSet{Columns: s.Columns, Records: recs}
}

// DatabaseStats summarizes the whole contact table.
type DatabaseStats struct {
	TotalRecords   int64
	MinCreatedAt   *time.Time
	MaxCreatedAt   *time.Time
	UniqueChannels int64
}
