package analytics

import (
	"strings"

	"contact-analytics-service/internal/contacts/core/domain"
)

// DefaultTopicDelimiter is the separator of the *_listanezet columns in
// current data. Older exports used ";" so it stays configurable per field.
const DefaultTopicDelimiter = ","

// TopicField names a multi-valued topic column and its delimiter.
type TopicField struct {
	Column    string
	Delimiter string
}

// PrimaryTopics is the temak_listanezet field.
func PrimaryTopics(delimiter string) TopicField {
	return TopicField{Column: domain.ColTopicsPrimary, Delimiter: orDefault(delimiter)}
}

// SecondaryTopics is the altemak_listanezet field.
func SecondaryTopics(delimiter string) TopicField {
	return TopicField{Column: domain.ColTopicsSecondary, Delimiter: orDefault(delimiter)}
}

func orDefault(d string) string {
	if d == "" {
		return DefaultTopicDelimiter
	}
	return d
}

// Raw returns the undecoded field value of r.
func (f TopicField) Raw(r domain.ContactRecord) string {
	switch f.Column {
	case domain.ColTopicsPrimary:
		return r.TopicsPrimary
	case domain.ColTopicsSecondary:
		return r.TopicsSecondary
	default:
		return r.Value(f.Column)
	}
}

// Decode splits the field of r into topic labels.
func (f TopicField) Decode(r domain.ContactRecord) []string {
	return DecodeTopics(f.Raw(r), f.Delimiter)
}

// DecodeTopics splits raw on delimiter, trims every part and drops empty
// parts. Order is kept and repeats are not removed: each occurrence is one
// mention.
func DecodeTopics(raw, delimiter string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	if delimiter == "" {
		return []string{strings.TrimSpace(raw)}
	}
	parts := strings.Split(raw, delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ContainsSubstring is the topic filter policy: value matches when it occurs
// anywhere in the raw delimited string, so "Önsértés" also matches
// "Önsértés gondolata".
func ContainsSubstring(raw, value string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(raw, value)
}

// ContainsExact reports whether value is one of the decoded labels of raw.
func ContainsExact(raw, delimiter, value string) bool {
	for _, t := range DecodeTopics(raw, delimiter) {
		if t == value {
			return true
		}
	}
	return false
}

// referenceCategories is the known főtéma vocabulary. Data may carry labels
// outside this list.
var referenceCategories = []string{
	"Általános lehangoltság",
	"Szorongás, félelmek",
	"Öngyilkossági gondolat",
	"Öngyilkossági késztetés",
	"Akut öngyilkossági kísérlet",
	"Önsértés",
	"Önsértés gondolata",
	"Akut önsértés (nem szuicid szándékkal)",
	"Evészavarok",
	"Diagnosztizált pszichés betegség",
	"Indulatkontroll zavar",
	"Pánik jellegű tünetek",
	"Magány",
	"Önértékelési probléma",
	"Bűntudat, megbánás",
	"Másért való aggódás",
	"Veszteség, gyász",
	"Vetélés",
	"Agresszív késztetések",
	"Pszichés ellátás",
	"Pszichés ellátás hiánya",
	"Szomatikus betegség",
	"Pozitív érzelmek megosztás",
	"Öngyilkosság mint téma",
}

// ReferenceCategories returns a copy of the known topic vocabulary.
func ReferenceCategories() []string {
	out := make([]string, len(referenceCategories))
	copy(out, referenceCategories)
	return out
}

// KnownChannels are the channel choices offered for filtering.
func KnownChannels() []string {
	return []string{"Telefon", "Chat", "Email", "Egyéb"}
}
