package analytics_test

import (
	"testing"
	"time"

	"contact-analytics-service/internal/contacts/core/analytics"
	"contact-analytics-service/internal/contacts/core/domain"
)

var allColumns = []string{
	domain.ColID, domain.ColProtocolID, domain.ColCreatedAt, domain.ColChannel,
	domain.ColCallerName, domain.ColAge, domain.ColGender, domain.ColGenderIdentity,
	domain.ColShortLong, domain.ColClientSince, domain.ColLivesWith, domain.ColDuration,
	domain.ColTopicsPrimary, domain.ColTopicsSecondary, domain.ColHelp,
	domain.ColProfessional, domain.ColTraits, domain.ColContactType, domain.ColCreatedBy,
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func ptrBool(b bool) *bool        { return &b }
func ptrFloat(f float64) *float64 { return &f }

func set(recs ...domain.ContactRecord) domain.ContactSet {
	return domain.ContactSet{Columns: allColumns, Records: recs}
}

func ids(s domain.ContactSet) []string {
	out := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		out = append(out, r.ID)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sampleSet() domain.ContactSet {
	return set(
		domain.ContactRecord{ID: "1", CreatedAt: at("2024-01-05 10:00"), Channel: "Telefon", Age: "16", Gender: "nő", GenderIdentity: "Lány", TopicsPrimary: "Magány, Önsértés gondolata", TopicsSecondary: "Iskola"},
		domain.ContactRecord{ID: "2", CreatedAt: at("2024-02-10 21:30"), Channel: "Chat", Age: "19", Gender: "férfi", GenderIdentity: "Fiú", TopicsPrimary: "Szorongás, félelmek"},
		domain.ContactRecord{ID: "3", CreatedAt: at("2024-02-20 08:15"), Channel: "Telefon", Age: "16", Gender: "nő", GenderIdentity: "Lány", TopicsPrimary: "Önsértés", TopicsSecondary: "Család; Iskola"},
	)
}

// ------------------------------------------------------------
// DECODE TOPICS
// ------------------------------------------------------------

func TestDecodeTopics(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		delim string
		want  []string
	}{
		{"empty", "", ",", []string{}},
		{"blank", "   ", ",", []string{}},
		{"trims_and_drops_empty", "A, B ,, C", ",", []string{"A", "B", "C"}},
		{"semicolon", "A; B;C", ";", []string{"A", "B", "C"}},
		{"keeps_repeats", "A, B, A", ",", []string{"A", "B", "A"}},
		{"comma_inside_semicolon_field", "Szorongás, félelmek; Magány", ";", []string{"Szorongás, félelmek", "Magány"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.DecodeTopics(tt.raw, tt.delim)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if !equalStrings(got, tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestContainsSubstring_VersusExact(t *testing.T) {
	raw := "Magány, Önsértés gondolata"

	if !analytics.ContainsSubstring(raw, "Önsértés") {
		t.Fatalf("expected substring match for Önsértés")
	}
	if analytics.ContainsExact(raw, ",", "Önsértés") {
		t.Fatalf("expected no exact match for Önsértés")
	}
	if !analytics.ContainsExact(raw, ",", "Önsértés gondolata") {
		t.Fatalf("expected exact match for full label")
	}
	if analytics.ContainsSubstring(raw, "") {
		t.Fatalf("empty value must not match")
	}
}

func TestReferenceCategories(t *testing.T) {
	cats := analytics.ReferenceCategories()
	if len(cats) != 24 {
		t.Fatalf("expected 24 categories, got %d", len(cats))
	}
	cats[0] = "changed"
	if analytics.ReferenceCategories()[0] == "changed" {
		t.Fatalf("ReferenceCategories must return a copy")
	}
}

// ------------------------------------------------------------
// FILTER
// ------------------------------------------------------------

func TestApply_DateRangeIncludesWholeEndDay(t *testing.T) {
	s := set(
		domain.ContactRecord{ID: "before", CreatedAt: at("2024-03-09 23:59")},
		domain.ContactRecord{ID: "start", CreatedAt: at("2024-03-10 00:00")},
		domain.ContactRecord{ID: "late", CreatedAt: at("2024-03-15 23:59")},
		domain.ContactRecord{ID: "after", CreatedAt: at("2024-03-16 00:01")},
	)

	got := analytics.Apply(s, domain.Filters{DateFrom: day("2024-03-10"), DateTo: day("2024-03-15")})

	if !equalStrings(ids(got), []string{"start", "late"}) {
		t.Fatalf("unexpected records: %v", ids(got))
	}
}

func TestApply_TopicSubstringSemantics(t *testing.T) {
	s := set(
		domain.ContactRecord{ID: "a", TopicsPrimary: "Önsértés gondolata"},
		domain.ContactRecord{ID: "b", TopicsPrimary: "Magány"},
		domain.ContactRecord{ID: "c", TopicsSecondary: "Önsértés"},
	)

	got := analytics.Apply(s, domain.Filters{PrimaryTopic: "Önsértés"})
	if !equalStrings(ids(got), []string{"a"}) {
		t.Fatalf("unexpected primary topic match: %v", ids(got))
	}

	got = analytics.Apply(s, domain.Filters{SecondaryTopic: "Önsértés"})
	if !equalStrings(ids(got), []string{"c"}) {
		t.Fatalf("unexpected secondary topic match: %v", ids(got))
	}
}

func TestApply_ExactFieldsAndAllSentinel(t *testing.T) {
	s := sampleSet()

	got := analytics.Apply(s, domain.Filters{Channel: "Telefon", Age: "16", Gender: "nő"})
	if !equalStrings(ids(got), []string{"1", "3"}) {
		t.Fatalf("unexpected records: %v", ids(got))
	}

	got = analytics.Apply(s, domain.Filters{Channel: domain.AllChannels, PrimaryTopic: domain.AllCategories, Gender: domain.AllSentinel})
	if got.Len() != 3 {
		t.Fatalf("sentinels must not constrain, got %d records", got.Len())
	}

	got = analytics.Apply(s, domain.Filters{Channel: "Tele"})
	if got.Len() != 0 {
		t.Fatalf("channel must match exactly, got %v", ids(got))
	}
}

func TestApply_SubsetAndIdempotent(t *testing.T) {
	s := sampleSet()
	f := domain.Filters{DateFrom: day("2024-02-01"), Channel: "Telefon"}

	once := analytics.Apply(s, f)
	twice := analytics.Apply(once, f)

	if !equalStrings(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
	for _, id := range ids(once) {
		found := false
		for _, r := range s.Records {
			if r.ID == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("record %s not in input", id)
		}
	}
	if !equalStrings(once.Columns, s.Columns) {
		t.Fatalf("filter must keep the schema")
	}
}

// ------------------------------------------------------------
// TIME SERIES
// ------------------------------------------------------------

func TestMonthlyTrend_EndToEnd(t *testing.T) {
	s := sampleSet()
	// storage order is not trusted
	s.Records[0], s.Records[2] = s.Records[2], s.Records[0]

	trend := analytics.MonthlyTrend(s)
	if trend.Status != domain.StatusOK {
		t.Fatalf("expected ok, got %s", trend.Status)
	}
	want := []domain.Point{{Label: "2024-01", Count: 1}, {Label: "2024-02", Count: 2}}
	if len(trend.Points) != len(want) {
		t.Fatalf("expected %d points, got %+v", len(want), trend.Points)
	}
	for i := range want {
		if trend.Points[i] != want[i] {
			t.Fatalf("point %d: expected %+v, got %+v", i, want[i], trend.Points[i])
		}
	}

	channels := analytics.ChannelBreakdown(s)
	if channels.Count("Telefon") != 2 || channels.Count("Chat") != 1 || len(channels.Entries) != 2 {
		t.Fatalf("unexpected channel breakdown: %+v", channels.Entries)
	}
	if channels.Entries[0].Label != "Telefon" {
		t.Fatalf("expected Telefon ranked first, got %s", channels.Entries[0].Label)
	}
}

func TestWeekdayAndHourlyPattern_ZeroFilled(t *testing.T) {
	// 2024-01-05 is a Friday
	s := set(
		domain.ContactRecord{ID: "1", CreatedAt: at("2024-01-05 10:00")},
		domain.ContactRecord{ID: "2", CreatedAt: at("2024-01-05 10:45")},
	)

	week := analytics.WeekdayPattern(s)
	if len(week.Points) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(week.Points))
	}
	if week.Points[0].Label != "Monday" || week.Points[6].Label != "Sunday" {
		t.Fatalf("unexpected weekday order: %+v", week.Points)
	}
	if week.Points[4].Count != 2 {
		t.Fatalf("expected 2 on Friday, got %+v", week.Points[4])
	}

	hours := analytics.HourlyPattern(s)
	if len(hours.Points) != 24 {
		t.Fatalf("expected 24 buckets, got %d", len(hours.Points))
	}
	for h, p := range hours.Points {
		want := 0
		if h == 10 {
			want = 2
		}
		if p.Count != want {
			t.Fatalf("hour %d: expected %d, got %d", h, want, p.Count)
		}
	}
}

func TestChannelOverTime(t *testing.T) {
	s := sampleSet()

	ct := analytics.ChannelOverTime(s)
	if ct.Status != domain.StatusOK {
		t.Fatalf("expected ok, got %s", ct.Status)
	}
	if !equalStrings(ct.Periods, []string{"2024-01", "2024-02"}) {
		t.Fatalf("unexpected periods: %v", ct.Periods)
	}
	if !equalStrings(ct.Groups, []string{"Telefon", "Chat"}) {
		t.Fatalf("expected first-seen channel order, got %v", ct.Groups)
	}
	if ct.Count("2024-02", "Telefon") != 1 || ct.Count("2024-02", "Chat") != 1 || ct.Count("2024-01", "Chat") != 0 {
		t.Fatalf("unexpected counts: %v", ct.Counts)
	}
}

func TestTopicTrend_TopKOverWholeSet(t *testing.T) {
	s := set(
		domain.ContactRecord{ID: "1", CreatedAt: at("2024-01-02 09:00"), TopicsPrimary: "A, B"},
		domain.ContactRecord{ID: "2", CreatedAt: at("2024-01-03 09:00"), TopicsPrimary: "A"},
		domain.ContactRecord{ID: "3", CreatedAt: at("2024-02-03 09:00"), TopicsPrimary: "C, A"},
		domain.ContactRecord{ID: "4", CreatedAt: at("2024-02-04 09:00"), TopicsPrimary: "B"},
	)

	ct := analytics.TopicTrend(s, analytics.PrimaryTopics(","), 2)
	if !equalStrings(ct.Groups, []string{"A", "B"}) {
		t.Fatalf("expected top topics [A B], got %v", ct.Groups)
	}
	if ct.Count("2024-01", "A") != 2 || ct.Count("2024-02", "A") != 1 || ct.Count("2024-02", "B") != 1 {
		t.Fatalf("unexpected counts: %v", ct.Counts)
	}
}

// ------------------------------------------------------------
// BREAKDOWNS
// ------------------------------------------------------------

func TestTopicBreakdown_TopNTies(t *testing.T) {
	build := func(order []string) domain.ContactSet {
		var recs []domain.ContactRecord
		for _, label := range order {
			recs = append(recs, domain.ContactRecord{ID: label, TopicsPrimary: label})
		}
		return set(recs...)
	}
	var mentions []string
	for i := 0; i < 10; i++ {
		mentions = append(mentions, "A", "B")
	}
	mentions = append(mentions, "C", "C", "C")

	reversed := make([]string, len(mentions))
	for i := range mentions {
		reversed[len(mentions)-1-i] = mentions[i]
	}

	for _, order := range [][]string{mentions, reversed} {
		b := analytics.TopicBreakdown(build(order), analytics.PrimaryTopics(","), 2)
		if len(b.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %+v", b.Entries)
		}
		if b.Count("A") != 10 || b.Count("B") != 10 || b.Count("C") != 0 {
			t.Fatalf("unexpected entries: %+v", b.Entries)
		}
	}
}

func TestTopicBreakdown_RepeatsCountAsMentions(t *testing.T) {
	s := set(domain.ContactRecord{ID: "1", TopicsPrimary: "Magány, Magány"})

	b := analytics.TopicBreakdown(s, analytics.PrimaryTopics(","), analytics.TopicBreakdownLimit)
	if b.Count("Magány") != 2 {
		t.Fatalf("expected 2 mentions, got %+v", b.Entries)
	}
}

func TestGenderSplit(t *testing.T) {
	b := analytics.GenderSplit(sampleSet())
	if b.Entries[0].Label != "Lány" || b.Entries[0].Count != 2 || b.Total() != 3 {
		t.Fatalf("unexpected gender split: %+v", b.Entries)
	}
}

// ------------------------------------------------------------
// DISTRIBUTIONS
// ------------------------------------------------------------

func TestAgeDistribution(t *testing.T) {
	s := set(
		domain.ContactRecord{ID: "1", Age: "10"},
		domain.ContactRecord{ID: "2", Age: "30"},
		domain.ContactRecord{ID: "3", Age: ""},
		domain.ContactRecord{ID: "4", Age: "ismeretlen"},
	)

	d := analytics.AgeDistribution(s)
	if len(d.Buckets) != analytics.AgeBins {
		t.Fatalf("expected %d buckets, got %d", analytics.AgeBins, len(d.Buckets))
	}
	if d.Total() != 2 {
		t.Fatalf("absent ages must be excluded, total=%d", d.Total())
	}
	if d.Buckets[0].Lower != 10 || d.Buckets[len(d.Buckets)-1].Upper != 30 {
		t.Fatalf("unexpected span %v..%v", d.Buckets[0].Lower, d.Buckets[len(d.Buckets)-1].Upper)
	}
	if d.Buckets[0].Count != 1 || d.Buckets[len(d.Buckets)-1].Count != 1 {
		t.Fatalf("min and max must land in the outer buckets")
	}
	for i := 1; i < len(d.Buckets); i++ {
		if d.Buckets[i].Lower < d.Buckets[i-1].Lower {
			t.Fatalf("buckets not ascending")
		}
	}
}

func TestDurationDistribution_SingleValue(t *testing.T) {
	s := set(
		domain.ContactRecord{ID: "1", DurationMinutes: ptrFloat(12)},
		domain.ContactRecord{ID: "2", DurationMinutes: ptrFloat(12)},
		domain.ContactRecord{ID: "3"},
	)

	d := analytics.DurationDistribution(s)
	if len(d.Buckets) != analytics.DurationBins {
		t.Fatalf("expected %d buckets, got %d", analytics.DurationBins, len(d.Buckets))
	}
	if d.Total() != 2 {
		t.Fatalf("expected 2 values, got %d", d.Total())
	}
	if d.Buckets[0].Lower != 11.5 || d.Buckets[len(d.Buckets)-1].Upper != 12.5 {
		t.Fatalf("expected widened range 11.5..12.5")
	}
}

// ------------------------------------------------------------
// EMPTY & MISSING FIELDS
// ------------------------------------------------------------

func TestReducers_EmptySetNeverFails(t *testing.T) {
	s := set()
	primary := analytics.PrimaryTopics(",")

	statuses := map[string]domain.ViewStatus{
		"monthly":  analytics.MonthlyTrend(s).Status,
		"weekday":  analytics.WeekdayPattern(s).Status,
		"hourly":   analytics.HourlyPattern(s).Status,
		"channels": analytics.ChannelBreakdown(s).Status,
		"ch_time":  analytics.ChannelOverTime(s).Status,
		"gender":   analytics.GenderSplit(s).Status,
		"age":      analytics.AgeDistribution(s).Status,
		"topics":   analytics.TopicBreakdown(s, primary, 15).Status,
		"trend":    analytics.TopicTrend(s, primary, 5).Status,
		"duration": analytics.DurationDistribution(s).Status,
	}
	for name, st := range statuses {
		if st != domain.StatusNoData {
			t.Fatalf("%s: expected no_data, got %s", name, st)
		}
	}
	if n := len(analytics.WeekdayPattern(s).Points); n != 7 {
		t.Fatalf("expected 7 zero buckets on empty input, got %d", n)
	}
}

func TestReducers_FieldUnavailable(t *testing.T) {
	s := domain.ContactSet{
		Columns: []string{domain.ColID, domain.ColCreatedAt},
		Records: []domain.ContactRecord{{ID: "1", CreatedAt: at("2024-01-01 12:00")}},
	}

	if st := analytics.ChannelBreakdown(s).Status; st != domain.StatusFieldUnavailable {
		t.Fatalf("expected field_unavailable, got %s", st)
	}
	ct := analytics.ChannelOverTime(s)
	if ct.Status != domain.StatusFieldUnavailable || ct.Field != domain.ColChannel {
		t.Fatalf("expected missing csatorna, got %s/%s", ct.Status, ct.Field)
	}
	if st := analytics.AgeDistribution(s).Status; st != domain.StatusFieldUnavailable {
		t.Fatalf("expected field_unavailable, got %s", st)
	}
	if st := analytics.MonthlyTrend(s).Status; st != domain.StatusOK {
		t.Fatalf("expected ok for present column, got %s", st)
	}
}

// ------------------------------------------------------------
// KPIs
// ------------------------------------------------------------

func TestComputeKPIs(t *testing.T) {
	s := sampleSet()
	s.Records[0].ShortLong = ptrBool(false)
	s.Records[1].ShortLong = ptrBool(true)

	k := analytics.ComputeKPIs(s)
	if k.TotalContacts.Display != "3" {
		t.Fatalf("unexpected total: %+v", k.TotalContacts)
	}
	if k.AverageAge.Display != "17.0" {
		t.Fatalf("unexpected average age: %+v", k.AverageAge)
	}
	if k.LongConversations.Display != "33%" {
		t.Fatalf("expected rovid_hosszu=false counted as long, got %+v", k.LongConversations)
	}
	if k.Girls.Value != 2 {
		t.Fatalf("unexpected girls: %+v", k.Girls)
	}
}

func TestComputeKPIs_ThousandsAndMissing(t *testing.T) {
	recs := make([]domain.ContactRecord, 1234)
	s := domain.ContactSet{Columns: []string{domain.ColID}, Records: recs}

	k := analytics.ComputeKPIs(s)
	if k.TotalContacts.Display != "1,234" {
		t.Fatalf("expected thousands separator, got %s", k.TotalContacts.Display)
	}
	if k.AverageAge.Status != domain.StatusFieldUnavailable || k.AverageAge.Display != "N/A" {
		t.Fatalf("unexpected average age: %+v", k.AverageAge)
	}
	if k.LongConversations.Status != domain.StatusFieldUnavailable {
		t.Fatalf("unexpected long conversations: %+v", k.LongConversations)
	}
}
