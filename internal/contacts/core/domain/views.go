package domain

// ViewStatus tells a renderer which placeholder, if any, to show.
type ViewStatus string

const (
	StatusOK               ViewStatus = "ok"
	StatusNoData           ViewStatus = "no_data"
	StatusFieldUnavailable ViewStatus = "field_unavailable"
	StatusSkipped          ViewStatus = "skipped"
)

// Point is one labelled count.
type Point struct {
	Label string
	Count int
}

// CountSeries is an ordered sequence of (label, count) points.
type CountSeries struct {
	Status ViewStatus
	Field  string
	Points []Point
}

// CategoryBreakdown is a ranked count per category.
type CategoryBreakdown struct {
	Status  ViewStatus
	Field   string
	Entries []Point
}

// Total sums all entry counts.
func (b CategoryBreakdown) Total() int {
	n := 0
	for _, e := range b.Entries {
		n += e.Count
	}
	return n
}

// Count returns the count for label, or 0.
func (b CategoryBreakdown) Count(label string) int {
	for _, e := range b.Entries {
		if e.Label == label {
			return e.Count
		}
	}
	return 0
}

// CrossTab counts records per (period, group). Counts[i][j] belongs to
// Periods[i] and Groups[j].
type CrossTab struct {
	Status  ViewStatus
	Field   string
	Periods []string
	Groups  []string
	Counts  [][]int
}

// Count returns the cell for (period, group), or 0 when either is unknown.
func (c CrossTab) Count(period, group string) int {
	pi, gi := -1, -1
	for i, p := range c.Periods {
		if p == period {
			pi = i
			break
		}
	}
	for j, g := range c.Groups {
		if g == group {
			gi = j
			break
		}
	}
	if pi < 0 || gi < 0 {
		return 0
	}
	return c.Counts[pi][gi]
}

// Bucket is one histogram bin over [Lower, Upper). The last bucket of a
// distribution also includes Upper.
type Bucket struct {
	Lower float64
	Upper float64
	Label string
	Count int
}

// DistributionBuckets is an ordered histogram.
type DistributionBuckets struct {
	Status  ViewStatus
	Field   string
	Buckets []Bucket
}

// Total sums all bucket counts.
func (d DistributionBuckets) Total() int {
	n := 0
	for _, b := range d.Buckets {
		n += b.Count
	}
	return n
}
