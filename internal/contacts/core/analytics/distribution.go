package analytics

import (
	"math"
	"strconv"

	"contact-analytics-service/internal/contacts/core/domain"
)

const (
	AgeBins      = 20
	DurationBins = 30
)

// AgeDistribution buckets numeric ages into AgeBins equal-width bins over the
// observed min..max. Absent or non-numeric ages are skipped.
func AgeDistribution(set domain.ContactSet) domain.DistributionBuckets {
	return distribution(set, domain.ColAge, AgeBins, func(r domain.ContactRecord) (float64, bool) {
		return r.AgeYears()
	})
}

// DurationDistribution buckets conversation minutes into DurationBins bins.
func DurationDistribution(set domain.ContactSet) domain.DistributionBuckets {
	return distribution(set, domain.ColDuration, DurationBins, func(r domain.ContactRecord) (float64, bool) {
		if r.DurationMinutes == nil {
			return 0, false
		}
		return *r.DurationMinutes, true
	})
}

func distribution(set domain.ContactSet, column string, bins int, value func(domain.ContactRecord) (float64, bool)) domain.DistributionBuckets {
	res := domain.DistributionBuckets{Field: column, Buckets: []domain.Bucket{}}
	if !set.HasColumn(column) {
		res.Status = domain.StatusFieldUnavailable
		return res
	}
	values := make([]float64, 0, len(set.Records))
	for _, r := range set.Records {
		v, ok := value(r)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		res.Status = domain.StatusNoData
		return res
	}
	res.Buckets = Histogram(values, bins)
	res.Status = domain.StatusOK
	return res
}

// Histogram splits values into bins equal-width buckets spanning min..max.
// The last bucket is closed on the right. When every value is equal the
// range is widened by 0.5 on both sides.
func Histogram(values []float64, bins int) []domain.Bucket {
	if len(values) == 0 || bins <= 0 {
		return []domain.Bucket{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	buckets := make([]domain.Bucket, bins)
	for i := range buckets {
		lower := lo + float64(i)*width
		upper := lo + float64(i+1)*width
		if i == bins-1 {
			upper = hi
		}
		buckets[i] = domain.Bucket{
			Lower: lower,
			Upper: upper,
			Label: formatBound(lower) + "-" + formatBound(upper),
		}
	}
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		buckets[i].Count++
	}
	return buckets
}

func formatBound(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
