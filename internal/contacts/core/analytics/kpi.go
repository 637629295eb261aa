package analytics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"contact-analytics-service/internal/contacts/core/domain"
)

const (
	notAvailable = "N/A"
	// GirlsLabel is the nemi_identitasa value counted by the Girls KPI.
	GirlsLabel = "Lány"
)

var printer = message.NewPrinter(language.English)

// ComputeKPIs derives the headline numbers of a filtered set.
func ComputeKPIs(set domain.ContactSet) domain.KPIs {
	return domain.KPIs{
		TotalContacts:     totalContacts(set),
		AverageAge:        averageAge(set),
		LongConversations: longConversations(set),
		Girls:             girls(set),
	}
}

func totalContacts(set domain.ContactSet) domain.KPI {
	n := set.Len()
	k := domain.KPI{Name: "Total Contacts", Value: float64(n), Display: printer.Sprintf("%d", n), Status: domain.StatusOK}
	if n == 0 {
		k.Status = domain.StatusNoData
	}
	return k
}

func averageAge(set domain.ContactSet) domain.KPI {
	k := domain.KPI{Name: "Average Age", Display: notAvailable}
	if !set.HasColumn(domain.ColAge) {
		k.Status = domain.StatusFieldUnavailable
		return k
	}
	var sum float64
	var n int
	for _, r := range set.Records {
		if v, ok := r.AgeYears(); ok {
			sum += v
			n++
		}
	}
	if n == 0 || sum/float64(n) <= 0 {
		k.Status = domain.StatusNoData
		return k
	}
	k.Value = sum / float64(n)
	k.Display = printer.Sprintf("%.1f", k.Value)
	k.Status = domain.StatusOK
	return k
}

// longConversations reports the share of records whose rovid_hosszu is
// false. The column reads as "is short", so false counts as long.
func longConversations(set domain.ContactSet) domain.KPI {
	k := domain.KPI{Name: "Long Conversations", Display: notAvailable}
	if !set.HasColumn(domain.ColShortLong) {
		k.Status = domain.StatusFieldUnavailable
		return k
	}
	if set.Len() == 0 {
		k.Status = domain.StatusNoData
		return k
	}
	long := 0
	for _, r := range set.Records {
		if r.ShortLong != nil && !*r.ShortLong {
			long++
		}
	}
	k.Value = float64(long) / float64(set.Len()) * 100
	k.Display = printer.Sprintf("%.0f%%", k.Value)
	k.Status = domain.StatusOK
	return k
}

func girls(set domain.ContactSet) domain.KPI {
	k := domain.KPI{Name: "Girls", Display: notAvailable}
	if !set.HasColumn(domain.ColGenderIdentity) {
		k.Status = domain.StatusFieldUnavailable
		return k
	}
	n := 0
	for _, r := range set.Records {
		if r.GenderIdentity == GirlsLabel {
			n++
		}
	}
	k.Value = float64(n)
	k.Display = printer.Sprintf("%d", n)
	k.Status = domain.StatusOK
	if set.Len() == 0 {
		k.Status = domain.StatusNoData
	}
	return k
}
