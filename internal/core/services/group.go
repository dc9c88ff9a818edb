package services

import (
	"sort"

	"launch-dashboard-service/internal/core/domain"
)

// groupBy folds records into one category per key, summing value(r) for
// every record in the group. Categories come back sorted by key.
func groupBy(records []domain.LaunchRecord, key func(domain.LaunchRecord) string, value func(domain.LaunchRecord) int) []domain.Category {
	sums := make(map[string]int)
	for _, r := range records {
		sums[key(r)] += value(r)
	}

	out := make([]domain.Category, 0, len(sums))
	for k, v := range sums {
		out = append(out, domain.Category{Label: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// tally counts launches and successes per key, sorted by key.
func tally(records []domain.LaunchRecord, key func(domain.LaunchRecord) string) []domain.RateRow {
	launches := groupBy(records, key, one)
	successes := groupBy(records, key, classOf)

	rows := make([]domain.RateRow, len(launches))
	for i := range launches {
		rows[i] = newRateRow(launches[i].Label, launches[i].Value, successes[i].Value)
	}
	return rows
}

func newRateRow(key string, launches, successes int) domain.RateRow {
	return domain.RateRow{
		Key:       key,
		Launches:  launches,
		Successes: successes,
		Rate:      successRate(launches, successes),
	}
}

func successRate(launches, successes int) float64 {
	if launches == 0 {
		return 0
	}
	return float64(successes) / float64(launches)
}

func bySite(r domain.LaunchRecord) string    { return r.LaunchSite }
func byOutcome(r domain.LaunchRecord) string { return r.OutcomeLabel() }
func byBooster(r domain.LaunchRecord) string { return r.BoosterVersionCategory }
func classOf(r domain.LaunchRecord) int      { return r.Class }
func one(domain.LaunchRecord) int            { return 1 }
