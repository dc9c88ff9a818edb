package services

import (
	"fmt"

	"launch-dashboard-service/internal/core/domain"
)

const (
	outcomeTitleAll   = "Total Success Launches By Site"
	outcomeTitleSite  = "Total Success Launches For Site %s"
	outcomeNamesSite  = "Launch Site"
	outcomeNamesClass = "class_name"
)

// AggregateOutcomes builds the success proportion chart for site.
//
// For domain.AllSites every launch is grouped by site and its class summed, so
// each category counts that site's successes. For a single site the launches
// are split into Success and Failure and counted. Only labels that occur are
// emitted; a site that matches nothing yields no categories.
func AggregateOutcomes(ds *domain.Dataset, site string) domain.OutcomeChart {
	if site == domain.AllSites {
		return domain.OutcomeChart{
			Site:       site,
			Title:      outcomeTitleAll,
			Names:      outcomeNamesSite,
			Categories: groupBy(ds.Records(), bySite, classOf),
		}
	}

	return domain.OutcomeChart{
		Site:       site,
		Title:      fmt.Sprintf(outcomeTitleSite, site),
		Names:      outcomeNamesClass,
		Categories: groupBy(recordsAt(ds, site), byOutcome, one),
	}
}

// recordsAt returns the records launched from site, in load order.
func recordsAt(ds *domain.Dataset, site string) []domain.LaunchRecord {
	var out []domain.LaunchRecord
	ds.Each(func(r domain.LaunchRecord) {
		if r.LaunchSite == site {
			out = append(out, r)
		}
	})
	return out
}

// OutcomeService serves proportion charts over the loaded dataset.
type OutcomeService struct {
	dataset *domain.Dataset
}

// NewOutcomeService creates a new outcome service
func NewOutcomeService(dataset *domain.Dataset) *OutcomeService {
	return &OutcomeService{dataset: dataset}
}

// Proportions returns the outcome chart for site, rejecting sites the dataset
// does not know.
func (s *OutcomeService) Proportions(site string) (domain.OutcomeChart, error) {
	if err := checkSite(s.dataset, site); err != nil {
		return domain.OutcomeChart{}, err
	}
	return AggregateOutcomes(s.dataset, site), nil
}

func checkSite(ds *domain.Dataset, site string) error {
	if site == domain.AllSites || ds.HasSite(site) {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownSite, site)
}
