package services

import (
	"fmt"

	"launch-dashboard-service/internal/core/domain"
)

const (
	scatterTitleAll  = "Correlation Between Payload and Success for All Sites"
	scatterTitleSite = "Correlation Between Payload and Success for Site %s"
)

// FilterForScatter selects the launches from site whose payload lies within
// rng, inclusive on both ends. The range is not validated: Low > High simply
// selects nothing.
func FilterForScatter(ds *domain.Dataset, site string, rng domain.PayloadRange) domain.ScatterView {
	view := domain.ScatterView{
		Site:    site,
		Title:   scatterTitleAll,
		Range:   rng,
		Records: []domain.LaunchRecord{},
	}
	if site != domain.AllSites {
		view.Title = fmt.Sprintf(scatterTitleSite, site)
	}

	ds.Each(func(r domain.LaunchRecord) {
		if site != domain.AllSites && r.LaunchSite != site {
			return
		}
		if rng.Contains(r.PayloadMassKg) {
			view.Records = append(view.Records, r)
		}
	})
	return view
}

// PayloadService serves payload/outcome scatter views over the loaded dataset.
type PayloadService struct {
	dataset *domain.Dataset
}

func NewPayloadService(dataset *domain.Dataset) *PayloadService {
	return &PayloadService{dataset: dataset}
}

// Correlate returns the scatter view for site and rng. Unknown sites are
// rejected; the range is passed through as given.
func (s *PayloadService) Correlate(site string, rng domain.PayloadRange) (domain.ScatterView, error) {
	if err := checkSite(s.dataset, site); err != nil {
		return domain.ScatterView{}, err
	}
	return FilterForScatter(s.dataset, site, rng), nil
}

// FullRange is the payload range spanning every record.
func (s *PayloadService) FullRange() domain.PayloadRange {
	return s.dataset.PayloadBounds()
}
