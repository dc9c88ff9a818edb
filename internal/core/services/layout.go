package services

import (
	"strconv"

	"launch-dashboard-service/internal/core/domain"
)

const (
	dashboardHeading    = "SpaceX Launch Records Dashboard"
	dropdownPlaceholder = "Select a Launch Site here"
	allSitesLabel       = "All Sites"
)

// SliderConfig bounds the payload range slider.
type SliderConfig struct {
	Min      float64
	Max      float64
	Step     float64
	MarkStep int
}

// LayoutService describes the dashboard widgets for the page.
type LayoutService struct {
	dataset *domain.Dataset
	slider  SliderConfig
}

func NewLayoutService(dataset *domain.Dataset, slider SliderConfig) *LayoutService {
	return &LayoutService{dataset: dataset, slider: slider}
}

// Layout lists the dropdown options (all sites first, then each site in the
// order it first appears) and the slider, initialised to the payload bounds.
func (s *LayoutService) Layout() domain.Layout {
	options := []domain.Option{{Label: allSitesLabel, Value: domain.AllSites}}
	for _, site := range s.dataset.Sites() {
		options = append(options, domain.Option{Label: site, Value: site})
	}

	return domain.Layout{
		Heading:     dashboardHeading,
		Placeholder: dropdownPlaceholder,
		Options:     options,
		DefaultSite: domain.AllSites,
		Slider: domain.SliderSpec{
			Min:   s.slider.Min,
			Max:   s.slider.Max,
			Step:  s.slider.Step,
			Marks: s.marks(),
			Value: s.dataset.PayloadBounds(),
		},
	}
}

func (s *LayoutService) marks() map[int]string {
	marks := make(map[int]string)
	if s.slider.MarkStep <= 0 {
		return marks
	}
	for i := int(s.slider.Min); i <= int(s.slider.Max); i += s.slider.MarkStep {
		marks[i] = strconv.Itoa(i)
	}
	return marks
}
