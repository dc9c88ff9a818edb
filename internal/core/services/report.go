package services

import (
	"fmt"
	"math"
	"sort"

	"launch-dashboard-service/internal/core/domain"
)

// DefaultBandWidth is the payload band width used when none is requested.
const DefaultBandWidth = 1000.0

// maxPayloadBands bounds how many bands a width may split the payload range into.
const maxPayloadBands = 1 << 20

// ReportService summarises launch outcomes across the whole dataset.
type ReportService struct {
	dataset *domain.Dataset
}

func NewReportService(dataset *domain.Dataset) *ReportService {
	return &ReportService{dataset: dataset}
}

// Build tallies successes per site, per booster version category and per
// payload band of width bandWidth kilograms.
func (s *ReportService) Build(bandWidth float64) (domain.Report, error) {
	if !(bandWidth > 0) || math.IsInf(bandWidth, 0) {
		return domain.Report{}, fmt.Errorf("%w: %v", domain.ErrInvalidBandWidth, bandWidth)
	}
	if bands := s.dataset.PayloadBounds().High / bandWidth; bands > maxPayloadBands {
		return domain.Report{}, fmt.Errorf("%w: %v kg splits payloads into more than %d bands", domain.ErrInvalidBandWidth, bandWidth, maxPayloadBands)
	}

	records := s.dataset.Records()
	successes := 0
	for _, r := range records {
		successes += r.Class
	}

	sites := tally(records, bySite)
	boosters := tally(records, byBooster)

	return domain.Report{
		Total:           newRateRow(domain.AllSites, len(records), successes),
		Sites:           sites,
		Boosters:        boosters,
		PayloadBands:    payloadBands(records, bandWidth),
		BandWidth:       bandWidth,
		MostSuccessSite: best(sites, func(a, b domain.RateRow) bool { return a.Successes > b.Successes }),
		BestRateSite:    best(sites, func(a, b domain.RateRow) bool { return a.Rate > b.Rate }),
		BestBooster:     best(boosters, func(a, b domain.RateRow) bool { return a.Rate > b.Rate }),
	}, nil
}

// best returns the first row no other row beats. Rows are sorted by key, so
// ties go to the smallest key.
func best(rows []domain.RateRow, beats func(a, b domain.RateRow) bool) domain.RateRow {
	var top domain.RateRow
	for i, r := range rows {
		if i == 0 || beats(r, top) {
			top = r
		}
	}
	return top
}

func payloadBands(records []domain.LaunchRecord, width float64) []domain.BandRow {
	type counts struct{ launches, successes int }
	bands := make(map[int]*counts)

	for _, r := range records {
		k := int(math.Floor(r.PayloadMassKg / width))
		c, ok := bands[k]
		if !ok {
			c = &counts{}
			bands[k] = c
		}
		c.launches++
		c.successes += r.Class
	}

	keys := make([]int, 0, len(bands))
	for k := range bands {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([]domain.BandRow, 0, len(keys))
	for _, k := range keys {
		c := bands[k]
		rows = append(rows, domain.BandRow{
			Low:       float64(k) * width,
			High:      float64(k+1) * width,
			Launches:  c.launches,
			Successes: c.successes,
			Rate:      successRate(c.launches, c.successes),
		})
	}
	return rows
}
