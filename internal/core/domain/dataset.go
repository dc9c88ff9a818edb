package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Dataset is the immutable launch data context. It is built once at startup
// and shared read-only afterwards; accessors hand out copies.
type Dataset struct {
	records    []LaunchRecord
	sites      []string
	siteSet    map[string]struct{}
	minPayload float64
	maxPayload float64
	source     string
	loadedAt   time.Time
}

// NewDataset validates records and freezes them into a Dataset.
func NewDataset(records []LaunchRecord, source string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records:    make([]LaunchRecord, 0, len(records)),
		siteSet:    make(map[string]struct{}),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
		source:     source,
		loadedAt:   time.Now().UTC(),
	}

	for i, r := range records {
		r.LaunchSite = strings.TrimSpace(r.LaunchSite)
		r.BoosterVersion = strings.TrimSpace(r.BoosterVersion)
		r.BoosterVersionCategory = strings.TrimSpace(r.BoosterVersionCategory)

		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if _, seen := ds.siteSet[r.LaunchSite]; !seen {
			ds.siteSet[r.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, r.LaunchSite)
		}
		ds.minPayload = math.Min(ds.minPayload, r.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, r.PayloadMassKg)
		ds.records = append(ds.records, r)
	}

	return ds, nil
}

func validateRecord(r LaunchRecord) error {
	if r.LaunchSite == "" {
		return fmt.Errorf("%w: launch site is empty", ErrInvalidRecord)
	}
	if r.LaunchSite == AllSites {
		return fmt.Errorf("%w: launch site %q is reserved", ErrInvalidRecord, AllSites)
	}
	if r.Class != ClassSuccess && r.Class != ClassFailure {
		return fmt.Errorf("%w: class %d is not 0 or 1", ErrInvalidRecord, r.Class)
	}
	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) || r.PayloadMassKg < 0 {
		return fmt.Errorf("%w: payload mass %v out of range", ErrInvalidRecord, r.PayloadMassKg)
	}
	return nil
}

// Records returns a copy of every record in load order.
func (d *Dataset) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in load order without copying the slice.
func (d *Dataset) Each(fn func(LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Sites returns the distinct launch sites in first-seen order.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether site occurs in the dataset.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteSet[site]
	return ok
}

// PayloadBounds returns the smallest and largest payload mass observed.
func (d *Dataset) PayloadBounds() PayloadRange {
	return PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Source describes where the records were loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// LoadedAt is the time the dataset was frozen.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}
