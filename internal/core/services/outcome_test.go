package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/testutil"
)

func TestAggregateOutcomes_AllSites(t *testing.T) {
	ds := testutil.Dataset(t)

	chart := AggregateOutcomes(ds, domain.AllSites)

	want := []domain.Category{
		{Label: "CCAFS LC-40", Value: 4},
		{Label: "CCAFS SLC-40", Value: 3},
		{Label: "KSC LC-39A", Value: 10},
		{Label: "VAFB SLC-4E", Value: 2},
	}
	if diff := cmp.Diff(want, chart.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Total Success Launches By Site", chart.Title)
	assert.Equal(t, "Launch Site", chart.Names)
}

func TestAggregateOutcomes_AllSites_SumsClassPerSite(t *testing.T) {
	ds := testutil.Dataset(t)

	want := make(map[string]int)
	successes := 0
	for _, r := range ds.Records() {
		want[r.LaunchSite] += r.Class
		successes += r.Class
	}

	chart := AggregateOutcomes(ds, domain.AllSites)
	require.Len(t, chart.Categories, len(ds.Sites()))
	for _, cat := range chart.Categories {
		assert.Equal(t, want[cat.Label], cat.Value, cat.Label)
	}
	assert.Equal(t, successes, chart.Total())
}

func TestAggregateOutcomes_LargestSuccessCount(t *testing.T) {
	chart := AggregateOutcomes(testutil.Dataset(t), domain.AllSites)

	top := chart.Categories[0]
	for _, cat := range chart.Categories[1:] {
		if cat.Value > top.Value {
			top = cat
		}
	}
	assert.Equal(t, "KSC LC-39A", top.Label)
	assert.Equal(t, 10, top.Value)
}

func TestAggregateOutcomes_SingleSite(t *testing.T) {
	ds := testutil.Dataset(t)

	chart := AggregateOutcomes(ds, "KSC LC-39A")

	want := []domain.Category{
		{Label: domain.OutcomeFailure, Value: 3},
		{Label: domain.OutcomeSuccess, Value: 10},
	}
	if diff := cmp.Diff(want, chart.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Total Success Launches For Site KSC LC-39A", chart.Title)
	assert.Equal(t, "class_name", chart.Names)
	assert.InDelta(t, 0.769, float64(10)/float64(chart.Total()), 0.001)
}

func TestAggregateOutcomes_SingleSite_SumsToSiteCount(t *testing.T) {
	ds := testutil.Dataset(t)

	for _, site := range ds.Sites() {
		count := 0
		for _, r := range ds.Records() {
			if r.LaunchSite == site {
				count++
			}
		}
		assert.Equal(t, count, AggregateOutcomes(ds, site).Total(), site)
	}
}

func TestAggregateOutcomes_OnlyOccurringLabels(t *testing.T) {
	ds, err := domain.NewDataset([]domain.LaunchRecord{
		{LaunchSite: "A", Class: 1, PayloadMassKg: 10},
		{LaunchSite: "A", Class: 1, PayloadMassKg: 20},
		{LaunchSite: "B", Class: 0, PayloadMassKg: 30},
	}, "inline")
	require.NoError(t, err)

	chart := AggregateOutcomes(ds, "A")
	assert.Equal(t, []domain.Category{{Label: domain.OutcomeSuccess, Value: 2}}, chart.Categories)

	all := AggregateOutcomes(ds, domain.AllSites)
	assert.Equal(t, []domain.Category{{Label: "A", Value: 2}, {Label: "B", Value: 0}}, all.Categories)
}

func TestAggregateOutcomes_UnknownSite(t *testing.T) {
	chart := AggregateOutcomes(testutil.Dataset(t), "Boca Chica")

	assert.Empty(t, chart.Categories)
	assert.Equal(t, 0, chart.Total())
}

func TestAggregateOutcomes_Idempotent(t *testing.T) {
	ds := testutil.Dataset(t)

	for _, site := range append(ds.Sites(), domain.AllSites) {
		first := AggregateOutcomes(ds, site)
		second := AggregateOutcomes(ds, site)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: repeated call differs (-first +second):\n%s", site, diff)
		}
	}
}

func TestOutcomeService_Proportions(t *testing.T) {
	svc := NewOutcomeService(testutil.Dataset(t))

	chart, err := svc.Proportions("VAFB SLC-4E")
	require.NoError(t, err)
	assert.Equal(t, 4, chart.Total())
}

func TestOutcomeService_Proportions_UnknownSite(t *testing.T) {
	svc := NewOutcomeService(testutil.Dataset(t))

	_, err := svc.Proportions("Boca Chica")
	assert.ErrorIs(t, err, domain.ErrUnknownSite)

	_, err = svc.Proportions("")
	assert.ErrorIs(t, err, domain.ErrUnknownSite)
}
