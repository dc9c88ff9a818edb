package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/testutil"
)

func newDashboard(t *testing.T, recorder *testutil.MockUpdateRecorder) *DashboardService {
	ds := testutil.Dataset(t)
	if recorder == nil {
		return NewDashboardService(NewOutcomeService(ds), NewPayloadService(ds), nil)
	}
	return NewDashboardService(NewOutcomeService(ds), NewPayloadService(ds), recorder)
}

func outputs(updates []Update) []Output {
	out := make([]Output, 0, len(updates))
	for _, u := range updates {
		out = append(out, u.Output)
	}
	return out
}

func TestDashboardService_InitialSelection(t *testing.T) {
	svc := newDashboard(t, nil)

	sel := svc.InitialSelection()
	assert.Equal(t, domain.AllSites, sel.Site)
	assert.Equal(t, domain.PayloadRange{Low: 0, High: 9600}, sel.Payload)
}

func TestDashboardService_Render(t *testing.T) {
	svc := newDashboard(t, nil)

	updates, err := svc.Render(svc.InitialSelection())
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, OutputPie, updates[0].Output)
	require.NotNil(t, updates[0].Pie)
	assert.Nil(t, updates[0].Scatter)
	assert.Len(t, updates[0].Pie.Categories, 4)

	assert.Equal(t, OutputScatter, updates[1].Output)
	require.NotNil(t, updates[1].Scatter)
	assert.Len(t, updates[1].Scatter.Records, 33)
}

func TestDashboardService_Apply_SiteUpdatesBothCharts(t *testing.T) {
	recorder := new(testutil.MockUpdateRecorder)
	recorder.On("ObserveUpdate", "site-dropdown", mock.Anything).Return()
	svc := newDashboard(t, recorder)
	sel := svc.InitialSelection()

	updates, err := svc.Apply(&sel, Event{Signal: SignalSite, Site: "KSC LC-39A"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Output{OutputPie, OutputScatter}, outputs(updates))
	assert.Equal(t, "KSC LC-39A", sel.Site)
	for _, u := range updates {
		assert.Contains(t, u.Title(), "KSC LC-39A")
	}
	recorder.AssertNumberOfCalls(t, "ObserveUpdate", 2)
}

func TestDashboardService_Apply_PayloadUpdatesScatterOnly(t *testing.T) {
	recorder := new(testutil.MockUpdateRecorder)
	recorder.On("ObserveUpdate", "payload-slider", "success-payload-scatter-chart").Return()
	svc := newDashboard(t, recorder)
	sel := svc.InitialSelection()

	rng := domain.PayloadRange{Low: 5400, High: 9500}
	updates, err := svc.Apply(&sel, Event{Signal: SignalPayload, Payload: rng})
	require.NoError(t, err)

	require.Len(t, updates, 1)
	assert.Equal(t, OutputScatter, updates[0].Output)
	assert.Len(t, updates[0].Scatter.Records, 4)
	assert.Equal(t, rng, sel.Payload)
	assert.Equal(t, domain.AllSites, sel.Site)
	recorder.AssertExpectations(t)
}

func TestDashboardService_Apply_KeepsOtherSignal(t *testing.T) {
	svc := newDashboard(t, nil)
	sel := svc.InitialSelection()

	_, err := svc.Apply(&sel, Event{Signal: SignalPayload, Payload: domain.PayloadRange{Low: 2000, High: 4000}})
	require.NoError(t, err)

	updates, err := svc.Apply(&sel, Event{Signal: SignalSite, Site: "CCAFS LC-40"})
	require.NoError(t, err)

	for _, u := range updates {
		if u.Output != OutputScatter {
			continue
		}
		for _, r := range u.Scatter.Records {
			assert.Equal(t, "CCAFS LC-40", r.LaunchSite)
			assert.True(t, r.PayloadMassKg >= 2000 && r.PayloadMassKg <= 4000)
		}
	}
}

func TestDashboardService_Apply_UnknownSiteLeavesSelection(t *testing.T) {
	recorder := new(testutil.MockUpdateRecorder)
	recorder.On("ObserveRejected", "site-dropdown").Return()
	svc := newDashboard(t, recorder)
	sel := svc.InitialSelection()
	before := sel

	updates, err := svc.Apply(&sel, Event{Signal: SignalSite, Site: "Boca Chica"})
	assert.ErrorIs(t, err, domain.ErrUnknownSite)
	assert.Nil(t, updates)
	assert.Equal(t, before, sel)
	recorder.AssertExpectations(t)
}

func TestDashboardService_Apply_NonFinitePayload(t *testing.T) {
	recorder := new(testutil.MockUpdateRecorder)
	recorder.On("ObserveRejected", "payload-slider").Return()
	svc := newDashboard(t, recorder)
	sel := svc.InitialSelection()
	before := sel

	_, err := svc.Apply(&sel, Event{Signal: SignalPayload, Payload: domain.PayloadRange{Low: math.NaN(), High: 10}})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Equal(t, before, sel)
}

func TestDashboardService_Apply_InvertedRangeIsEmpty(t *testing.T) {
	svc := newDashboard(t, nil)
	sel := svc.InitialSelection()

	updates, err := svc.Apply(&sel, Event{Signal: SignalPayload, Payload: domain.PayloadRange{Low: 9000, High: 100}})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].Scatter.Records)
}

func TestDashboardService_Apply_UnknownSignal(t *testing.T) {
	recorder := new(testutil.MockUpdateRecorder)
	recorder.On("ObserveRejected", "booster-dropdown").Return()
	svc := newDashboard(t, recorder)
	sel := svc.InitialSelection()

	_, err := svc.Apply(&sel, Event{Signal: "booster-dropdown"})
	assert.ErrorIs(t, err, domain.ErrUnknownSignal)
}

func TestDashboardService_Subscribers(t *testing.T) {
	svc := newDashboard(t, nil)

	assert.Equal(t, []Output{OutputPie, OutputScatter}, svc.Subscribers(SignalSite))
	assert.Equal(t, []Output{OutputScatter}, svc.Subscribers(SignalPayload))
	assert.Empty(t, svc.Subscribers("nope"))

	subs := svc.Subscribers(SignalPayload)
	subs[0] = OutputPie
	assert.Equal(t, []Output{OutputScatter}, svc.Subscribers(SignalPayload))
}
