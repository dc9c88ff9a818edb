package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/core/services"
)

// ============================================================================
// Figure Tests
// ============================================================================

func TestToPieFigure(t *testing.T) {
	fig := ToPieFigure(domain.OutcomeChart{
		Title: "Total Success Launches For Site KSC LC-39A",
		Categories: []domain.Category{
			{Label: "Failure", Value: 3},
			{Label: "Success", Value: 10},
		},
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "pie", fig.Data[0].Type)
	assert.Equal(t, []string{"Failure", "Success"}, fig.Data[0].Labels)
	assert.Equal(t, []int{3, 10}, fig.Data[0].Values)
	assert.Equal(t, "Total Success Launches For Site KSC LC-39A", fig.Layout.Title.Text)
}

func TestToScatterFigure_OneTracePerBoosterCategory(t *testing.T) {
	fig := ToScatterFigure(domain.ScatterView{
		Title: "Correlation Between Payload and Success for All Sites",
		Records: []domain.LaunchRecord{
			{LaunchSite: "KSC LC-39A", PayloadMassKg: 9600, Class: 1, BoosterVersionCategory: "B5"},
			{LaunchSite: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterVersionCategory: "v1.0"},
			{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterVersionCategory: "B5"},
		},
	})

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "B5", fig.Data[0].Name)
	assert.Equal(t, []float64{9600, 9600}, fig.Data[0].X)
	assert.Equal(t, []int{1, 1}, fig.Data[0].Y)
	assert.Equal(t, []string{"KSC LC-39A", "VAFB SLC-4E"}, fig.Data[0].Text)
	assert.Equal(t, "v1.0", fig.Data[1].Name)
	assert.Equal(t, "markers", fig.Data[1].Mode)

	require.NotNil(t, fig.Layout.XAxis)
	assert.Equal(t, "Payload Mass (kg)", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "class", fig.Layout.YAxis.Title.Text)
	assert.Equal(t, "Booster Version Category", fig.Layout.Legend.Title.Text)
}

func TestToScatterFigure_Empty(t *testing.T) {
	fig := ToScatterFigure(domain.ScatterView{Title: "empty"})

	assert.NotNil(t, fig.Data)
	assert.Empty(t, fig.Data)

	raw, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

// ============================================================================
// Response Mapping Tests
// ============================================================================

func TestToOutcomeChartResponse_EmptyCategories(t *testing.T) {
	resp := ToOutcomeChartResponse(domain.OutcomeChart{Site: "X", Title: "t"})

	assert.NotNil(t, resp.Categories)
	assert.Equal(t, 0, resp.Total)
}

func TestToScatterResponse(t *testing.T) {
	resp := ToScatterResponse(domain.ScatterView{
		Site:    "ALL",
		Range:   domain.PayloadRange{Low: 1, High: 2},
		Records: []domain.LaunchRecord{{LaunchSite: "A", PayloadMassKg: 1.5, BoosterVersionCategory: "FT"}},
	})

	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, domain.PayloadRange{Low: 1, High: 2}, resp.Range)
	assert.Len(t, resp.Figure.Data, 1)
}

// ============================================================================
// Event Tests
// ============================================================================

func TestToEvent_Site(t *testing.T) {
	ev, err := ToEvent(EventMessage{Signal: "site-dropdown", Value: json.RawMessage(`"KSC LC-39A"`)})
	require.NoError(t, err)
	assert.Equal(t, services.SignalSite, ev.Signal)
	assert.Equal(t, "KSC LC-39A", ev.Site)
}

func TestToEvent_Payload(t *testing.T) {
	ev, err := ToEvent(EventMessage{Signal: "payload-slider", Value: json.RawMessage(`[5400, 9500]`)})
	require.NoError(t, err)
	assert.Equal(t, services.SignalPayload, ev.Signal)
	assert.Equal(t, domain.PayloadRange{Low: 5400, High: 9500}, ev.Payload)
}

func TestToEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		msg  EventMessage
		want error
	}{
		{"site not a string", EventMessage{Signal: "site-dropdown", Value: json.RawMessage(`42`)}, domain.ErrInvalidSelection},
		{"payload single value", EventMessage{Signal: "payload-slider", Value: json.RawMessage(`[1]`)}, domain.ErrInvalidSelection},
		{"payload not numbers", EventMessage{Signal: "payload-slider", Value: json.RawMessage(`["a","b"]`)}, domain.ErrInvalidSelection},
		{"unknown signal", EventMessage{Signal: "booster-dropdown", Value: json.RawMessage(`"B5"`)}, domain.ErrUnknownSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToEvent(tt.msg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestToUpdateMessage(t *testing.T) {
	chart := domain.OutcomeChart{Title: "pie", Categories: []domain.Category{{Label: "A", Value: 1}}}
	msg := ToUpdateMessage("s1", services.Update{Output: services.OutputPie, Pie: &chart})

	assert.Equal(t, "s1", msg.Session)
	assert.Equal(t, "success-pie-chart", msg.Output)
	assert.Equal(t, "pie", msg.Title)
	require.NotNil(t, msg.Pie)
	assert.Nil(t, msg.Scatter)
	assert.Equal(t, "pie", msg.Figure.Data[0].Type)
}
