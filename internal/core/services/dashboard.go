package services

import (
	"fmt"
	"math"

	"launch-dashboard-service/internal/core/domain"
	ports "launch-dashboard-service/internal/core/ports/output"
)

// Signal names a dashboard input widget.
type Signal string

const (
	SignalSite    Signal = "site-dropdown"
	SignalPayload Signal = "payload-slider"
)

// Output names a chart artifact recomputed when a subscribed signal changes.
type Output string

const (
	OutputPie     Output = "success-pie-chart"
	OutputScatter Output = "success-payload-scatter-chart"
)

// Selection is the current value of every input widget for one viewer.
type Selection struct {
	Site    string              `json:"site"`
	Payload domain.PayloadRange `json:"payload"`
}

// Event is a change of one input widget.
type Event struct {
	Signal  Signal
	Site    string
	Payload domain.PayloadRange
}

// Update carries one recomputed output. Exactly one of Pie or Scatter is set.
type Update struct {
	Output  Output
	Pie     *domain.OutcomeChart
	Scatter *domain.ScatterView
}

// Title returns the chart title of whichever view the update carries.
func (u Update) Title() string {
	switch {
	case u.Pie != nil:
		return u.Pie.Title
	case u.Scatter != nil:
		return u.Scatter.Title
	}
	return ""
}

// subscriptions lists, per signal, the outputs that depend on it.
var subscriptions = map[Signal][]Output{
	SignalSite:    {OutputPie, OutputScatter},
	SignalPayload: {OutputScatter},
}

// DashboardService dispatches widget changes to the outputs subscribed to them.
type DashboardService struct {
	outcomes *OutcomeService
	payloads *PayloadService
	recorder ports.UpdateRecorder
}

func NewDashboardService(outcomes *OutcomeService, payloads *PayloadService, recorder ports.UpdateRecorder) *DashboardService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &DashboardService{
		outcomes: outcomes,
		payloads: payloads,
		recorder: recorder,
	}
}

// InitialSelection is every site over the full payload range.
func (s *DashboardService) InitialSelection() Selection {
	return Selection{Site: domain.AllSites, Payload: s.payloads.FullRange()}
}

// Subscribers returns the outputs recomputed when sig changes.
func (s *DashboardService) Subscribers(sig Signal) []Output {
	outs := subscriptions[sig]
	return append([]Output(nil), outs...)
}

// Apply folds ev into sel and recomputes the outputs subscribed to its signal.
// On error sel is left unchanged.
func (s *DashboardService) Apply(sel *Selection, ev Event) ([]Update, error) {
	next := *sel

	switch ev.Signal {
	case SignalSite:
		if err := checkSite(s.outcomes.dataset, ev.Site); err != nil {
			s.recorder.ObserveRejected(string(ev.Signal))
			return nil, err
		}
		next.Site = ev.Site
	case SignalPayload:
		if !finite(ev.Payload.Low) || !finite(ev.Payload.High) {
			s.recorder.ObserveRejected(string(ev.Signal))
			return nil, fmt.Errorf("%w: payload range [%v, %v]", domain.ErrInvalidSelection, ev.Payload.Low, ev.Payload.High)
		}
		next.Payload = ev.Payload
	default:
		s.recorder.ObserveRejected(string(ev.Signal))
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSignal, ev.Signal)
	}

	updates, err := s.compute(next, subscriptions[ev.Signal])
	if err != nil {
		return nil, err
	}
	for _, u := range updates {
		s.recorder.ObserveUpdate(string(ev.Signal), string(u.Output))
	}

	*sel = next
	return updates, nil
}

// Render recomputes every output for sel.
func (s *DashboardService) Render(sel Selection) ([]Update, error) {
	return s.compute(sel, []Output{OutputPie, OutputScatter})
}

func (s *DashboardService) compute(sel Selection, outs []Output) ([]Update, error) {
	updates := make([]Update, 0, len(outs))
	for _, out := range outs {
		switch out {
		case OutputPie:
			chart, err := s.outcomes.Proportions(sel.Site)
			if err != nil {
				return nil, err
			}
			updates = append(updates, Update{Output: out, Pie: &chart})
		case OutputScatter:
			view, err := s.payloads.Correlate(sel.Site, sel.Payload)
			if err != nil {
				return nil, err
			}
			updates = append(updates, Update{Output: out, Scatter: &view})
		}
	}
	return updates, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
