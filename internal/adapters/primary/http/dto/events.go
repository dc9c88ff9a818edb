package dto

import (
	"encoding/json"
	"fmt"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/core/services"
)

// ============================================================================
// Live callback messages
// ============================================================================

// EventMessage is sent by the page when a widget changes. Value is a site
// string for the dropdown and a [low, high] pair for the slider.
type EventMessage struct {
	Signal string          `json:"signal"`
	Value  json.RawMessage `json:"value"`
}

// UpdateMessage carries one recomputed chart back to the page.
type UpdateMessage struct {
	Session string                `json:"session"`
	Output  string                `json:"output"`
	Title   string                `json:"title"`
	Figure  Figure                `json:"figure"`
	Pie     *OutcomeChartResponse `json:"pie,omitempty"`
	Scatter *ScatterResponse      `json:"scatter,omitempty"`
}

// ErrorMessage reports an event the server rejected.
type ErrorMessage struct {
	Session string `json:"session"`
	Signal  string `json:"signal,omitempty"`
	Error   string `json:"error"`
}

// ToEvent decodes the widget value for the message's signal.
func ToEvent(msg EventMessage) (services.Event, error) {
	ev := services.Event{Signal: services.Signal(msg.Signal)}

	switch ev.Signal {
	case services.SignalSite:
		if err := json.Unmarshal(msg.Value, &ev.Site); err != nil {
			return ev, fmt.Errorf("%w: site must be a string", domain.ErrInvalidSelection)
		}
	case services.SignalPayload:
		var pair []float64
		if err := json.Unmarshal(msg.Value, &pair); err != nil || len(pair) != 2 {
			return ev, fmt.Errorf("%w: payload must be a [low, high] pair", domain.ErrInvalidSelection)
		}
		ev.Payload = domain.PayloadRange{Low: pair[0], High: pair[1]}
	default:
		return ev, fmt.Errorf("%w: %q", domain.ErrUnknownSignal, msg.Signal)
	}
	return ev, nil
}

// ToUpdateMessage wraps a dispatcher update for the wire.
func ToUpdateMessage(session string, u services.Update) UpdateMessage {
	msg := UpdateMessage{
		Session: session,
		Output:  string(u.Output),
		Title:   u.Title(),
	}
	switch {
	case u.Pie != nil:
		pie := ToOutcomeChartResponse(*u.Pie)
		msg.Pie = &pie
		msg.Figure = pie.Figure
	case u.Scatter != nil:
		scatter := ToScatterResponse(*u.Scatter)
		msg.Scatter = &scatter
		msg.Figure = scatter.Figure
	}
	return msg
}
