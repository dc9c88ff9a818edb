package dto

import (
	"sort"

	"launch-dashboard-service/internal/core/domain"
)

// ============================================================================
// Plotly figure DTOs
// ============================================================================

// Figure is a plotly.js figure: traces plus layout.
type Figure struct {
	Data   []Trace      `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// Trace is the subset of plotly trace attributes the dashboard uses.
type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode,omitempty"`
	Name          string    `json:"name,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Values        []int     `json:"values,omitempty"`
	X             []float64 `json:"x,omitempty"`
	Y             []int     `json:"y,omitempty"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

type FigureLayout struct {
	Title  Title      `json:"title"`
	XAxis  *Axis      `json:"xaxis,omitempty"`
	YAxis  *Axis      `json:"yaxis,omitempty"`
	Legend *LegendBox `json:"legend,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

type LegendBox struct {
	Title Title `json:"title"`
}

const (
	axisPayload = "Payload Mass (kg)"
	axisClass   = "class"
	legendTitle = "Booster Version Category"

	scatterHover = "Launch Site=%{text}<br>Payload Mass (kg)=%{x}<br>class=%{y}<extra>%{fullData.name}</extra>"
)

// ToPieFigure renders an outcome chart as a single pie trace.
func ToPieFigure(chart domain.OutcomeChart) Figure {
	labels := make([]string, 0, len(chart.Categories))
	values := make([]int, 0, len(chart.Categories))
	for _, cat := range chart.Categories {
		labels = append(labels, cat.Label)
		values = append(values, cat.Value)
	}

	return Figure{
		Data: []Trace{{
			Type:   "pie",
			Labels: labels,
			Values: values,
		}},
		Layout: FigureLayout{Title: Title{Text: chart.Title}},
	}
}

// ToScatterFigure renders a scatter view with one trace per booster version
// category (the colour channel), payload on x, outcome class on y, and the
// launch site as hover text. Traces are ordered by category.
func ToScatterFigure(view domain.ScatterView) Figure {
	byCategory := make(map[string]*Trace)
	for _, r := range view.Records {
		tr, ok := byCategory[r.BoosterVersionCategory]
		if !ok {
			tr = &Trace{
				Type:          "scatter",
				Mode:          "markers",
				Name:          r.BoosterVersionCategory,
				X:             []float64{},
				Y:             []int{},
				Text:          []string{},
				HoverTemplate: scatterHover,
			}
			byCategory[r.BoosterVersionCategory] = tr
		}
		tr.X = append(tr.X, r.PayloadMassKg)
		tr.Y = append(tr.Y, r.Class)
		tr.Text = append(tr.Text, r.LaunchSite)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	traces := make([]Trace, 0, len(names))
	for _, name := range names {
		traces = append(traces, *byCategory[name])
	}

	return Figure{
		Data: traces,
		Layout: FigureLayout{
			Title:  Title{Text: view.Title},
			XAxis:  &Axis{Title: Title{Text: axisPayload}},
			YAxis:  &Axis{Title: Title{Text: axisClass}},
			Legend: &LegendBox{Title: Title{Text: legendTitle}},
		},
	}
}
