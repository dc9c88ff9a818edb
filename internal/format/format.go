// Package format renders launch findings as terminal or Markdown tables.
package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"launch-dashboard-service/internal/core/domain"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// TableBuilder builds a table once and renders it in the Mode set at creation.
type TableBuilder interface {
	Header(cols ...string)
	Row(vals ...any)
	Footer(vals ...any)
	// AlignRight right-aligns the given 1-based columns.
	AlignRight(cols ...int)
	String() string
}

func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &prettyAdapter{writer: w, mode: m}
}

type prettyAdapter struct {
	writer table.Writer
	mode   Mode
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	a.writer.AppendRow(append(table.Row(nil), vals...))
}

func (a *prettyAdapter) Footer(vals ...any) {
	a.writer.AppendFooter(append(table.Row(nil), vals...))
}

func (a *prettyAdapter) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	a.writer.SetColumnConfigs(cfgs)
}

func (a *prettyAdapter) String() string {
	if a.mode == Markdown {
		return a.writer.RenderMarkdown()
	}
	return a.writer.Render()
}

// Percent formats a success rate in [0, 1].
func Percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// RateTable renders one row per group with a totals footer.
func RateTable(m Mode, keyHeader string, rows []domain.RateRow, total domain.RateRow) string {
	t := NewTable(m)
	t.Header(keyHeader, "Launches", "Successes", "Success rate")
	t.AlignRight(2, 3, 4)
	for _, r := range rows {
		t.Row(r.Key, r.Launches, r.Successes, Percent(r.Rate))
	}
	t.Footer("Total", total.Launches, total.Successes, Percent(total.Rate))
	return t.String()
}

// BandTable renders the payload bands, one row per band holding launches.
func BandTable(m Mode, bands []domain.BandRow) string {
	t := NewTable(m)
	t.Header("Payload (kg)", "Launches", "Successes", "Success rate")
	t.AlignRight(2, 3, 4)
	for _, b := range bands {
		t.Row(fmt.Sprintf("%.0f - %.0f", b.Low, b.High), b.Launches, b.Successes, Percent(b.Rate))
	}
	return t.String()
}

// Highlights renders the report's headline findings.
func Highlights(m Mode, r domain.Report) string {
	t := NewTable(m)
	t.Header("Finding", "Value", "Launches", "Success rate")
	t.AlignRight(3, 4)
	t.Row("Most successful launches", r.MostSuccessSite.Key, r.MostSuccessSite.Launches, Percent(r.MostSuccessSite.Rate))
	t.Row("Highest site success rate", r.BestRateSite.Key, r.BestRateSite.Launches, Percent(r.BestRateSite.Rate))
	t.Row("Highest booster success rate", r.BestBooster.Key, r.BestBooster.Launches, Percent(r.BestBooster.Rate))
	return t.String()
}
