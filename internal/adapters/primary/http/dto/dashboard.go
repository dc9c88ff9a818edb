package dto

import (
	"time"

	"launch-dashboard-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// OutcomeQuery selects the pie chart.
type OutcomeQuery struct {
	Site string `form:"site"`
}

// PayloadQuery selects the scatter chart. Missing bounds default to the
// dataset's payload bounds.
type PayloadQuery struct {
	Site string   `form:"site"`
	Low  *float64 `form:"low"`
	High *float64 `form:"high"`
}

// ReportQuery selects the payload band width of the findings report.
type ReportQuery struct {
	BandWidth *float64 `form:"band_width"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// OutcomeChartResponse is the pie chart payload.
type OutcomeChartResponse struct {
	Site       string            `json:"site"`
	Title      string            `json:"title"`
	Names      string            `json:"names"`
	Categories []domain.Category `json:"categories"`
	Total      int               `json:"total"`
	Figure     Figure            `json:"figure"`
}

// ScatterResponse is the scatter chart payload.
type ScatterResponse struct {
	Site    string                `json:"site"`
	Title   string                `json:"title"`
	Range   domain.PayloadRange   `json:"range"`
	Count   int                   `json:"count"`
	Records []domain.LaunchRecord `json:"records"`
	Figure  Figure                `json:"figure"`
}

// DatasetSummaryResponse describes the loaded dataset.
type DatasetSummaryResponse struct {
	Source        string              `json:"source"`
	LoadedAt      time.Time           `json:"loaded_at"`
	Records       int                 `json:"records"`
	Sites         []string            `json:"sites"`
	PayloadBounds domain.PayloadRange `json:"payload_bounds"`
}

// ListRecordsResponse lists every launch record.
type ListRecordsResponse struct {
	Items []domain.LaunchRecord `json:"items"`
	Total int                   `json:"total"`
}

func ToOutcomeChartResponse(chart domain.OutcomeChart) OutcomeChartResponse {
	categories := chart.Categories
	if categories == nil {
		categories = []domain.Category{}
	}
	return OutcomeChartResponse{
		Site:       chart.Site,
		Title:      chart.Title,
		Names:      chart.Names,
		Categories: categories,
		Total:      chart.Total(),
		Figure:     ToPieFigure(chart),
	}
}

func ToScatterResponse(view domain.ScatterView) ScatterResponse {
	records := view.Records
	if records == nil {
		records = []domain.LaunchRecord{}
	}
	return ScatterResponse{
		Site:    view.Site,
		Title:   view.Title,
		Range:   view.Range,
		Count:   len(records),
		Records: records,
		Figure:  ToScatterFigure(view),
	}
}

func ToDatasetSummaryResponse(ds *domain.Dataset) DatasetSummaryResponse {
	return DatasetSummaryResponse{
		Source:        ds.Source(),
		LoadedAt:      ds.LoadedAt(),
		Records:       ds.Len(),
		Sites:         ds.Sites(),
		PayloadBounds: ds.PayloadBounds(),
	}
}
