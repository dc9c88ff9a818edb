package handlers

import (
	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dataset    *domain.Dataset
	outcomeSvc *services.OutcomeService
	payloadSvc *services.PayloadService
	reportSvc  *services.ReportService
	layoutSvc  *services.LayoutService
	bandWidth  float64
}

func New(
	dataset *domain.Dataset,
	outcomeSvc *services.OutcomeService,
	payloadSvc *services.PayloadService,
	reportSvc *services.ReportService,
	layoutSvc *services.LayoutService,
	bandWidth float64,
) *Handler {
	if bandWidth <= 0 {
		bandWidth = services.DefaultBandWidth
	}
	return &Handler{
		dataset:    dataset,
		outcomeSvc: outcomeSvc,
		payloadSvc: payloadSvc,
		reportSvc:  reportSvc,
		layoutSvc:  layoutSvc,
		bandWidth:  bandWidth,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Page scaffolding
	r.GET("/layout", h.GetLayout)

	// Dataset
	r.GET("/dataset", h.GetDataset)
	r.GET("/records", h.ListRecords)

	// Charts
	r.GET("/outcomes", h.GetOutcomes)
	r.GET("/payload", h.GetPayload)

	// Findings
	r.GET("/report", h.GetReport)
}
