package handlers

import (
	"fmt"
	"math"
	"net/http"

	"launch-dashboard-service/internal/adapters/primary/http/dto"
	"launch-dashboard-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.layoutSvc.Layout())
}

func (h *Handler) GetDataset(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToDatasetSummaryResponse(h.dataset))
}

func (h *Handler) ListRecords(c *gin.Context) {
	records := h.dataset.Records()
	c.JSON(http.StatusOK, dto.ListRecordsResponse{
		Items: records,
		Total: len(records),
	})
}

func (h *Handler) GetOutcomes(c *gin.Context) {
	var q dto.OutcomeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.outcomeSvc.Proportions(siteOrAll(q.Site))
	if err != nil {
		log.WithError(err).WithField("site", q.Site).Warn("outcome chart rejected")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOutcomeChartResponse(chart))
}

func (h *Handler) GetPayload(c *gin.Context) {
	var q dto.PayloadQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		mapDomainError(c, fmt.Errorf("%w: %v", domain.ErrInvalidPayloadArg, err))
		return
	}

	rng := h.payloadSvc.FullRange()
	if q.Low != nil {
		rng.Low = *q.Low
	}
	if q.High != nil {
		rng.High = *q.High
	}
	if !finite(rng.Low) || !finite(rng.High) {
		mapDomainError(c, fmt.Errorf("%w: low=%v high=%v", domain.ErrInvalidPayloadArg, rng.Low, rng.High))
		return
	}

	view, err := h.payloadSvc.Correlate(siteOrAll(q.Site), rng)
	if err != nil {
		log.WithError(err).WithField("site", q.Site).Warn("payload chart rejected")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScatterResponse(view))
}

func (h *Handler) GetReport(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		mapDomainError(c, fmt.Errorf("%w: %v", domain.ErrInvalidBandWidth, err))
		return
	}

	width := h.bandWidth
	if q.BandWidth != nil {
		width = *q.BandWidth
	}

	report, err := h.reportSvc.Build(width)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// siteOrAll treats an omitted site as the all-sites selection.
func siteOrAll(site string) string {
	if site == "" {
		return domain.AllSites
	}
	return site
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
