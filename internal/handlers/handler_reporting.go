package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// reportingHandler handles HTTP requests for accounting reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Aggregates posted debits and credits per account; balanced=false signals a closure failure
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), schoolID)
	if err != nil {
		respondWithError(c, err, "Failed to compute trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// registerReportingRoutes registers report routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	group.GET("/trial-balance", h.getTrialBalance)
}
