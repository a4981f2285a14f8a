package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the general ledger query engine.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// getGeneralLedger godoc
// @Summary Get the general ledger
// @Description Returns posted journal lines ordered by account code then entry date, derived at read time
// @Tags reports
// @Produce json
// @Param start query string false "Inclusive start date (RFC 3339)"
// @Param end query string false "Inclusive end date (RFC 3339)"
// @Param accountId query string false "Restrict to one account"
// @Success 200 {array} dto.LedgerLineResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /ledger [get]
func (h *ledgerHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var params dto.GeneralLedgerParams
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.Warn("Invalid start date", slog.String("value", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC 3339"})
			return
		}
		params.StartDate = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.Warn("Invalid end date", slog.String("value", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC 3339"})
			return
		}
		params.EndDate = t
	}
	if accountID := c.Query("accountId"); accountID != "" {
		params.AccountID = &accountID
	}

	lines, err := h.ledgerService.GetGeneralLedger(c.Request.Context(), schoolID, params)
	if err != nil {
		respondWithError(c, err, "Failed to query general ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerLineResponses(lines))
}

// registerLedgerRoutes registers general ledger routes.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	group.GET("/ledger", h.getGeneralLedger)
}
