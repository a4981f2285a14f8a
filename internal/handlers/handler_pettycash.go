package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// pettyCashHandler handles HTTP requests for the petty cash engine.
type pettyCashHandler struct {
	pettyCashService portssvc.PettyCashSvcFacade
}

func newPettyCashHandler(pettyCashService portssvc.PettyCashSvcFacade) *pettyCashHandler {
	return &pettyCashHandler{pettyCashService: pettyCashService}
}

// createAccount godoc
// @Summary Open a petty cash account
// @Description Opens a custodial float; the balance starts at the float amount
// @Tags petty-cash
// @Accept json
// @Produce json
// @Param account body dto.CreatePettyCashAccountRequest true "Petty cash account"
// @Success 201 {object} dto.PettyCashAccountResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Custodian not found"
// @Router /petty-cash [post]
func (h *pettyCashHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePettyCashAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPettyCashAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	account, err := h.pettyCashService.CreateAccount(c.Request.Context(), schoolID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create petty cash account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPettyCashAccountResponse(account))
}

// listAccounts godoc
// @Summary List petty cash accounts
// @Description Returns the school's active petty cash accounts with custodian names
// @Tags petty-cash
// @Produce json
// @Success 200 {array} dto.PettyCashAccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /petty-cash [get]
func (h *pettyCashHandler) listAccounts(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.pettyCashService.ListAccounts(c.Request.Context(), schoolID)
	if err != nil {
		respondWithError(c, err, "Failed to list petty cash accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToPettyCashAccountResponses(accounts))
}

// recordTransaction godoc
// @Summary Record a petty cash transaction
// @Description Appends a disbursement or replenishment and updates the cached balance atomically
// @Tags petty-cash
// @Accept json
// @Produce json
// @Param accountID path string true "Petty cash account ID"
// @Param transaction body dto.RecordPettyCashTransactionRequest true "Transaction"
// @Success 201 {object} dto.PettyCashTransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]interface{} "Balance bounds violated"
// @Router /petty-cash/{accountID}/transactions [post]
func (h *pettyCashHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.RecordPettyCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPettyCashTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	txn, err := h.pettyCashService.RecordTransaction(c.Request.Context(), schoolID, accountID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record petty cash transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPettyCashTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List petty cash transactions
// @Description Returns a page of the account's transaction history, newest first
// @Tags petty-cash
// @Produce json
// @Param accountID path string true "Petty cash account ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.PettyCashTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /petty-cash/{accountID}/transactions [get]
func (h *pettyCashHandler) listTransactions(c *gin.Context) {
	accountID := c.Param("accountID")

	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	txns, err := h.pettyCashService.ListTransactions(c.Request.Context(), schoolID, accountID, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list petty cash transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToPettyCashTransactionResponses(txns))
}

// registerPettyCashRoutes registers petty cash engine routes.
func registerPettyCashRoutes(group *gin.RouterGroup, pettyCashService portssvc.PettyCashSvcFacade) {
	h := newPettyCashHandler(pettyCashService)

	pettyCash := group.Group("/petty-cash")
	{
		pettyCash.POST("", h.createAccount)
		pettyCash.GET("", h.listAccounts)
		pettyCash.POST("/:accountID/transactions", h.recordTransaction)
		pettyCash.GET("/:accountID/transactions", h.listTransactions)
	}
}
