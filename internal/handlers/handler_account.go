package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// listAccounts godoc
// @Summary List active accounts
// @Description Returns the school's active chart of accounts, ordered by account code
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), schoolID)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// createAccount godoc
// @Summary Create an account
// @Description Creates a new chart-of-accounts entry; account codes are unique per school
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), schoolID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// seedAccounts godoc
// @Summary Seed the default chart of accounts
// @Description Ensures the minimal default chart exists; repeated calls are safe
// @Tags accounts
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /accounts/seed [post]
func (h *accountHandler) seedAccounts(c *gin.Context) {
	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.accountService.SeedDefaultAccounts(c.Request.Context(), schoolID, userID); err != nil {
		respondWithError(c, err, "Failed to seed default accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Soft-deletes an account; history referencing it remains intact
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account already inactive"
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	accountID := c.Param("accountID")

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), schoolID, accountID, userID); err != nil {
		respondWithError(c, err, "Failed to deactivate account")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerAccountRoutes registers chart-of-accounts routes.
func registerAccountRoutes(group *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := group.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.POST("/seed", h.seedAccounts)
		accounts.DELETE("/:accountID", h.deactivateAccount)
	}
}
