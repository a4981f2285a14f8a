package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// budgetHandler handles HTTP requests for budget allocations and expense
// categories.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(budgetService portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: budgetService}
}

// getBudgets godoc
// @Summary List budgets for a term
// @Description Returns the school's budgets for a given term and year with category names
// @Tags budgets
// @Produce json
// @Param term query int true "Term (1-3)"
// @Param year query int true "Year"
// @Success 200 {array} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid term or year"
// @Router /budgets [get]
func (h *budgetHandler) getBudgets(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	term, _ := strconv.Atoi(c.Query("term"))
	year, _ := strconv.Atoi(c.Query("year"))

	budgets, err := h.budgetService.GetBudgets(c.Request.Context(), schoolID, term, year)
	if err != nil {
		respondWithError(c, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

// setBudget godoc
// @Summary Set a budget allocation
// @Description Upserts the allocation for (category, term, year); an existing allocation is updated in place
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.SetBudgetRequest true "Budget"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /budgets [post]
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), schoolID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to set budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// listCategories godoc
// @Summary List expense categories
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /expense-categories [get]
func (h *budgetHandler) listCategories(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	categories, err := h.budgetService.ListCategories(c.Request.Context(), schoolID)
	if err != nil {
		respondWithError(c, err, "Failed to list expense categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// createCategory godoc
// @Summary Create an expense category
// @Tags budgets
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Category already exists"
// @Router /expense-categories [post]
func (h *budgetHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	category, err := h.budgetService.CreateCategory(c.Request.Context(), schoolID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create expense category")
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryResponse{CategoryID: category.CategoryID, Name: category.Name})
}

// registerBudgetRoutes registers budget tracker routes.
func registerBudgetRoutes(group *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := group.Group("/budgets")
	{
		budgets.GET("", h.getBudgets)
		budgets.POST("", h.setBudget)
	}

	categories := group.Group("/expense-categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
	}
}
