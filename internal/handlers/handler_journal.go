package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// journalHandler handles HTTP requests for the journal engine.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates and atomically posts a balanced double-entry journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]interface{} "Invalid or unbalanced entry"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Router /journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schoolID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), schoolID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves one journal entry with its lines
// @Tags journal
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), schoolID, entryID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Returns a page of journal entries, newest first, with the total count
// @Tags journal
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	schoolID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), schoolID, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerJournalRoutes registers journal engine routes.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := group.Group("/journal-entries")
	{
		entries.POST("", h.postJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
	}
}
