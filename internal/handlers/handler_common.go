package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// callerIdentity pulls the authenticated user and school from the request
// context. It writes a 401 response and returns ok=false when either is
// missing, which only happens if the auth middleware was not applied.
func callerIdentity(c *gin.Context) (schoolID, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}

	schoolID, found = middleware.GetSchoolIDFromContext(c)
	if !found {
		logger.Error("School ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}

	return schoolID, userID, true
}

// pageParams reads limit/offset query parameters, tolerating absence.
// Out-of-range values are normalized by the services.
func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
