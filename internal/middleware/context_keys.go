package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// schoolIDKey is the key used to store the authenticated user's school.
const schoolIDKey = contextKey("schoolID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetSchoolIDFromContext retrieves the authenticated school ID from the Gin
// context. It returns the school ID and a boolean indicating if it was found.
func GetSchoolIDFromContext(c *gin.Context) (string, bool) {
	schoolIDVal := c.Request.Context().Value(schoolIDKey)
	if schoolIDVal == nil {
		return "", false
	}
	schoolID, ok := schoolIDVal.(string)
	if !ok {
		return "", false
	}
	return schoolID, true
}
