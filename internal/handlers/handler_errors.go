package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
)

// respondWithError maps service errors onto HTTP statuses and writes a JSON
// body. Typed errors carry structured details so clients can render the
// rejection without parsing the message.
//
//	validation    -> 400
//	not found     -> 404
//	duplicate     -> 409
//	conflict      -> 409
//	business rule -> 422
//	anything else -> 500
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unbalancedErr *apperrors.UnbalancedEntryError
	if errors.As(err, &unbalancedErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": unbalancedErr.Error(),
			"details": gin.H{
				"totalDebit":  unbalancedErr.TotalDebit,
				"totalCredit": unbalancedErr.TotalCredit,
			},
		})
		return
	}

	var duplicateCodeErr *apperrors.DuplicateAccountCodeError
	if errors.As(err, &duplicateCodeErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   duplicateCodeErr.Error(),
			"details": gin.H{"accountCode": duplicateCodeErr.AccountCode},
		})
		return
	}

	var insufficientErr *apperrors.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": insufficientErr.Error(),
			"details": gin.H{
				"currentBalance": insufficientErr.CurrentBalance,
				"requested":      insufficientErr.Requested,
			},
		})
		return
	}

	var floatErr *apperrors.FloatExceededError
	if errors.As(err, &floatErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": floatErr.Error(),
			"details": gin.H{
				"floatAmount":      floatErr.FloatAmount,
				"resultingBalance": floatErr.ResultingBalance,
			},
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBusinessRule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
