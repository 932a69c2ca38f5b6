package handlers

import (
	"errors"
	"log"
	"net/http"

	"blogapi/internal/apperr"
	"blogapi/internal/middleware"
	"blogapi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError renders any error as the JSON envelope
// {"error": {"message": ..., "code": ...}} with code equal to the HTTP
// status. Causes of 5xx errors go to the server log only.
func writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err)
	}

	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		log.Printf("request_id=%s %s %s: %v",
			middleware.RequestIDFromContext(c), c.Request.Method, c.FullPath(), appErr)
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"message": appErr.PublicMessage(),
			"code":    status,
		},
	})
}

// bindJSON decodes and validates a request body. A body that fails to parse
// is a plain bad request; one that parses but violates field constraints is
// a validation failure with per-field details.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperr.Validation(models.ValidationMessage(verrs))
	}
	return apperr.BadRequest("Invalid request body")
}
