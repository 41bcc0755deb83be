package handlers

import (
	"net/http"

	"railbook/internal/domain"
	"railbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP statuses. Unlike the
// blanket-500 behavior this API descends from, domain conflicts map to
// 409 and lookups to 404 so clients can tell a bad request from a
// broken server; the message texts are unchanged.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "Server error")
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}
