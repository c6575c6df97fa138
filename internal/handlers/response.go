package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/apperr"
)

// RespondError maps the domain error taxonomy onto HTTP statuses. Validation
// and transition failures carry their reason to the client; anything
// unclassified stays a 500 with no detail leaked.
func RespondError(c *gin.Context, err error) {
  switch {
  case apperr.IsValidation(err), apperr.IsInvalidTransition(err):
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
  case errors.Is(err, apperr.ErrNotFound):
    c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
  case errors.Is(err, apperr.ErrUnauthorized):
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
  default:
    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
  }
}
