package rest

import (
	"errors"
	"net/http"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnsupportedLanguage),
		errors.Is(err, models.ErrUnsupportedFormat),
		errors.Is(err, models.ErrExtraction),
		errors.Is(err, models.ErrInvalidSession):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientVocabulary),
		errors.Is(err, models.ErrNoWords):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDependencyUnavailable),
		errors.Is(err, models.ErrSynthesis):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// abortWithError hides the cause of internal failures from the client.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}
