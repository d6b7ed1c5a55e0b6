package handler

import (
	"errors"
	"net/http"

	"cinehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto HTTP statuses. Anything not
// recognized is an internal error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGenreNotFound),
		errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrCharacterNotFound),
		errors.Is(err, service.ErrCharacterOrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOrderNotDefined),
		errors.Is(err, service.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLinkExists),
		errors.Is(err, service.ErrGenreHasMovies):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
