package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justinsenglish/crave.api/internal/model"
	"github.com/justinsenglish/crave.api/internal/square"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// MapError translates the error taxonomy to HTTP statuses. Upstream detail
// is logged and never echoed to the caller.
func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, model.ErrInvalidDateRange):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid date range"}
	case errors.Is(err, square.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "franchise not found"}
	}

	log.Error().Err(err).Msg("upstream failure")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
