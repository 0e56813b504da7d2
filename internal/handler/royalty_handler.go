package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justinsenglish/crave.api/internal/dto"
	"github.com/justinsenglish/crave.api/internal/middleware"
	"github.com/justinsenglish/crave.api/internal/service"
)

type RoyaltyHandler struct {
	svc *service.SalesService
}

func NewRoyaltyHandler(svc *service.SalesService) *RoyaltyHandler {
	return &RoyaltyHandler{svc: svc}
}

// GetRoyalties serves the full sales summary for a location and date range,
// royalty and marketing fee figures included.
func (h *RoyaltyHandler) GetRoyalties(c *gin.Context) {
	locationID := c.Param("locationId")

	dateRange, err := dto.ParseDateRange(c)
	if err != nil {
		c.Error(err)
		return
	}

	log.Info().
		Str("user_id", middleware.UserID(c)).
		Str("location_id", locationID).
		Time("start_date", dateRange.Start).
		Time("end_date", dateRange.End).
		Msg("fetching royalties")

	summary, err := h.svc.Summary(c.Request.Context(), locationID, dateRange.Start, dateRange.End)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
