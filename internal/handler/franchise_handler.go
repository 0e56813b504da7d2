package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justinsenglish/crave.api/internal/middleware"
	"github.com/justinsenglish/crave.api/internal/service"
)

type FranchiseHandler struct {
	svc *service.FranchiseService
}

func NewFranchiseHandler(svc *service.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{svc: svc}
}

func (h *FranchiseHandler) List(c *gin.Context) {
	log.Info().
		Str("user_id", middleware.UserID(c)).
		Msg("fetching franchises")

	franchises, err := h.svc.ListFranchises(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, franchises)
}

func (h *FranchiseHandler) Get(c *gin.Context) {
	locationID := c.Param("locationId")

	log.Info().
		Str("user_id", middleware.UserID(c)).
		Str("location_id", locationID).
		Msg("fetching franchise")

	franchise, err := h.svc.GetFranchise(c.Request.Context(), locationID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, franchise)
}
