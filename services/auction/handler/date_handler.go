package handler

import (
	"net/http"

	model "auction-front/internal/models"
	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

func (h *AuctionHandler) dateResponse() helpers.DateResponse {
	return helpers.DateResponse{
		Date:    h.service.CurrentDate(),
		Label:   h.service.DateLabel(),
		CanPrev: h.service.CanNavigate(model.DirectionPrev),
		CanNext: h.service.CanNavigate(model.DirectionNext),
	}
}

// GetDateHandler handles GET /date
func (h *AuctionHandler) GetDateHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.dateResponse(), "current date retrieved successfully")
}

// NavigateDateHandler handles POST /date/:direction
func (h *AuctionHandler) NavigateDateHandler(c *gin.Context) {
	direction := model.Direction(c.Param("direction"))
	if _, err := h.service.NavigateDateWithinWindow(c.Request.Context(), direction); err != nil {
		helpers.HandleServiceError(c, "NavigateDateHandler", "failed to navigate date", err, map[string]any{"direction": direction})
		return
	}

	resp := h.dateResponse()
	utils.JSONResponse(c, http.StatusOK, resp, "date changed")
	helpers.LogSuccess("NavigateDateHandler", "date changed", map[string]any{
		"direction": direction,
		"label":     resp.Label,
	})
}

// NextAuctionDateHandler handles GET /auctions/next-date
func (h *AuctionHandler) NextAuctionDateHandler(c *gin.Context) {
	resp := helpers.NextDateResponse{Date: h.service.NextAvailableAuctionDate()}
	utils.JSONResponse(c, http.StatusOK, resp, "next available auction date")
}
