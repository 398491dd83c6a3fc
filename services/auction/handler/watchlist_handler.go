package handler

import (
	"net/http"

	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// GetWatchlistHandler handles GET /watchlist
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	resp := helpers.WatchlistResponse{
		Items:    h.service.Watchlist(),
		Listings: h.service.WatchedListings(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "watchlist retrieved successfully")
}

// AddToWatchlistHandler handles POST /watchlist/:listing_id
func (h *AuctionHandler) AddToWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	item, added, err := h.service.AddToWatchlist(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "AddToWatchlistHandler", "failed to add to watchlist", err, map[string]any{"listing_id": listingID})
		return
	}

	status, message := http.StatusCreated, "added to watchlist"
	if !added {
		status, message = http.StatusOK, "already on watchlist"
	}
	utils.JSONResponse(c, status, helpers.WatchlistAddResponse{Item: item, Added: added}, message)
}

// RemoveFromWatchlistHandler handles DELETE /watchlist/:listing_id
func (h *AuctionHandler) RemoveFromWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	removed := h.service.RemoveFromWatchlist(c.Request.Context(), listingID)
	utils.JSONResponse(c, http.StatusOK, helpers.WatchlistRemoveResponse{ListingID: listingID, Removed: removed}, "removed from watchlist")
}

// ToggleWatchlistHandler handles POST /watchlist/:listing_id/toggle
func (h *AuctionHandler) ToggleWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	watched, err := h.service.ToggleWatchlist(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ToggleWatchlistHandler", "failed to toggle watchlist", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToggleResponse{ListingID: listingID, Watched: watched}, "watchlist updated")
}
