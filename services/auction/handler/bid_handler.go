package handler

import (
	"net/http"
	"time"

	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /listings/:id/bids. The bid is paid for before
// it is committed.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	listingID := c.Param("id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	if err := helpers.RequirePositive("amount", req.Amount); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.BidWithPayment(c.Request.Context(), listingID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"listing_id": listingID,
			"amount":     req.Amount.String(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		Balance:   h.service.Balance(),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"amount":     bid.Amount.String(),
	})
}

// AutoBidHandler handles POST /listings/:id/autobid
func (h *AuctionHandler) AutoBidHandler(c *gin.Context) {
	listingID := c.Param("id")
	var req helpers.AutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AutoBidHandler", err)
		return
	}
	if err := helpers.RequirePositive("max_amount", req.MaxAmount); err != nil {
		helpers.HandleBindError(c, "AutoBidHandler", err)
		return
	}

	bid, err := h.service.AutoBid(c.Request.Context(), listingID, req.MaxAmount)
	if err != nil {
		helpers.HandleServiceError(c, "AutoBidHandler", "failed to auto-bid", err, map[string]any{
			"listing_id": listingID,
			"max_amount": req.MaxAmount.String(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		Balance:   h.service.Balance(),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auto-bid placed successfully")
	helpers.LogSuccess("AutoBidHandler", "auto-bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"amount":     bid.Amount.String(),
	})
}
