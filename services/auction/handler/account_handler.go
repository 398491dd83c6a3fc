package handler

import (
	"net/http"

	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// BalanceHandler handles GET /account/balance
func (h *AuctionHandler) BalanceHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.BalanceResponse{Balance: h.service.Balance()}, "balance retrieved successfully")
}

// ProfileHandler handles GET /profile
func (h *AuctionHandler) ProfileHandler(c *gin.Context) {
	resp := helpers.ProfileResponse{
		User:     h.service.CurrentUser(),
		Balance:  h.service.Balance(),
		Bids:     h.service.BidHistory(),
		Watching: h.service.WatchedListings(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "profile retrieved successfully")
}

// InviteFriendHandler handles POST /profile/invite
func (h *AuctionHandler) InviteFriendHandler(c *gin.Context) {
	var req helpers.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InviteFriendHandler", err)
		return
	}

	h.service.InviteFriend(c.Request.Context(), req.Email)
	utils.JSONResponse(c, http.StatusAccepted, gin.H{"email": req.Email}, "invitation sent")
}
