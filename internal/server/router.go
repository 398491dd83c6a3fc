package server

import (
	"fmt"
	"net/http"

	"auction-front/internal/health"
	"auction-front/services/auction/handler"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed on top of the media limit for form fields
const multipartOverhead = 1 << 20

// Options tunes the router's middleware
type Options struct {
	CORSAllowOrigin string
	MaxUploadBytes  int64
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, healthHandler *health.Handler, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(recoverJSON)) // recover from panics
	router.Use(RequestLoggerMiddleware)         // custom request logging
	router.Use(CORSMiddleware(opts.CORSAllowOrigin))

	router.GET("/healthz", healthHandler.Liveness)
	router.GET("/readyz", healthHandler.Readiness)

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListListingsHandler)
		listings.GET("/filtered", auctionHandler.FilteredListingsHandler)
		listings.GET("/visible", auctionHandler.VisibleListingsHandler)
		listings.GET("/:id", auctionHandler.GetListingHandler)
		listings.POST("", auctionHandler.CreateListingHandler)
		listings.POST("/upload", BodyLimitMiddleware(uploadLimit(opts.MaxUploadBytes)), auctionHandler.UploadListingHandler)
		listings.POST("/filter", auctionHandler.FilterListingsHandler)
		listings.DELETE("/filter", auctionHandler.ResetFilterHandler)
		listings.POST("/:id/bids", auctionHandler.PlaceBidHandler)
		listings.POST("/:id/autobid", auctionHandler.AutoBidHandler)
		listings.POST("/:id/share", auctionHandler.ShareListingHandler)
	}

	date := router.Group("/date")
	{
		date.GET("", auctionHandler.GetDateHandler)
		date.POST("/:direction", auctionHandler.NavigateDateHandler)
	}

	router.GET("/auctions/next-date", auctionHandler.NextAuctionDateHandler)

	notifications := router.Group("/notifications")
	{
		notifications.GET("", auctionHandler.ListNotificationsHandler)
		notifications.POST("", auctionHandler.AddNotificationHandler)
		notifications.POST("/read", auctionHandler.MarkAllNotificationsReadHandler)
		notifications.POST("/:id/read", auctionHandler.MarkNotificationReadHandler)
	}

	watchlist := router.Group("/watchlist")
	{
		watchlist.GET("", auctionHandler.GetWatchlistHandler)
		watchlist.POST("/:listing_id", auctionHandler.AddToWatchlistHandler)
		watchlist.DELETE("/:listing_id", auctionHandler.RemoveFromWatchlistHandler)
		watchlist.POST("/:listing_id/toggle", auctionHandler.ToggleWatchlistHandler)
	}

	router.GET("/account/balance", auctionHandler.BalanceHandler)

	profile := router.Group("/profile")
	{
		profile.GET("", auctionHandler.ProfileHandler)
		profile.POST("/invite", auctionHandler.InviteFriendHandler)
	}

	router.GET("/media/:id", auctionHandler.GetMediaHandler)

	return router
}

// uploadLimit allows an image and a video at the media limit plus form fields
func uploadLimit(maxMediaBytes int64) int64 {
	if maxMediaBytes <= 0 {
		return 0
	}
	return 2*maxMediaBytes + multipartOverhead
}

// recoverJSON answers a panicking request with the error envelope
func recoverJSON(c *gin.Context, recovered any) {
	utils.Error("panic recovered", map[string]any{
		"path":  c.Request.URL.Path,
		"panic": fmt.Sprint(recovered),
	})
	utils.AbortJSONError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", recovered), "internal server error")
}
