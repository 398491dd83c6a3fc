package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	auction "auction-front/internal/auctionService"
	"auction-front/internal/auctionerrors"
	"auction-front/internal/media"
	model "auction-front/internal/models"
	"auction-front/internal/share"
	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// ListListingsHandler handles GET /listings
func (h *AuctionHandler) ListListingsHandler(c *gin.Context) {
	listings := h.service.Listings()
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// FilteredListingsHandler handles GET /listings/filtered
func (h *AuctionHandler) FilteredListingsHandler(c *gin.Context) {
	listings := h.service.FilteredListings()
	utils.JSONResponse(c, http.StatusOK, listings, "filtered listings retrieved successfully")
}

// VisibleListingsHandler handles GET /listings/visible
func (h *AuctionHandler) VisibleListingsHandler(c *gin.Context) {
	listings := h.service.VisibleListings()
	message := "visible listings retrieved successfully"
	if len(listings) == 0 {
		message = "no auctions found for this date"
	}
	utils.JSONResponse(c, http.StatusOK, listings, message)
}

// GetListingHandler handles GET /listings/:id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("id")
	listing, err := h.service.Listing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", "failed to get listing", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := helpers.ListingDetailResponse{
		Listing:  listing,
		Gallery:  auction.GalleryImages(listing),
		TimeLeft: auction.TimeLeft(listing, h.service.Now()),
		Watched:  h.service.IsWatched(listingID),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "listing retrieved successfully")
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}
	if err := helpers.RequireNonNegative("starting_bid", req.StartingBid); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	var (
		listing model.Listing
		err     error
	)
	if req.StartTime == nil {
		listing, err = h.service.CreateScheduledListing(c.Request.Context(), auction.ListingDraft{
			Title:        req.Title,
			Description:  req.Description,
			StartingBid:  req.StartingBid,
			Category:     model.Category(req.Category),
			ImageURL:     req.ImageURL,
			VideoURL:     req.VideoURL,
			DurationDays: req.DurationDays,
		})
	} else {
		listing, err = h.createExplicit(c, req)
	}
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ID,
		"category":   listing.Category,
	})
}

// createExplicit stores a listing whose auction window the caller chose
func (h *AuctionHandler) createExplicit(c *gin.Context, req helpers.CreateListingRequest) (model.Listing, error) {
	category := model.Category(req.Category)
	if !category.Valid() {
		return model.Listing{}, fmt.Errorf("handler: %w - %q", auctionerrors.ErrInvalidCategory, req.Category)
	}

	end := req.StartTime.AddDate(0, 0, auction.DefaultDurationDays)
	if req.DurationDays > 0 {
		end = req.StartTime.AddDate(0, 0, req.DurationDays)
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if !end.After(*req.StartTime) {
		return model.Listing{}, fmt.Errorf("handler: %w - end_time must be after start_time", auctionerrors.ErrInvalidListing)
	}

	return h.service.CreateListing(c.Request.Context(), model.Listing{
		Title:       req.Title,
		Description: req.Description,
		CurrentBid:  req.StartingBid,
		ImageURL:    req.ImageURL,
		Category:    category,
		StartTime:   *req.StartTime,
		EndTime:     end,
		VideoURL:    req.VideoURL,
	})
}

// UploadListingHandler handles POST /listings/upload
func (h *AuctionHandler) UploadListingHandler(c *gin.Context) {
	var form helpers.UploadListingForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "UploadListingHandler", err)
		return
	}
	if err := helpers.RequireNonNegative("starting_bid", form.StartingBid); err != nil {
		helpers.HandleBindError(c, "UploadListingHandler", err)
		return
	}

	imageFile, err := c.FormFile("image")
	if err != nil {
		helpers.HandleServiceError(c, "UploadListingHandler", "missing image", fmt.Errorf("handler: %w", auctionerrors.ErrMissingImage), nil)
		return
	}
	image, err := h.saveUpload(media.KindImage, imageFile)
	if err != nil {
		helpers.HandleServiceError(c, "UploadListingHandler", "failed to store image", err, map[string]any{"file": imageFile.Filename})
		return
	}

	var videoURL string
	if videoFile, err := c.FormFile("video"); err == nil {
		video, err := h.saveUpload(media.KindVideo, videoFile)
		if err != nil {
			helpers.HandleServiceError(c, "UploadListingHandler", "failed to store video", err, map[string]any{"file": videoFile.Filename})
			return
		}
		videoURL = video.URL
	}

	listing, err := h.service.CreateScheduledListing(c.Request.Context(), auction.ListingDraft{
		Title:        form.Title,
		Description:  form.Description,
		StartingBid:  form.StartingBid,
		Category:     model.Category(form.Category),
		ImageURL:     image.URL,
		VideoURL:     videoURL,
		DurationDays: form.DurationDays,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UploadListingHandler", "failed to create listing", err, map[string]any{"title": form.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("UploadListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ID,
		"image_url":  listing.ImageURL,
		"video_url":  listing.VideoURL,
	})
}

func (h *AuctionHandler) saveUpload(kind media.Kind, fh *multipart.FileHeader) (media.Media, error) {
	f, err := fh.Open()
	if err != nil {
		return media.Media{}, fmt.Errorf("handler: opening %s upload: %w", kind, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return media.Media{}, fmt.Errorf("handler: reading %s upload: %w", kind, err)
	}
	return h.media.Save(kind, fh.Filename, data)
}

// FilterListingsHandler handles POST /listings/filter
func (h *AuctionHandler) FilterListingsHandler(c *gin.Context) {
	var req helpers.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FilterListingsHandler", err)
		return
	}

	listings, err := h.service.FilterListings(c.Request.Context(), model.Category(req.Category))
	if err != nil {
		helpers.HandleServiceError(c, "FilterListingsHandler", "failed to filter listings", err, map[string]any{"category": req.Category})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings filtered successfully")
}

// ResetFilterHandler handles DELETE /listings/filter
func (h *AuctionHandler) ResetFilterHandler(c *gin.Context) {
	listings := h.service.ResetFilter(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, listings, "filter cleared")
}

// ShareListingHandler handles POST /listings/:id/share
func (h *AuctionHandler) ShareListingHandler(c *gin.Context) {
	listingID := c.Param("id")
	var req helpers.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ShareListingHandler", err)
		return
	}

	link, err := h.service.ShareListing(c.Request.Context(), listingID, share.Platform(req.Platform), req.PageURL)
	if err != nil {
		helpers.HandleServiceError(c, "ShareListingHandler", "failed to share listing", err, map[string]any{
			"listing_id": listingID,
			"platform":   req.Platform,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ShareResponse{Platform: req.Platform, URL: link}, "share link created")
}
