package helpers

import (
	"time"

	model "auction-front/internal/models"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateListingRequest opens a listing from JSON. Without start_time the
// auction is scheduled at the next available hour for duration_days.
type CreateListingRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	ImageURL     string          `json:"image_url" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	VideoURL     string          `json:"video_url"`
	DurationDays int             `json:"duration_days" binding:"omitempty,oneof=1 3 7 14"`
	StartTime    *time.Time      `json:"start_time"`
	EndTime      *time.Time      `json:"end_time"`
}

// UploadListingForm is the multipart form behind POST /listings/upload.
// The image and optional video arrive as files.
type UploadListingForm struct {
	Title        string          `form:"title" binding:"required"`
	Description  string          `form:"description"`
	StartingBid  decimal.Decimal `form:"starting_bid"`
	Category     string          `form:"category" binding:"required"`
	DurationDays int             `form:"duration_days" binding:"omitempty,oneof=1 3 7 14"`
}

type FilterRequest struct {
	Category string `json:"category" binding:"required"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AutoBidRequest struct {
	MaxAmount decimal.Decimal `json:"max_amount"`
}

type ShareRequest struct {
	Platform string `json:"platform" binding:"required"`
	PageURL  string `json:"page_url" binding:"required,url"`
}

type AddNotificationRequest struct {
	Message string `json:"message"`
	Type    string `json:"type" binding:"required"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Response DTOs

type ListingDetailResponse struct {
	model.Listing
	Gallery  []string `json:"gallery"`
	TimeLeft string   `json:"time_left"`
	Watched  bool     `json:"watched"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
	Balance   decimal.Decimal `json:"balance"`
}

type DateResponse struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	CanPrev bool      `json:"can_prev"`
	CanNext bool      `json:"can_next"`
}

type NextDateResponse struct {
	Date time.Time `json:"date"`
}

type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

type WatchlistResponse struct {
	Items    []model.WatchlistItem `json:"items"`
	Listings []model.Listing       `json:"listings"`
}

type WatchlistAddResponse struct {
	Item  model.WatchlistItem `json:"item"`
	Added bool                `json:"added"`
}

type WatchlistRemoveResponse struct {
	ListingID string `json:"listing_id"`
	Removed   int    `json:"removed"`
}

type ToggleResponse struct {
	ListingID string `json:"listing_id"`
	Watched   bool   `json:"watched"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type ProfileResponse struct {
	User     model.User      `json:"user"`
	Balance  decimal.Decimal `json:"balance"`
	Bids     []model.Bid     `json:"bids"`
	Watching []model.Listing `json:"watching"`
}

type ShareResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
