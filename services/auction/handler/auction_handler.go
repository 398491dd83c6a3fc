package handler

import (
	"context"
	"time"

	auction "auction-front/internal/auctionService"
	"auction-front/internal/media"
	model "auction-front/internal/models"
	"auction-front/internal/share"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_handler.go -package=handler auction-front/services/auction/handler AuctionServiceInterface,MediaStore

type AuctionServiceInterface interface {
	Listings() []model.Listing
	FilteredListings() []model.Listing
	VisibleListings() []model.Listing
	Listing(listingID string) (model.Listing, error)
	IsWatched(listingID string) bool
	Now() time.Time
	CreateListing(ctx context.Context, listing model.Listing) (model.Listing, error)
	CreateScheduledListing(ctx context.Context, draft auction.ListingDraft) (model.Listing, error)
	FilterListings(ctx context.Context, category model.Category) ([]model.Listing, error)
	ResetFilter(ctx context.Context) []model.Listing

	BidWithPayment(ctx context.Context, listingID string, amount decimal.Decimal) (model.Bid, error)
	AutoBid(ctx context.Context, listingID string, maxAmount decimal.Decimal) (model.Bid, error)
	ShareListing(ctx context.Context, listingID string, platform share.Platform, pageURL string) (string, error)

	CurrentDate() time.Time
	DateLabel() string
	CanNavigate(direction model.Direction) bool
	NavigateDateWithinWindow(ctx context.Context, direction model.Direction) (time.Time, error)
	NextAvailableAuctionDate() time.Time

	Notifications() []model.Notification
	UnreadCount() int
	AddNotification(ctx context.Context, message string, typ model.NotificationType) (model.Notification, error)
	MarkNotificationAsRead(ctx context.Context, notificationID string)
	MarkAllNotificationsRead(ctx context.Context) int

	Watchlist() []model.WatchlistItem
	WatchedListings() []model.Listing
	AddToWatchlist(ctx context.Context, listingID string) (model.WatchlistItem, bool, error)
	RemoveFromWatchlist(ctx context.Context, listingID string) int
	ToggleWatchlist(ctx context.Context, listingID string) (bool, error)

	Balance() decimal.Decimal
	CurrentUser() model.User
	BidHistory() []model.Bid
	InviteFriend(ctx context.Context, email string)
}

// MediaStore keeps uploaded listing media
type MediaStore interface {
	Save(kind media.Kind, name string, data []byte) (media.Media, error)
	Get(id string) (media.Media, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	media   MediaStore
}

func NewAuctionHandler(service AuctionServiceInterface, media MediaStore) *AuctionHandler {
	return &AuctionHandler{service: service, media: media}
}
