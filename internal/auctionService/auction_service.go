package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/clock"
	"auction-front/internal/models"
	"auction-front/internal/payment"
	"auction-front/internal/repository"
	"auction-front/internal/share"
	"auction-front/utils"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "auction-front/internal/auctionService"

// DefaultAutoBidIncrement is how far an auto-bid raises the current bid
var DefaultAutoBidIncrement = decimal.NewFromInt(1)

// DefaultUser is the browsing user when none is configured
var DefaultUser = models.User{
	UserID:    "user-1",
	Name:      "John Doe",
	AvatarURL: "https://via.placeholder.com/150",
}

// AuctionService is the single entry point for reading and mutating auction state
type AuctionService struct {
	repo     repository.AuctionDB
	payments payment.Processor
	clock    clock.Clock
	tracer   trace.Tracer
	location *time.Location
	user     models.User

	requireFunds     bool
	autoBidIncrement decimal.Decimal

	subMu       sync.RWMutex
	subscribers []subscription
	nextSubID   int
}

// Option configures an AuctionService
type Option func(*AuctionService)

// WithClock replaces the clock used for timestamps and scheduling
func WithClock(clk clock.Clock) Option {
	return func(s *AuctionService) { s.clock = clk }
}

// WithTracerProvider replaces the global tracer provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *AuctionService) { s.tracer = tp.Tracer(tracerName) }
}

// WithLocation sets the time zone used for calendar days
func WithLocation(loc *time.Location) Option {
	return func(s *AuctionService) { s.location = loc }
}

// WithUser sets the user that bids are attributed to
func WithUser(u models.User) Option {
	return func(s *AuctionService) { s.user = u }
}

// WithRequireFunds makes payments fail when the balance cannot cover them
func WithRequireFunds(require bool) Option {
	return func(s *AuctionService) { s.requireFunds = require }
}

// WithAutoBidIncrement sets the step an auto-bid adds to the current bid
func WithAutoBidIncrement(step decimal.Decimal) Option {
	return func(s *AuctionService) { s.autoBidIncrement = step }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, payments payment.Processor, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:             repo,
		payments:         payments,
		clock:            clock.Real{},
		tracer:           otel.GetTracerProvider().Tracer(tracerName),
		location:         time.UTC,
		user:             DefaultUser,
		autoBidIncrement: DefaultAutoBidIncrement,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentUser returns the user bids are attributed to
func (s *AuctionService) CurrentUser() models.User {
	return s.user
}

// Listings returns every listing in creation order
func (s *AuctionService) Listings() []models.Listing {
	return s.repo.ListListings()
}

// FilteredListings returns the current filtered view
func (s *AuctionService) FilteredListings() []models.Listing {
	return s.repo.FilteredListings()
}

// Listing returns a single listing
func (s *AuctionService) Listing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}
	l, err := s.repo.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return l, nil
}

// Notifications returns notifications newest first
func (s *AuctionService) Notifications() []models.Notification {
	return s.repo.ListNotifications()
}

// Watchlist returns the watchlist in insertion order
func (s *AuctionService) Watchlist() []models.WatchlistItem {
	return s.repo.ListWatchlist()
}

// IsWatched reports whether a listing is on the watchlist
func (s *AuctionService) IsWatched(listingID string) bool {
	return s.repo.IsWatched(listingID)
}

// Balance returns the account balance
func (s *AuctionService) Balance() decimal.Decimal {
	return s.repo.Balance()
}

// CurrentDate returns the date cursor
func (s *AuctionService) CurrentDate() time.Time {
	return s.repo.CurrentDate()
}

// Now returns the service clock's time in the configured location
func (s *AuctionService) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// BidHistory returns the current user's committed bids, oldest first
func (s *AuctionService) BidHistory() []models.Bid {
	return s.repo.BidHistory(s.user.UserID)
}

// NavigateDate moves the date cursor one calendar day in direction
func (s *AuctionService) NavigateDate(ctx context.Context, direction models.Direction) (time.Time, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.NavigateDate",
		trace.WithAttributes(attribute.String("direction", string(direction))),
	)
	defer span.End()

	var days int
	switch direction {
	case models.DirectionPrev:
		days = -1
	case models.DirectionNext:
		days = 1
	default:
		return time.Time{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidDirection, direction)
	}

	date := s.repo.ShiftDate(days)
	s.publish(models.Event{Type: models.EventDateChanged, Time: date})
	return date, nil
}

// FilterListings replaces the filtered view with every listing of category
func (s *AuctionService) FilterListings(ctx context.Context, category models.Category) ([]models.Listing, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.FilterListings",
		trace.WithAttributes(attribute.String("category", string(category))),
	)
	defer span.End()

	if !category.Valid() {
		return nil, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidCategory, category)
	}

	filtered := s.repo.FilterByCategory(category)
	s.publish(models.Event{Type: models.EventFilterChanged, Time: s.clock.Now()})
	return filtered, nil
}

// ResetFilter makes the filtered view show every listing again
func (s *AuctionService) ResetFilter(ctx context.Context) []models.Listing {
	_, span := s.tracer.Start(ctx, "AuctionService.ResetFilter")
	defer span.End()

	filtered := s.repo.ResetFilter()
	s.publish(models.Event{Type: models.EventFilterChanged, Time: s.clock.Now()})
	return filtered
}

// AddNotification stores a new unread notification as the newest one
func (s *AuctionService) AddNotification(ctx context.Context, message string, typ models.NotificationType) (models.Notification, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.AddNotification",
		trace.WithAttributes(attribute.String("type", string(typ))),
	)
	defer span.End()

	if !typ.Valid() {
		return models.Notification{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidNotificationType, typ)
	}

	n := models.Notification{
		ID:        utils.GenerateID(),
		Message:   message,
		Type:      typ,
		Read:      false,
		Timestamp: s.clock.Now().UTC(),
	}
	s.repo.PrependNotification(n)
	s.publish(models.Event{Type: models.EventNotificationAdded, Time: n.Timestamp})
	return n, nil
}

// MarkNotificationAsRead flags a notification as read. Unknown IDs are ignored.
func (s *AuctionService) MarkNotificationAsRead(ctx context.Context, notificationID string) {
	_, span := s.tracer.Start(ctx, "AuctionService.MarkNotificationAsRead",
		trace.WithAttributes(attribute.String("notification_id", notificationID)),
	)
	defer span.End()

	if s.repo.MarkNotificationRead(notificationID) {
		s.publish(models.Event{Type: models.EventNotificationRead, Time: s.clock.Now()})
	}
}

// MarkAllNotificationsRead flags every notification as read and returns how many changed
func (s *AuctionService) MarkAllNotificationsRead(ctx context.Context) int {
	_, span := s.tracer.Start(ctx, "AuctionService.MarkAllNotificationsRead")
	defer span.End()

	changed := s.repo.MarkAllNotificationsRead()
	if changed > 0 {
		s.publish(models.Event{Type: models.EventNotificationRead, Time: s.clock.Now()})
	}
	return changed
}

// AddToWatchlist saves a listing to the watchlist. Watching an already
// watched listing returns the existing entry and added=false.
func (s *AuctionService) AddToWatchlist(ctx context.Context, listingID string) (item models.WatchlistItem, added bool, err error) {
	_, span := s.tracer.Start(ctx, "AuctionService.AddToWatchlist",
		trace.WithAttributes(attribute.String("listing_id", listingID)),
	)
	defer span.End()

	if listingID == "" {
		return models.WatchlistItem{}, false, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}

	item, added = s.repo.AddWatchlistItem(models.WatchlistItem{
		ListingID: listingID,
		AddedAt:   s.clock.Now().UTC(),
	})
	if added {
		s.publish(models.Event{Type: models.EventWatchlistAdded, ListingID: listingID, Time: item.AddedAt})
	}
	return item, added, nil
}

// RemoveFromWatchlist drops every watchlist entry for the listing
func (s *AuctionService) RemoveFromWatchlist(ctx context.Context, listingID string) int {
	_, span := s.tracer.Start(ctx, "AuctionService.RemoveFromWatchlist",
		trace.WithAttributes(attribute.String("listing_id", listingID)),
	)
	defer span.End()

	removed := s.repo.RemoveWatchlistItem(listingID)
	if removed > 0 {
		s.publish(models.Event{Type: models.EventWatchlistRemoved, ListingID: listingID, Time: s.clock.Now()})
	}
	return removed
}

// ToggleWatchlist watches an unwatched listing and unwatches a watched one.
// It reports whether the listing is watched afterwards.
func (s *AuctionService) ToggleWatchlist(ctx context.Context, listingID string) (bool, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.ToggleWatchlist",
		trace.WithAttributes(attribute.String("listing_id", listingID)),
	)
	defer span.End()

	if listingID == "" {
		return false, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}

	now := s.clock.Now().UTC()
	watched := s.repo.ToggleWatchlistItem(models.WatchlistItem{ListingID: listingID, AddedAt: now})
	if watched {
		s.publish(models.Event{Type: models.EventWatchlistAdded, ListingID: listingID, Time: now})
	} else {
		s.publish(models.Event{Type: models.EventWatchlistRemoved, ListingID: listingID, Time: now})
	}
	return watched, nil
}

// NextAvailableAuctionDate returns the top of the next hour
func (s *AuctionService) NextAvailableAuctionDate() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
}

// CreateListing stores a listing under a freshly generated ID. Field
// contents are stored as given.
func (s *AuctionService) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.CreateListing",
		trace.WithAttributes(
			attribute.String("title", listing.Title),
			attribute.String("category", string(listing.Category)),
		),
	)
	defer span.End()

	listing.ID = utils.GenerateID()
	if err := s.repo.AddListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}

	utils.Info("Listing created", map[string]any{
		"listing_id": listing.ID,
		"title":      listing.Title,
		"category":   listing.Category,
	})
	s.publish(models.Event{Type: models.EventListingCreated, ListingID: listing.ID, Amount: listing.CurrentBid, Time: s.clock.Now()})
	return listing, nil
}

// ShareListing logs a share and returns the link for platform
func (s *AuctionService) ShareListing(ctx context.Context, listingID string, platform share.Platform, pageURL string) (string, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.ShareListing",
		trace.WithAttributes(
			attribute.String("listing_id", listingID),
			attribute.String("platform", string(platform)),
		),
	)
	defer span.End()

	listing, err := s.Listing(listingID)
	if err != nil {
		return "", err
	}

	link, err := share.URL(platform, pageURL, listing.Title, listing.Description)
	if err != nil {
		return "", fmt.Errorf("service: failed to share listing %s: %w", listingID, err)
	}

	utils.Info("Sharing listing", map[string]any{
		"listing_id": listingID,
		"platform":   platform,
		"url":        link,
	})
	return link, nil
}

// InviteFriend logs an invitation for email
func (s *AuctionService) InviteFriend(ctx context.Context, email string) {
	_, span := s.tracer.Start(ctx, "AuctionService.InviteFriend")
	defer span.End()

	utils.Info("Inviting friend", map[string]any{
		"email":   email,
		"user_id": s.user.UserID,
	})
}
