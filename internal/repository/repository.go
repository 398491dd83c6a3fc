package repository

import (
	"auction-front/internal/auctionerrors"
	model "auction-front/internal/models"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-front/internal/repository AuctionDB

// AuctionDB defines the state storage interface for the auction front end
type AuctionDB interface {
	AddListing(listing model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	ListListings() []model.Listing
	FilteredListings() []model.Listing
	FilterByCategory(category model.Category) []model.Listing
	ResetFilter() []model.Listing
	RecordBid(bid model.Bid) error
	BidHistory(userID string) []model.Bid

	PrependNotification(n model.Notification)
	MarkNotificationRead(notificationID string) bool
	MarkAllNotificationsRead() int
	ListNotifications() []model.Notification

	AddWatchlistItem(item model.WatchlistItem) (model.WatchlistItem, bool)
	RemoveWatchlistItem(listingID string) int
	ListWatchlist() []model.WatchlistItem
	IsWatched(listingID string) bool
	ToggleWatchlistItem(item model.WatchlistItem) bool

	Balance() decimal.Decimal
	Debit(amount decimal.Decimal, requireFunds bool) (decimal.Decimal, error)
	Credit(amount decimal.Decimal) decimal.Decimal

	CurrentDate() time.Time
	ShiftDate(days int) time.Time
	ShiftDateWithin(days int, from, until time.Time) (time.Time, bool)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Every mutation holds the write lock so only one logical change happens at a time.
type MemoryRepo struct {
	mu            sync.RWMutex
	listings      []model.Listing
	index         map[string]int       // key: listingID -> position in listings
	filtered      []string             // listing IDs of the current filtered view
	notifications []model.Notification // newest first
	watchlist     []model.WatchlistItem
	bids          map[string][]model.Bid // key: userID -> bids in placement order
	balance       decimal.Decimal
	currentDate   time.Time
}

// NewMemoryRepo creates a new in-memory repository with the date cursor at
// startDate and the account holding balance
func NewMemoryRepo(startDate time.Time, balance decimal.Decimal) *MemoryRepo {
	return &MemoryRepo{
		index:       make(map[string]int),
		bids:        make(map[string][]model.Bid),
		balance:     balance,
		currentDate: startDate,
	}
}

// AddListing appends a listing to the master sequence and the filtered view
func (r *MemoryRepo) AddListing(listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID == "" {
		return fmt.Errorf("add listing: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}
	if _, exists := r.index[listing.ID]; exists {
		return fmt.Errorf("add listing %s: %w", listing.ID, auctionerrors.ErrListingExists)
	}

	r.index[listing.ID] = len(r.listings)
	r.listings = append(r.listings, listing)
	r.filtered = append(r.filtered, listing.ID)
	return nil
}

// GetListing returns a listing by ID
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return r.listings[i], nil
}

// ListListings returns every listing in creation order
func (r *MemoryRepo) ListListings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Listing{}, r.listings...)
}

// FilteredListings resolves the filtered view against the current listings
func (r *MemoryRepo) FilteredListings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveFiltered()
}

// FilterByCategory replaces the filtered view with every listing of the category
func (r *MemoryRepo) FilterByCategory(category model.Category) []model.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filtered = make([]string, 0, len(r.listings))
	for _, l := range r.listings {
		if l.Category == category {
			r.filtered = append(r.filtered, l.ID)
		}
	}
	return r.resolveFiltered()
}

// ResetFilter makes the filtered view contain every listing again
func (r *MemoryRepo) ResetFilter() []model.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filtered = make([]string, 0, len(r.listings))
	for _, l := range r.listings {
		r.filtered = append(r.filtered, l.ID)
	}
	return r.resolveFiltered()
}

func (r *MemoryRepo) resolveFiltered() []model.Listing {
	out := make([]model.Listing, 0, len(r.filtered))
	for _, id := range r.filtered {
		if i, ok := r.index[id]; ok {
			out = append(out, r.listings[i])
		}
	}
	return out
}

// RecordBid commits a bid: the listing's current bid becomes bid.Amount and
// the bid joins the user's history. The amount must exceed the current bid.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[bid.ListingID]
	if !ok {
		return fmt.Errorf("record bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	current := r.listings[i].CurrentBid
	if !bid.Amount.GreaterThan(current) {
		return fmt.Errorf("record bid for listing %s: %w - current bid is %s", bid.ListingID, auctionerrors.ErrBidTooLow, current)
	}

	r.listings[i].CurrentBid = bid.Amount
	r.bids[bid.UserID] = append(r.bids[bid.UserID], bid)
	return nil
}

// BidHistory returns every bid a user has committed, oldest first
func (r *MemoryRepo) BidHistory(userID string) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Bid{}, r.bids[userID]...)
}

// PrependNotification stores n as the newest notification
func (r *MemoryRepo) PrependNotification(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]model.Notification{n}, r.notifications...)
}

// MarkNotificationRead flips the read flag of a notification. It reports
// whether the notification exists; unknown IDs leave the state untouched.
func (r *MemoryRepo) MarkNotificationRead(notificationID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == notificationID {
			r.notifications[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead flips every unread notification and returns how many changed
func (r *MemoryRepo) MarkAllNotificationsRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.notifications {
		if !r.notifications[i].Read {
			r.notifications[i].Read = true
			changed++
		}
	}
	return changed
}

// ListNotifications returns notifications newest first
func (r *MemoryRepo) ListNotifications() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Notification{}, r.notifications...)
}

// AddWatchlistItem adds item unless its listing is already watched. It returns
// the stored entry and whether it was newly added.
func (r *MemoryRepo) AddWatchlistItem(item model.WatchlistItem) (model.WatchlistItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.watchlist {
		if w.ListingID == item.ListingID {
			return w, false
		}
	}
	r.watchlist = append(r.watchlist, item)
	return item, true
}

// RemoveWatchlistItem drops every entry for the listing and returns how many were removed
func (r *MemoryRepo) RemoveWatchlistItem(listingID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.watchlist[:0]
	removed := 0
	for _, w := range r.watchlist {
		if w.ListingID == listingID {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	r.watchlist = kept
	return removed
}

// ListWatchlist returns watchlist entries in the order they were added
func (r *MemoryRepo) ListWatchlist() []model.WatchlistItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.WatchlistItem{}, r.watchlist...)
}

// IsWatched reports whether the listing is on the watchlist
func (r *MemoryRepo) IsWatched(listingID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.watchlist {
		if w.ListingID == listingID {
			return true
		}
	}
	return false
}

// ToggleWatchlistItem removes every entry for the item's listing when it is
// watched and adds item otherwise. It reports whether the listing is watched afterwards.
func (r *MemoryRepo) ToggleWatchlistItem(item model.WatchlistItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.watchlist[:0]
	removed := false
	for _, w := range r.watchlist {
		if w.ListingID == item.ListingID {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	if removed {
		r.watchlist = kept
		return false
	}
	r.watchlist = append(r.watchlist, item)
	return true
}

// Balance returns the account balance
func (r *MemoryRepo) Balance() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance
}

// Debit subtracts amount from the balance and returns the new balance. With
// requireFunds set, a debit larger than the balance fails and changes nothing.
func (r *MemoryRepo) Debit(amount decimal.Decimal, requireFunds bool) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if requireFunds && amount.GreaterThan(r.balance) {
		return r.balance, fmt.Errorf("debit %s: %w - balance is %s", amount, auctionerrors.ErrInsufficientFunds, r.balance)
	}
	r.balance = r.balance.Sub(amount)
	return r.balance, nil
}

// Credit adds amount to the balance and returns the new balance
func (r *MemoryRepo) Credit(amount decimal.Decimal) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance = r.balance.Add(amount)
	return r.balance
}

// CurrentDate returns the date cursor
func (r *MemoryRepo) CurrentDate() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentDate
}

// ShiftDate moves the date cursor by whole calendar days, keeping the time of day
func (r *MemoryRepo) ShiftDate(days int) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentDate = r.currentDate.AddDate(0, 0, days)
	return r.currentDate
}

// ShiftDateWithin moves the date cursor by days only if the result is not
// before from and is before until. A zero bound is not checked. The cursor is
// returned with whether it moved.
func (r *MemoryRepo) ShiftDateWithin(days int, from, until time.Time) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.currentDate.AddDate(0, 0, days)
	if !from.IsZero() && next.Before(from) {
		return r.currentDate, false
	}
	if !until.IsZero() && !next.Before(until) {
		return r.currentDate, false
	}
	r.currentDate = next
	return r.currentDate, true
}
