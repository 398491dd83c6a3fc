package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType identifies a store change
type EventType string

const (
	EventListingCreated    EventType = "listing.created"
	EventBidPlaced         EventType = "listing.bid_placed"
	EventNotificationAdded EventType = "notification.added"
	EventNotificationRead  EventType = "notification.read"
	EventWatchlistAdded    EventType = "watchlist.added"
	EventWatchlistRemoved  EventType = "watchlist.removed"
	EventFilterChanged     EventType = "filter.changed"
	EventDateChanged       EventType = "date.changed"
	EventPaymentProcessed  EventType = "payment.processed"
)

// Event is delivered to store subscribers after a mutation has been applied
type Event struct {
	Type      EventType
	ListingID string
	UserID    string // bidder, set on EventBidPlaced
	Amount    decimal.Decimal
	Time      time.Time
}
