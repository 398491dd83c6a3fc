package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a listing
type Category string

const (
	CategoryAutomotive Category = "automotive"
	CategoryRealEstate Category = "real_estate"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == CategoryAutomotive || c == CategoryRealEstate
}

// NotificationType is the kind of event a notification describes
type NotificationType string

const (
	NotificationBid     NotificationType = "bid"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

// Valid reports whether t is a known notification type
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationBid, NotificationLike, NotificationComment:
		return true
	}
	return false
}

// Direction moves the date cursor one day back or forward
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// User represents the person browsing the auction
type User struct {
	UserID    string `json:"user_id" yaml:"user_id"`
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// Listing represents an item under auction
type Listing struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	CurrentBid  decimal.Decimal `json:"current_bid" yaml:"-"`
	ImageURL    string          `json:"image_url" yaml:"image_url"`
	Category    Category        `json:"category" yaml:"category"`
	StartTime   time.Time       `json:"start_time" yaml:"start_time"`
	EndTime     time.Time       `json:"end_time" yaml:"end_time"`
	VideoURL    string          `json:"video_url,omitempty" yaml:"video_url"`
}

// WatchlistItem is a saved reference to a listing
type WatchlistItem struct {
	ListingID string    `json:"listing_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Notification is an event surfaced to the user
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	Timestamp time.Time        `json:"timestamp"`
}

// Bid is a committed bid placed by the current user
type Bid struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
