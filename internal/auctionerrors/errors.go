package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingExists   = errors.New("listing already exists")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrMediaNotFound   = errors.New("media not found")
)

// business logic errors
var (
	ErrInvalidBid              = errors.New("invalid bid")
	ErrBidTooLow               = errors.New("bid amount too low")
	ErrInvalidDirection        = errors.New("invalid date direction")
	ErrInvalidCategory         = errors.New("invalid category")
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrDateOutOfRange          = errors.New("date outside browsable range")
	ErrUnknownPlatform         = errors.New("unknown share platform")
)

// payment errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPaymentDeclined   = errors.New("payment declined")
)

// media errors
var (
	ErrMissingImage     = errors.New("listing image is required")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrMediaTooLarge    = errors.New("media exceeds size limit")
)
