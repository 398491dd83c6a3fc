package auction

import (
	"context"
	"fmt"
	"slices"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultDurationDays is how long a new auction runs when no duration is given
const DefaultDurationDays = 7

// DurationOptions are the auction lengths, in days, a seller can pick
var DurationOptions = []int{1, 3, 7, 14}

// ListingDraft is what a seller submits to open a new auction
type ListingDraft struct {
	Title        string
	Description  string
	StartingBid  decimal.Decimal
	Category     models.Category
	ImageURL     string
	VideoURL     string
	DurationDays int
}

// CreateScheduledListing opens an auction from a draft. It starts at the
// next available auction date and runs for the draft's duration.
func (s *AuctionService) CreateScheduledListing(ctx context.Context, draft ListingDraft) (models.Listing, error) {
	if draft.ImageURL == "" {
		return models.Listing{}, fmt.Errorf("service: %w", auctionerrors.ErrMissingImage)
	}
	if !draft.Category.Valid() {
		return models.Listing{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidCategory, draft.Category)
	}
	days := draft.DurationDays
	if days == 0 {
		days = DefaultDurationDays
	}
	if !slices.Contains(DurationOptions, days) {
		return models.Listing{}, fmt.Errorf("service: %w - duration must be one of %v days", auctionerrors.ErrInvalidListing, DurationOptions)
	}

	start := s.NextAvailableAuctionDate()
	return s.CreateListing(ctx, models.Listing{
		Title:       draft.Title,
		Description: draft.Description,
		CurrentBid:  draft.StartingBid,
		ImageURL:    draft.ImageURL,
		Category:    draft.Category,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(days) * 24 * time.Hour),
		VideoURL:    draft.VideoURL,
	})
}
