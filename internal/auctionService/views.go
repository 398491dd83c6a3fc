package auction

import (
	"context"
	"fmt"
	"math"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AuctionEnded is the countdown text for a listing past its end time
const AuctionEnded = "Auction ended"

// VisibleListings returns filtered listings that start on the date cursor's day
func (s *AuctionService) VisibleListings() []models.Listing {
	cursor := s.CurrentDate()
	filtered := s.repo.FilteredListings()

	visible := make([]models.Listing, 0, len(filtered))
	for _, l := range filtered {
		if sameDay(l.StartTime, cursor, s.location) {
			visible = append(visible, l)
		}
	}
	return visible
}

// UnreadCount returns how many notifications are still unread
func (s *AuctionService) UnreadCount() int {
	unread := 0
	for _, n := range s.repo.ListNotifications() {
		if !n.Read {
			unread++
		}
	}
	return unread
}

// WatchedListings joins the watchlist with listings, skipping entries whose
// listing does not exist
func (s *AuctionService) WatchedListings() []models.Listing {
	items := s.repo.ListWatchlist()
	out := make([]models.Listing, 0, len(items))
	for _, w := range items {
		l, err := s.repo.GetListing(w.ListingID)
		if err != nil {
			continue
		}
		out = append(out, l)
	}
	return out
}

// GalleryImages returns the listing image followed by two stock images for its category
func GalleryImages(l models.Listing) []string {
	topic := "house"
	if l.Category == models.CategoryAutomotive {
		topic = "car"
	}
	return []string{
		l.ImageURL,
		fmt.Sprintf("https://source.unsplash.com/800x600/?%s&sig=1", topic),
		fmt.Sprintf("https://source.unsplash.com/800x600/?%s&sig=2", topic),
	}
}

// TimeLeft formats the time until the listing ends as "Xd Xh Xm Xs"
func TimeLeft(l models.Listing, now time.Time) string {
	diff := l.EndTime.Sub(now)
	if diff <= 0 {
		return AuctionEnded
	}

	total := int64(diff / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// DateLabel names the cursor's day relative to now: Today, Yesterday,
// Tomorrow, or a short date such as "Mon, Jan 2"
func DateLabel(cursor, now time.Time, loc *time.Location) string {
	switch dayOffset(now, cursor, loc) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	}
	return cursor.In(loc).Format("Mon, Jan 2")
}

// CanNavigate reports whether moving the cursor in direction keeps it within
// yesterday..tomorrow of now
func CanNavigate(cursor, now time.Time, direction models.Direction, loc *time.Location) bool {
	offset := dayOffset(now, cursor, loc)
	switch direction {
	case models.DirectionPrev:
		return offset > -1
	case models.DirectionNext:
		return offset < 1
	}
	return false
}

// DateLabel names the current date cursor relative to today
func (s *AuctionService) DateLabel() string {
	return DateLabel(s.CurrentDate(), s.Now(), s.location)
}

// CanNavigate reports whether the cursor may move in direction
func (s *AuctionService) CanNavigate(direction models.Direction) bool {
	return CanNavigate(s.CurrentDate(), s.Now(), direction, s.location)
}

// NavigateDateWithinWindow moves the date cursor like NavigateDate but
// refuses to leave the yesterday..tomorrow window. The bound check and the
// move happen in one repository call.
func (s *AuctionService) NavigateDateWithinWindow(ctx context.Context, direction models.Direction) (time.Time, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.NavigateDateWithinWindow",
		trace.WithAttributes(attribute.String("direction", string(direction))),
	)
	defer span.End()

	today := startOfDay(s.Now(), s.location)
	var (
		days        int
		from, until time.Time
	)
	switch direction {
	case models.DirectionPrev:
		days = -1
		from = today.AddDate(0, 0, -1)
	case models.DirectionNext:
		days = 1
		until = today.AddDate(0, 0, 2)
	default:
		return time.Time{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidDirection, direction)
	}

	date, moved := s.repo.ShiftDateWithin(days, from, until)
	if !moved {
		return date, fmt.Errorf("service: %w - cannot move %s from %s", auctionerrors.ErrDateOutOfRange, direction, DateLabel(date, s.Now(), s.location))
	}
	s.publish(models.Event{Type: models.EventDateChanged, Time: date})
	return date, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	return startOfDay(a, loc).Equal(startOfDay(b, loc))
}

// dayOffset returns how many calendar days t lies after ref
func dayOffset(ref, t time.Time, loc *time.Location) int {
	hours := startOfDay(t, loc).Sub(startOfDay(ref, loc)).Hours()
	return int(math.Round(hours / 24))
}
