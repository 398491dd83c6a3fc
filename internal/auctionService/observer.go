package auction

import (
	"context"
	"fmt"

	"auction-front/internal/models"
	"auction-front/utils"
)

// Subscriber receives every change applied through the service
type Subscriber func(models.Event)

type subscription struct {
	id int
	fn Subscriber
}

// Subscribe registers fn for change events and returns a func that removes it.
// Subscribers run synchronously, in registration order, after the change is stored.
func (s *AuctionService) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *AuctionService) publish(ev models.Event) {
	s.subMu.RLock()
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

// NotifyWatchedBids subscribes a handler that adds a bid notification
// whenever another bidder's bid lands on a watched listing. The current
// user's own bids are already confirmed by BidWithPayment.
func (s *AuctionService) NotifyWatchedBids() (unsubscribe func()) {
	return s.Subscribe(func(ev models.Event) {
		if ev.Type != models.EventBidPlaced || ev.UserID == s.user.UserID {
			return
		}
		if !s.repo.IsWatched(ev.ListingID) {
			return
		}

		title := ev.ListingID
		if l, err := s.repo.GetListing(ev.ListingID); err == nil {
			title = l.Title
		}

		msg := fmt.Sprintf("New bid of $%s on %s in your watchlist", ev.Amount.StringFixed(2), title)
		if _, err := s.AddNotification(context.Background(), msg, models.NotificationBid); err != nil {
			utils.Error("Failed to add watchlist notification", map[string]any{
				"listing_id": ev.ListingID,
				"error":      err.Error(),
			})
		}
	})
}
