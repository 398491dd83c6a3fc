package auction

import (
	"context"
	"fmt"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/models"
	"auction-front/utils"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PlaceBid validates and records a bid by the current user. The amount must
// exceed the listing's current bid.
func (s *AuctionService) PlaceBid(ctx context.Context, listingID string, amount decimal.Decimal) (models.Bid, error) {
	_, span := s.tracer.Start(ctx, "AuctionService.PlaceBid",
		trace.WithAttributes(
			attribute.String("listing_id", listingID),
			attribute.String("amount", amount.String()),
		),
	)
	defer span.End()

	if err := validateBidInput(listingID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		UserID:    s.user.UserID,
		Amount:    amount,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.repo.RecordBid(bid); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.Bid{}, fmt.Errorf("service: failed to record bid for listing %s by user %s: %w", listingID, s.user.UserID, err)
	}

	s.publish(models.Event{Type: models.EventBidPlaced, ListingID: listingID, UserID: bid.UserID, Amount: amount, Time: bid.CreatedAt})
	return bid, nil
}

// ProcessPayment waits for the payment processor and then debits the
// balance. It returns the balance after the debit. The amount itself is
// not validated.
func (s *AuctionService) ProcessPayment(ctx context.Context, listingID string, amount decimal.Decimal) (decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "AuctionService.ProcessPayment",
		trace.WithAttributes(
			attribute.String("listing_id", listingID),
			attribute.String("amount", amount.String()),
		),
	)
	defer span.End()

	if err := s.payments.Authorize(ctx, listingID, amount); err != nil {
		span.SetStatus(codes.Error, err.Error())
		utils.Warn("Payment failed", map[string]any{
			"listing_id": listingID,
			"amount":     amount.String(),
			"error":      err.Error(),
		})
		return s.repo.Balance(), fmt.Errorf("service: payment for listing %s failed: %w", listingID, err)
	}

	balance, err := s.repo.Debit(amount, s.requireFunds)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		utils.Warn("Payment failed", map[string]any{
			"listing_id": listingID,
			"amount":     amount.String(),
			"error":      err.Error(),
		})
		return balance, fmt.Errorf("service: payment for listing %s failed: %w", listingID, err)
	}

	utils.Info("Payment processed", map[string]any{
		"listing_id": listingID,
		"amount":     amount.String(),
		"balance":    balance.String(),
	})
	s.publish(models.Event{Type: models.EventPaymentProcessed, ListingID: listingID, Amount: amount, Time: s.clock.Now()})
	return balance, nil
}

// BidWithPayment pays for a bid and then commits it. If the bid can no
// longer be committed once the payment went through, the amount is refunded.
func (s *AuctionService) BidWithPayment(ctx context.Context, listingID string, amount decimal.Decimal) (models.Bid, error) {
	ctx, span := s.tracer.Start(ctx, "AuctionService.BidWithPayment",
		trace.WithAttributes(
			attribute.String("listing_id", listingID),
			attribute.String("amount", amount.String()),
		),
	)
	defer span.End()

	if err := validateBidInput(listingID, amount); err != nil {
		return models.Bid{}, err
	}
	listing, err := s.Listing(listingID)
	if err != nil {
		return models.Bid{}, err
	}
	if !amount.GreaterThan(listing.CurrentBid) {
		return models.Bid{}, fmt.Errorf("service: %w - current bid is %s", auctionerrors.ErrBidTooLow, listing.CurrentBid.StringFixed(2))
	}

	if _, err := s.ProcessPayment(ctx, listingID, amount); err != nil {
		return models.Bid{}, err
	}

	bid, err := s.PlaceBid(ctx, listingID, amount)
	if err != nil {
		balance := s.repo.Credit(amount)
		utils.Warn("Bid rejected after payment, refunded", map[string]any{
			"listing_id": listingID,
			"amount":     amount.String(),
			"balance":    balance.String(),
			"error":      err.Error(),
		})
		return models.Bid{}, err
	}

	msg := fmt.Sprintf("You placed a bid of $%s on %s", amount.StringFixed(2), listing.Title)
	if _, err := s.AddNotification(ctx, msg, models.NotificationBid); err != nil {
		utils.Error("Failed to add bid notification", map[string]any{"error": err.Error()})
	}
	return bid, nil
}

// AutoBid raises the current bid by the auto-bid increment, capped at maxAmount
func (s *AuctionService) AutoBid(ctx context.Context, listingID string, maxAmount decimal.Decimal) (models.Bid, error) {
	ctx, span := s.tracer.Start(ctx, "AuctionService.AutoBid",
		trace.WithAttributes(
			attribute.String("listing_id", listingID),
			attribute.String("max_amount", maxAmount.String()),
		),
	)
	defer span.End()

	listing, err := s.Listing(listingID)
	if err != nil {
		return models.Bid{}, err
	}
	if !maxAmount.GreaterThan(listing.CurrentBid) {
		return models.Bid{}, fmt.Errorf("service: %w - maximum bid must exceed current bid %s", auctionerrors.ErrBidTooLow, listing.CurrentBid.StringFixed(2))
	}

	next := decimal.Min(listing.CurrentBid.Add(s.autoBidIncrement), maxAmount)
	return s.BidWithPayment(ctx, listingID, next)
}

// validateBidInput checks input validity before any state is read
func validateBidInput(listingID string, amount decimal.Decimal) error {
	if listingID == "" {
		return fmt.Errorf("service: %w - missing listing ID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return nil
}
