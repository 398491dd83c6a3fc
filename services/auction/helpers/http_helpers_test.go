package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"auction-front/internal/auctionerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{auctionerrors.ErrListingNotFound, http.StatusNotFound},
		{auctionerrors.ErrMediaNotFound, http.StatusNotFound},
		{auctionerrors.ErrInvalidBid, http.StatusBadRequest},
		{auctionerrors.ErrInvalidListing, http.StatusBadRequest},
		{auctionerrors.ErrMissingImage, http.StatusBadRequest},
		{auctionerrors.ErrInvalidCategory, http.StatusBadRequest},
		{auctionerrors.ErrInvalidNotificationType, http.StatusBadRequest},
		{auctionerrors.ErrInvalidDirection, http.StatusBadRequest},
		{auctionerrors.ErrUnknownPlatform, http.StatusBadRequest},
		{auctionerrors.ErrBidTooLow, http.StatusConflict},
		{auctionerrors.ErrListingExists, http.StatusConflict},
		{auctionerrors.ErrDateOutOfRange, http.StatusUnprocessableEntity},
		{auctionerrors.ErrInsufficientFunds, http.StatusPaymentRequired},
		{auctionerrors.ErrPaymentDeclined, http.StatusPaymentRequired},
		{auctionerrors.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{auctionerrors.ErrMediaTooLarge, http.StatusRequestEntityTooLarge},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{context.Canceled, http.StatusRequestTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.err.Error(), func(t *testing.T) {
			t.Parallel()

			// errors arrive wrapped by the service layer
			status, msg := MapErrorToHTTP(fmt.Errorf("service: outer: %w", tc.err))
			require.Equal(t, tc.wantStatus, status)
			require.NotEmpty(t, msg)
		})
	}
}

func TestAmountChecks(t *testing.T) {
	tests := []struct {
		name            string
		amount          decimal.Decimal
		wantPositive    bool
		wantNonNegative bool
	}{
		{"zero", decimal.Zero, false, true},
		{"cents", decimal.RequireFromString("0.01"), true, true},
		{"large fractional", decimal.RequireFromString("12345678901234567.89"), true, true},
		{"negative", decimal.RequireFromString("-0.01"), false, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := RequirePositive("amount", tc.amount)
			if tc.wantPositive {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, "amount must be greater than zero")
			}

			err = RequireNonNegative("starting_bid", tc.amount)
			if tc.wantNonNegative {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, "starting_bid must not be negative")
			}
		})
	}
}
