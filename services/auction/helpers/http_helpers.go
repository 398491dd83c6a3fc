package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"auction-front/internal/auctionerrors"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errAmountNotPositive = errors.New("must be greater than zero")
	errAmountNegative    = errors.New("must not be negative")
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// RequirePositive checks a bound money field is above zero. A missing field
// binds as zero and fails too.
func RequirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%s %w", field, errAmountNotPositive)
	}
	return nil
}

// RequireNonNegative checks a bound money field is zero or more
func RequireNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%s %w", field, errAmountNegative)
	}
	return nil
}

// HandleServiceError maps err to a status, writes the error envelope and logs it
func HandleServiceError(c *gin.Context, handlerName, action string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+action, fields)
		return
	}
	utils.Warn(handlerName+": "+action, fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrMediaNotFound):
		return http.StatusNotFound, "media not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, auctionerrors.ErrMissingImage):
		return http.StatusBadRequest, "listing image is required"
	case errors.Is(err, auctionerrors.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid category"
	case errors.Is(err, auctionerrors.ErrInvalidNotificationType):
		return http.StatusBadRequest, "invalid notification type"
	case errors.Is(err, auctionerrors.ErrInvalidDirection):
		return http.StatusBadRequest, "invalid date direction"
	case errors.Is(err, auctionerrors.ErrUnknownPlatform):
		return http.StatusBadRequest, "unknown share platform"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must be higher than the current bid"
	case errors.Is(err, auctionerrors.ErrListingExists):
		return http.StatusConflict, "listing already exists"
	case errors.Is(err, auctionerrors.ErrDateOutOfRange):
		return http.StatusUnprocessableEntity, "date outside browsable range"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrPaymentDeclined):
		return http.StatusPaymentRequired, "payment failed, please try again"
	case errors.Is(err, auctionerrors.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, "unsupported media type"
	case errors.Is(err, auctionerrors.ErrMediaTooLarge):
		return http.StatusRequestEntityTooLarge, "media too large"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
