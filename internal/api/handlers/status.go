package handlers

import (
	"errors"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes. Records that are
// absent or owned by someone else both read as not found.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrReceiptScanNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAIUnavailable),
		errors.Is(err, domain.ErrAIResponseInvalid),
		errors.Is(err, domain.ErrPushDeliveryFailed),
		errors.Is(err, domain.ErrOcrFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidConfidence),
		errors.Is(err, domain.ErrInvalidSortField),
		errors.Is(err, domain.ErrScanNotProcessed),
		errors.Is(err, domain.ErrNoValidItems),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
