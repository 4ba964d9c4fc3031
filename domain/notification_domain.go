package domain

import (
	"errors"
)

var (
	MessageSuccessGetPreference    = "notification preference retrieved successfully"
	MessageSuccessUpdatePreference = "notification preference updated successfully"
	MessageSuccessSubscribe        = "push subscription saved successfully"
	MessageSuccessUnsubscribe      = "push subscription removed successfully"

	MessageFailedGetPreference    = "failed to retrieve notification preference"
	MessageFailedUpdatePreference = "failed to update notification preference"
	MessageFailedSubscribe        = "failed to save push subscription"
	MessageFailedUnsubscribe      = "failed to remove push subscription"

	ErrSubscriptionNotFound = errors.New("push subscription not found")
	ErrPushDeliveryFailed   = errors.New("push delivery failed")
)

type (
	PreferenceRequest struct {
		Enabled          *bool `json:"enabled" validate:"required"`
		ExpiryDaysBefore *int  `json:"expiry_days_before" validate:"omitempty,min=1,max=30"`
		EmailDigest      *bool `json:"email_digest" validate:"omitempty"`
	}

	PreferenceResponse struct {
		Enabled          bool `json:"enabled"`
		ExpiryDaysBefore int  `json:"expiry_days_before"`
		EmailDigest      bool `json:"email_digest"`
	}

	SubscribeRequest struct {
		Endpoint string         `json:"endpoint" validate:"required,url"`
		Keys     map[string]any `json:"keys" validate:"required"`
	}

	// PushPayload is the shape handed to the push delivery gateway.
	PushPayload struct {
		UserID string         `json:"user_id"`
		Title  string         `json:"title"`
		Body   string         `json:"body"`
		Tag    string         `json:"tag"`
		Data   map[string]any `json:"data,omitempty"`
	}
)
