package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/internal/utils"
	"github.com/Kausha3/smart-pantry/internal/utils/mailing"
	"github.com/Kausha3/smart-pantry/pkg/freshness"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GetPreference(ctx context.Context, userID string) (domain.PreferenceResponse, error)
		UpdatePreference(ctx context.Context, req domain.PreferenceRequest, userID string) error
		Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) error
		Unsubscribe(ctx context.Context, endpoint string, userID string) error
		RunExpiryCheck(ctx context.Context) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		client                 *http.Client
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		client:                 &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *notificationService) GetPreference(ctx context.Context, userID string) (domain.PreferenceResponse, error) {
	pref, err := s.notificationRepository.GetPreference(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No row means defaults.
			return domain.PreferenceResponse{
				Enabled:          true,
				ExpiryDaysBefore: freshness.DefaultThresholdDays,
			}, nil
		}
		return domain.PreferenceResponse{}, err
	}

	return domain.PreferenceResponse{
		Enabled:          pref.Enabled,
		ExpiryDaysBefore: pref.ExpiryDaysBefore,
		EmailDigest:      pref.EmailDigest,
	}, nil
}

func (s *notificationService) UpdatePreference(ctx context.Context, req domain.PreferenceRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	pref := &entities.NotificationPreference{
		ID:               uuid.New(),
		UserID:           userUUID,
		Enabled:          *req.Enabled,
		ExpiryDaysBefore: freshness.DefaultThresholdDays,
	}
	if req.ExpiryDaysBefore != nil {
		pref.ExpiryDaysBefore = *req.ExpiryDaysBefore
	}
	if req.EmailDigest != nil {
		pref.EmailDigest = *req.EmailDigest
	}

	return s.notificationRepository.UpsertPreference(ctx, pref)
}

func (s *notificationService) Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	payload, err := json.Marshal(map[string]any{
		"endpoint": req.Endpoint,
		"keys":     req.Keys,
	})
	if err != nil {
		return err
	}

	return s.notificationRepository.SaveSubscription(ctx, &entities.PushSubscription{
		ID:           uuid.New(),
		UserID:       userUUID,
		Endpoint:     req.Endpoint,
		Subscription: payload,
	})
}

func (s *notificationService) Unsubscribe(ctx context.Context, endpoint string, userID string) error {
	return s.notificationRepository.DeleteSubscription(ctx, userID, endpoint)
}

// RunExpiryCheck evaluates every user's inventory against the trigger and
// dispatches alerts over the configured channels. Delivery failures are
// logged and skipped; one broken endpoint never blocks the rest.
func (s *notificationService) RunExpiryCheck(ctx context.Context) error {
	inventories, err := s.notificationRepository.GetUserInventories(ctx)
	if err != nil {
		return err
	}

	alerts := UsersToNotify(inventories, time.Now())

	for _, alert := range alerts {
		payload := buildPayload(alert)

		if err := s.sendPush(ctx, alert.UserID, payload); err != nil {
			log.Printf("push delivery for user %s: %v", alert.UserID, err)
		}

		if alert.EmailDigest {
			if err := sendDigestEmail(alert); err != nil {
				log.Printf("email digest for user %s: %v", alert.UserID, err)
			}
		}
	}

	return nil
}

// buildPayload names the soonest-expiring items first so the truncated body
// always shows the most urgent ones.
func buildPayload(alert ExpiryAlert) domain.PushPayload {
	freshness.SortByExpiry(alert.ExpiringItems)

	names := make([]string, 0, len(alert.ExpiringItems))
	for _, item := range alert.ExpiringItems {
		names = append(names, item.Name)
	}

	body := fmt.Sprintf("%s will expire soon. Use them before they go to waste!", strings.Join(names, ", "))
	if len(names) > 3 {
		body = fmt.Sprintf("%s and %d more items will expire soon.", strings.Join(names[:3], ", "), len(names)-3)
	}

	return domain.PushPayload{
		UserID: alert.UserID,
		Title:  "Items expiring soon",
		Body:   body,
		Tag:    "expiry-alert",
		Data: map[string]any{
			"expiring_count": len(alert.ExpiringItems),
		},
	}
}

func (s *notificationService) sendPush(ctx context.Context, userID string, payload domain.PushPayload) error {
	gatewayURL := utils.GetConfig("PUSH_GATEWAY_URL")
	if gatewayURL == "" {
		return fmt.Errorf("%w: PUSH_GATEWAY_URL not set", domain.ErrPushDeliveryFailed)
	}

	subs, err := s.notificationRepository.GetSubscriptions(ctx, userID)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		return nil
	}

	for _, sub := range subs {
		body, err := json.Marshal(map[string]any{
			"subscription": json.RawMessage(sub.Subscription),
			"notification": payload,
		})
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "POST", gatewayURL, bytes.NewBuffer(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPushDeliveryFailed, err)
		}
		resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w: gateway responded %s", domain.ErrPushDeliveryFailed, resp.Status)
		}
	}

	return nil
}

func sendDigestEmail(alert ExpiryAlert) error {
	var list strings.Builder
	for _, item := range alert.ExpiringItems {
		list.WriteString(fmt.Sprintf("<li>%s (%s), expires %s</li>", item.Name, item.Quantity, item.ExpiryDate.Format("2006-01-02")))
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The following items in your pantry are expiring soon:</p><ul>%s</ul><p>Open Smart Pantry for recipe ideas that use them.</p>",
		alert.Name,
		list.String(),
	)

	return mailing.SendMail(alert.Email, "Your pantry items are expiring soon", body)
}
