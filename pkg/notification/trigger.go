package notification

import (
	"time"

	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/pkg/freshness"
)

type (
	// UserInventory is one user's notification state: preference row (nil
	// means defaults) and current pantry snapshot.
	UserInventory struct {
		UserID     string
		Name       string
		Email      string
		Preference *entities.NotificationPreference
		Items      []*entities.PantryItem
	}

	ExpiryAlert struct {
		UserID        string
		Name          string
		Email         string
		EmailDigest   bool
		ExpiringItems []*entities.PantryItem
	}
)

// UsersToNotify decides who receives an expiry alert. A user qualifies when
// notifications are enabled (the default with no preference row) and at least
// one item falls inside their expiry window; users with nothing expiring are
// omitted entirely. Pure: delivery happens elsewhere.
func UsersToNotify(users []UserInventory, referenceDate time.Time) []ExpiryAlert {
	var alerts []ExpiryAlert

	for _, user := range users {
		enabled := true
		window := freshness.DefaultThresholdDays
		emailDigest := false

		if user.Preference != nil {
			enabled = user.Preference.Enabled
			emailDigest = user.Preference.EmailDigest
			if user.Preference.ExpiryDaysBefore > 0 {
				window = user.Preference.ExpiryDaysBefore
			}
		}

		if !enabled {
			continue
		}

		var expiring []*entities.PantryItem
		for _, item := range user.Items {
			days := freshness.DaysUntilExpiry(item.ExpiryDate, referenceDate)
			if days >= 0 && days <= window {
				expiring = append(expiring, item)
			}
		}

		if len(expiring) == 0 {
			continue
		}

		alerts = append(alerts, ExpiryAlert{
			UserID:        user.UserID,
			Name:          user.Name,
			Email:         user.Email,
			EmailDigest:   emailDigest,
			ExpiringItems: expiring,
		})
	}

	return alerts
}
