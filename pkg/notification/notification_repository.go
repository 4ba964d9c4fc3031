package notification

import (
	"context"

	"github.com/Kausha3/smart-pantry/entities"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetPreference(ctx context.Context, userID string) (*entities.NotificationPreference, error)
		UpsertPreference(ctx context.Context, pref *entities.NotificationPreference) error
		SaveSubscription(ctx context.Context, sub *entities.PushSubscription) error
		DeleteSubscription(ctx context.Context, userID, endpoint string) error
		GetSubscriptions(ctx context.Context, userID string) ([]*entities.PushSubscription, error)
		GetUserInventories(ctx context.Context) ([]UserInventory, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetPreference(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	var pref entities.NotificationPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *notificationRepository) UpsertPreference(ctx context.Context, pref *entities.NotificationPreference) error {
	var existing entities.NotificationPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", pref.UserID).First(&existing).Error
	if err == nil {
		pref.ID = existing.ID
	}
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *notificationRepository) SaveSubscription(ctx context.Context, sub *entities.PushSubscription) error {
	// One row per endpoint; re-subscribing replaces the payload.
	var existing entities.PushSubscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", sub.UserID, sub.Endpoint).
		First(&existing).Error
	if err == nil {
		sub.ID = existing.ID
	}
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *notificationRepository) DeleteSubscription(ctx context.Context, userID, endpoint string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&entities.PushSubscription{}).Error
}

func (r *notificationRepository) GetSubscriptions(ctx context.Context, userID string) ([]*entities.PushSubscription, error) {
	var subs []*entities.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetUserInventories loads the trigger's input: every user with their
// preference row (if any) and pantry snapshot.
func (r *notificationRepository) GetUserInventories(ctx context.Context) ([]UserInventory, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	var prefs []*entities.NotificationPreference
	if err := r.db.WithContext(ctx).Find(&prefs).Error; err != nil {
		return nil, err
	}
	prefByUser := make(map[string]*entities.NotificationPreference, len(prefs))
	for _, pref := range prefs {
		prefByUser[pref.UserID.String()] = pref
	}

	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, err
	}
	itemsByUser := make(map[string][]*entities.PantryItem)
	for _, item := range items {
		key := item.UserID.String()
		itemsByUser[key] = append(itemsByUser[key], item)
	}

	inventories := make([]UserInventory, 0, len(users))
	for _, user := range users {
		id := user.ID.String()
		inventories = append(inventories, UserInventory{
			UserID:     id,
			Name:       user.Name,
			Email:      user.Email,
			Preference: prefByUser[id],
			Items:      itemsByUser[id],
		})
	}

	return inventories, nil
}
