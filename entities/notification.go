package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationPreference struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Enabled          bool      `gorm:"default:true" json:"enabled"`
	ExpiryDaysBefore int       `gorm:"default:3" json:"expiry_days_before"`
	EmailDigest      bool      `json:"email_digest"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type PushSubscription struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID      `gorm:"index" json:"user_id"`
	Endpoint     string         `json:"endpoint"`
	Subscription datatypes.JSON `json:"subscription"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
