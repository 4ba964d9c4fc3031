package entities

import (
	"github.com/google/uuid"
)

// MonthlyStat is a persisted display override for the savings estimates of
// one calendar month. Live freshness counts are always computed from pantry
// items and never read from here.
type MonthlyStat struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"index:idx_monthly_stat_user_month,unique" json:"user_id"`
	Month      string    `gorm:"index:idx_monthly_stat_user_month,unique" json:"month"` // "2006-01"
	WasteSaved float64   `json:"waste_saved"`
	CO2Reduced float64   `json:"co2_reduced"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
