package entities

import (
	"time"

	"github.com/google/uuid"
)

// Valid values for PantryItem.Category. Anything else is rejected at the
// request boundary.
const (
	CategoryProduce = "Produce"
	CategoryDairy   = "Dairy"
	CategoryPantry  = "Pantry"
	CategoryMeat    = "Meat"
	CategoryOther   = "Other"
)

// ShelfLifeDays maps a category to the assumed shelf life used when an item
// arrives without an explicit expiry date (e.g. from a receipt scan).
var ShelfLifeDays = map[string]int{
	CategoryProduce: 7,
	CategoryDairy:   14,
	CategoryMeat:    4,
	CategoryPantry:  60,
	CategoryOther:   30,
}

func ValidCategory(category string) bool {
	_, ok := ShelfLifeDays[category]
	return ok
}

type PantryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `gorm:"index" json:"user_id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"` // "Produce", "Dairy", "Pantry", "Meat", "Other"
	Quantity      string     `json:"quantity"` // free text, e.g. "2 cartons"
	ExpiryDate    time.Time  `json:"expiry_date"`
	Confidence    float64    `json:"confidence"` // advisory metadata from OCR, not used in freshness logic
	ImageURL      string     `json:"image_url,omitempty"`
	AddedManually bool       `json:"added_manually"`
	ReceiptScanID *uuid.UUID `gorm:"type:uuid;index" json:"receipt_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
