package freshness

import (
	"sort"
	"time"

	"github.com/Kausha3/smart-pantry/entities"
)

// Heuristic per-item values behind the savings estimates shown on the
// dashboard. Applied to every item that has not expired.
const (
	WastePerItemValue = 3.5 // currency units per unexpired item
	CO2PerItemKg      = 0.8 // kg CO2 per unexpired item
)

// StatOverride carries persisted estimates for the current month. When
// present it replaces the heuristic estimates only; live counts always come
// from the items themselves.
type StatOverride struct {
	WasteSaved float64
	CO2Reduced float64
}

type Summary struct {
	Total              int
	Expired            int
	Expiring           int
	Fresh              int
	WasteSavedEstimate float64
	CO2ReducedEstimate float64
	ByCategory         map[string]int
}

// Summarize classifies every item against the reference date and tallies the
// buckets. Expired + Expiring + Fresh always equals Total.
func Summarize(items []*entities.PantryItem, referenceDate time.Time, thresholdDays int, override *StatOverride) Summary {
	summary := Summary{
		Total:      len(items),
		ByCategory: make(map[string]int, len(entities.ShelfLifeDays)),
	}

	for _, item := range items {
		bucket, _ := Classify(item.ExpiryDate, referenceDate, thresholdDays)
		switch bucket {
		case Expired:
			summary.Expired++
		case ExpiringSoon:
			summary.Expiring++
		default:
			summary.Fresh++
		}
		summary.ByCategory[item.Category]++
	}

	unexpired := summary.Total - summary.Expired
	summary.WasteSavedEstimate = float64(unexpired) * WastePerItemValue
	summary.CO2ReducedEstimate = float64(unexpired) * CO2PerItemKg

	if override != nil {
		summary.WasteSavedEstimate = override.WasteSaved
		summary.CO2ReducedEstimate = override.CO2Reduced
	}

	return summary
}

// SortByExpiry orders items by ascending expiry date in place. The sort is
// stable so ties keep their original order.
func SortByExpiry(items []*entities.PantryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
}
