package freshness

import (
	"testing"
	"time"

	"github.com/Kausha3/smart-pantry/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, category string, expiry time.Time) *entities.PantryItem {
	return &entities.PantryItem{
		ID:         uuid.New(),
		Name:       name,
		Category:   category,
		ExpiryDate: expiry,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, date(2024, time.June, 10), DefaultThresholdDays, nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Expired)
	assert.Equal(t, 0, summary.Expiring)
	assert.Equal(t, 0, summary.Fresh)
	assert.Zero(t, summary.WasteSavedEstimate)
	assert.Zero(t, summary.CO2ReducedEstimate)
}

func TestSummarizeCountsPartitionTotal(t *testing.T) {
	reference := date(2024, time.June, 10)
	items := []*entities.PantryItem{
		item("Milk", entities.CategoryDairy, reference.AddDate(0, 0, -2)),
		item("Spinach", entities.CategoryProduce, reference.AddDate(0, 0, 1)),
		item("Chicken", entities.CategoryMeat, reference.AddDate(0, 0, 3)),
		item("Rice", entities.CategoryPantry, reference.AddDate(0, 0, 40)),
		item("Honey", entities.CategoryOther, reference.AddDate(0, 0, 200)),
	}

	summary := Summarize(items, reference, DefaultThresholdDays, nil)

	require.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 2, summary.Expiring)
	assert.Equal(t, 2, summary.Fresh)
	assert.Equal(t, summary.Total, summary.Expired+summary.Expiring+summary.Fresh)
}

func TestSummarizeCategoryBreakdownSumsToTotal(t *testing.T) {
	reference := date(2024, time.June, 10)
	items := []*entities.PantryItem{
		item("Milk", entities.CategoryDairy, reference.AddDate(0, 0, 5)),
		item("Cheese", entities.CategoryDairy, reference.AddDate(0, 0, 6)),
		item("Apples", entities.CategoryProduce, reference.AddDate(0, 0, 4)),
	}

	summary := Summarize(items, reference, DefaultThresholdDays, nil)

	assert.Equal(t, 2, summary.ByCategory[entities.CategoryDairy])
	assert.Equal(t, 1, summary.ByCategory[entities.CategoryProduce])

	sum := 0
	for _, count := range summary.ByCategory {
		sum += count
	}
	assert.Equal(t, summary.Total, sum)
}

func TestSummarizeHeuristicEstimates(t *testing.T) {
	reference := date(2024, time.June, 10)
	items := []*entities.PantryItem{
		item("Expired milk", entities.CategoryDairy, reference.AddDate(0, 0, -5)),
		item("Bread", entities.CategoryPantry, reference.AddDate(0, 0, 2)),
		item("Eggs", entities.CategoryDairy, reference.AddDate(0, 0, 10)),
	}

	summary := Summarize(items, reference, DefaultThresholdDays, nil)

	assert.InDelta(t, 2*WastePerItemValue, summary.WasteSavedEstimate, 1e-9)
	assert.InDelta(t, 2*CO2PerItemKg, summary.CO2ReducedEstimate, 1e-9)
}

func TestSummarizeOverrideReplacesEstimatesOnly(t *testing.T) {
	reference := date(2024, time.June, 10)
	items := []*entities.PantryItem{
		item("Expired milk", entities.CategoryDairy, reference.AddDate(0, 0, -5)),
		item("Bread", entities.CategoryPantry, reference.AddDate(0, 0, 2)),
	}

	summary := Summarize(items, reference, DefaultThresholdDays, &StatOverride{
		WasteSaved: 42.0,
		CO2Reduced: 7.5,
	})

	assert.Equal(t, 42.0, summary.WasteSavedEstimate)
	assert.Equal(t, 7.5, summary.CO2ReducedEstimate)

	// Live counts are never overridden.
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Expiring)
}

func TestSortByExpiryStable(t *testing.T) {
	reference := date(2024, time.June, 10)
	first := item("First", entities.CategoryOther, reference.AddDate(0, 0, 5))
	second := item("Second", entities.CategoryOther, reference.AddDate(0, 0, 5))
	earliest := item("Earliest", entities.CategoryOther, reference.AddDate(0, 0, 1))

	items := []*entities.PantryItem{first, second, earliest}
	SortByExpiry(items)

	require.Equal(t, "Earliest", items[0].Name)
	assert.Equal(t, "First", items[1].Name)
	assert.Equal(t, "Second", items[2].Name)
}
