package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/pkg/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPantryRepository struct {
	items         []*entities.PantryItem
	expiringItems []*entities.PantryItem
}

func (r *stubPantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return nil
}

func (r *stubPantryRepository) AddItemsBatch(ctx context.Context, items []*entities.PantryItem, scan *entities.ReceiptScan) error {
	return nil
}

func (r *stubPantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return nil
}

func (r *stubPantryRepository) DeleteItem(ctx context.Context, id string) error {
	return nil
}

func (r *stubPantryRepository) GetItems(ctx context.Context, userID string, filter pantry.ItemFilter) ([]*entities.PantryItem, int64, error) {
	return r.items, int64(len(r.items)), nil
}

func (r *stubPantryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	return r.items, nil
}

func (r *stubPantryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	return r.expiringItems, nil
}

func (r *stubPantryRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return nil
}

func (r *stubPantryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPantryRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return nil
}

func (r *stubPantryRepository) GetMonthlyStat(ctx context.Context, userID string, month string) (*entities.MonthlyStat, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubGenerator struct {
	candidates []domain.RecipeCandidate
	err        error
}

func (g *stubGenerator) Generate(ctx context.Context, items []*entities.PantryItem, req domain.SuggestionsRequest) ([]domain.RecipeCandidate, error) {
	return g.candidates, g.err
}

func pantryItems(names ...string) []*entities.PantryItem {
	items := make([]*entities.PantryItem, 0, len(names))
	for _, name := range names {
		items = append(items, &entities.PantryItem{
			Name:       name,
			Category:   entities.CategoryOther,
			ExpiryDate: time.Now().AddDate(0, 0, 2),
		})
	}
	return items
}

func TestGetSuggestionsRanked(t *testing.T) {
	repo := &stubPantryRepository{items: pantryItems("Milk", "Eggs")}
	generator := &stubGenerator{candidates: []domain.RecipeCandidate{
		{Title: "Mostly Missing", UsedIngredients: []string{"Milk"}, MissingIngredients: []string{"Flour", "Sugar"}},
		{Title: "All On Hand", UsedIngredients: []string{"Milk", "Eggs"}},
	}}
	service := NewRecipeService(repo, generator)

	resp, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{}, "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 2)
	assert.False(t, resp.Fallback)
	assert.Equal(t, "All On Hand", resp.Recipes[0].Title)
	assert.Equal(t, 100, resp.Recipes[0].MatchPercentage)
	assert.Equal(t, "Mostly Missing", resp.Recipes[1].Title)
	assert.Equal(t, 33, resp.Recipes[1].MatchPercentage)
	assert.True(t, resp.Recipes[0].Personalized)
}

func TestGetSuggestionsMaxRecipesCap(t *testing.T) {
	repo := &stubPantryRepository{items: pantryItems("Milk")}
	generator := &stubGenerator{candidates: []domain.RecipeCandidate{
		{Title: "One", UsedIngredients: []string{"Milk"}},
		{Title: "Two", UsedIngredients: []string{"Milk"}},
		{Title: "Three", UsedIngredients: []string{"Milk"}},
	}}
	service := NewRecipeService(repo, generator)

	resp, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{MaxRecipes: 2}, "user-1")

	require.NoError(t, err)
	assert.Len(t, resp.Recipes, 2)
}

func TestGetSuggestionsEmptyInventory(t *testing.T) {
	service := NewRecipeService(&stubPantryRepository{}, &stubGenerator{})

	_, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{}, "user-1")

	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestGetSuggestionsExpiringOnly(t *testing.T) {
	repo := &stubPantryRepository{
		items:         pantryItems("Milk", "Eggs", "Rice"),
		expiringItems: pantryItems("Milk"),
	}
	generator := &stubGenerator{candidates: []domain.RecipeCandidate{
		{Title: "Warm Milk", UsedIngredients: []string{"Milk"}},
	}}
	service := NewRecipeService(repo, generator)

	resp, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{ExpiringOnly: true}, "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Warm Milk", resp.Recipes[0].Title)
}

func TestGetSuggestionsFallbackOnGeneratorFailure(t *testing.T) {
	repo := &stubPantryRepository{items: pantryItems("Milk", "Eggs")}
	generator := &stubGenerator{err: domain.ErrAIUnavailable}
	service := NewRecipeService(repo, generator)

	resp, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{}, "user-1")

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	require.Len(t, resp.Recipes, len(Catalog))

	for i := 1; i < len(resp.Recipes); i++ {
		assert.GreaterOrEqual(t, resp.Recipes[i-1].MatchPercentage, resp.Recipes[i].MatchPercentage)
	}
}

func TestGetSuggestionsFallbackOnInvalidResponse(t *testing.T) {
	repo := &stubPantryRepository{items: pantryItems("Milk")}
	generator := &stubGenerator{err: domain.ErrAIResponseInvalid}
	service := NewRecipeService(repo, generator)

	resp, err := service.GetSuggestions(context.Background(), domain.SuggestionsRequest{}, "user-1")

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
}

func TestGetCookbook(t *testing.T) {
	service := NewRecipeService(&stubPantryRepository{}, &stubGenerator{})

	resp, err := service.GetCookbook(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Recipes, len(Catalog))
	assert.False(t, resp.Fallback)

	for _, recipe := range resp.Recipes {
		assert.Equal(t, 0, recipe.MatchPercentage)
		assert.False(t, recipe.Personalized)
		assert.NotEmpty(t, recipe.Image)
	}
}
