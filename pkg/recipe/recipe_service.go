package recipe

import (
	"context"
	"errors"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/pkg/freshness"
	"github.com/Kausha3/smart-pantry/pkg/pantry"
)

type (
	RecipeService interface {
		GetSuggestions(ctx context.Context, req domain.SuggestionsRequest, userID string) (domain.SuggestionsResponse, error)
		GetCookbook(ctx context.Context) (domain.SuggestionsResponse, error)
	}

	recipeService struct {
		pantryRepository pantry.PantryRepository
		generator        Generator
	}
)

func NewRecipeService(pantryRepository pantry.PantryRepository, generator Generator) RecipeService {
	return &recipeService{
		pantryRepository: pantryRepository,
		generator:        generator,
	}
}

// GetSuggestions produces personalized, ranked recipe suggestions from the
// user's inventory. When the external generator is unavailable or returns an
// unparsable payload, the static catalog is scored offline instead; the
// response says which path was taken.
func (s *recipeService) GetSuggestions(ctx context.Context, req domain.SuggestionsRequest, userID string) (domain.SuggestionsResponse, error) {
	var items []*entities.PantryItem
	var err error

	if req.ExpiringOnly {
		now := time.Now()
		items, err = s.pantryRepository.GetItemsByExpiryRange(ctx, userID, now, now.AddDate(0, 0, freshness.DefaultThresholdDays))
	} else {
		items, err = s.pantryRepository.GetAllItems(ctx, userID)
	}
	if err != nil {
		return domain.SuggestionsResponse{}, err
	}

	if len(items) == 0 {
		return domain.SuggestionsResponse{}, domain.ErrNoIngredients
	}

	candidates, err := s.generator.Generate(ctx, items, req)
	if err != nil {
		if errors.Is(err, domain.ErrAIUnavailable) || errors.Is(err, domain.ErrAIResponseInvalid) {
			return s.fallbackSuggestions(items, req), nil
		}
		return domain.SuggestionsResponse{}, err
	}

	recipes := make([]domain.ScoredRecipe, 0, len(candidates))
	for _, candidate := range candidates {
		recipes = append(recipes, Score(candidate, true))
	}
	Rank(recipes)

	if req.MaxRecipes > 0 && len(recipes) > req.MaxRecipes {
		recipes = recipes[:req.MaxRecipes]
	}

	return domain.SuggestionsResponse{Recipes: recipes}, nil
}

func (s *recipeService) fallbackSuggestions(items []*entities.PantryItem, req domain.SuggestionsRequest) domain.SuggestionsResponse {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	recipes := make([]domain.ScoredRecipe, 0, len(Catalog))
	for _, candidate := range Catalog {
		recipes = append(recipes, FallbackScore(candidate, names))
	}
	Rank(recipes)

	if req.MaxRecipes > 0 && len(recipes) > req.MaxRecipes {
		recipes = recipes[:req.MaxRecipes]
	}

	return domain.SuggestionsResponse{Recipes: recipes, Fallback: true}
}

// GetCookbook serves the static catalog with no inventory context. Every
// recipe scores 0 and is marked not personalized, which is the signal for
// generic browsing rather than a failed match.
func (s *recipeService) GetCookbook(ctx context.Context) (domain.SuggestionsResponse, error) {
	recipes := make([]domain.ScoredRecipe, 0, len(Catalog))
	for _, candidate := range Catalog {
		recipes = append(recipes, Score(candidate, false))
	}

	return domain.SuggestionsResponse{Recipes: recipes}, nil
}
