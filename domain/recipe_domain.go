package domain

import (
	"errors"
)

var (
	MessageSuccessGetSuggestions = "recipe suggestions retrieved successfully"
	MessageSuccessGetCookbook    = "cookbook recipes retrieved successfully"

	MessageFailedGetSuggestions = "failed to retrieve recipe suggestions"
	MessageFailedGetCookbook    = "failed to retrieve cookbook recipes"

	ErrNoIngredients     = errors.New("no ingredients available for recipe suggestions")
	ErrAIUnavailable     = errors.New("recipe generator unavailable")
	ErrAIResponseInvalid = errors.New("recipe generator returned an unparsable response")
)

type (
	// RecipeCandidate is the schema-validated shape of one recipe from the
	// external generator. Immutable input to the matcher.
	RecipeCandidate struct {
		Title              string   `json:"title"`
		UsedIngredients    []string `json:"usedIngredients"`
		MissingIngredients []string `json:"missingIngredients"`
		Time               string   `json:"time"`
		Calories           string   `json:"calories"`
		Instructions       []string `json:"instructions"`
		Dietary            []string `json:"dietary,omitempty"`
	}

	ScoredRecipe struct {
		RecipeCandidate
		MatchPercentage int    `json:"match_percentage"`
		Image           string `json:"image"`
		Personalized    bool   `json:"personalized"`
	}

	SuggestionsRequest struct {
		Dietary      []string `json:"dietary" validate:"omitempty"`
		MaxRecipes   int      `json:"max_recipes" validate:"omitempty,min=1,max=10"`
		ExpiringOnly bool     `json:"expiring_only"`
	}

	SuggestionsResponse struct {
		Recipes  []ScoredRecipe `json:"recipes"`
		Fallback bool           `json:"fallback"`
	}
)
