package handlers

import (
	"errors"
	"strconv"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/internal/api/presenters"
	"github.com/Kausha3/smart-pantry/pkg/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetSuggestions(c *fiber.Ctx) error
		GetCookbook(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.SuggestionsRequest{
		ExpiringOnly: c.QueryBool("expiring_only", false),
	}
	if dietary := c.Query("dietary", ""); dietary != "" {
		req.Dietary = []string{dietary}
	}
	maxRecipes, err := strconv.Atoi(c.Query("max", "0"))
	if err == nil && maxRecipes > 0 {
		req.MaxRecipes = maxRecipes
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	res, err := h.recipeService.GetSuggestions(c.Context(), req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.SuccessResponse(c, fiber.Map{
				"recipes":  []domain.ScoredRecipe{},
				"fallback": false,
				"message":  "No ingredients in your pantry yet. Add some items to get suggestions.",
			}, fiber.StatusOK, "no ingredients available")
		}
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *recipeHandler) GetCookbook(c *fiber.Ctx) error {
	res, err := h.recipeService.GetCookbook(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbook)
}
