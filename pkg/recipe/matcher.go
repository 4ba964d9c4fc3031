package recipe

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Kausha3/smart-pantry/domain"
)

// Score computes the match percentage of one candidate. In personalized mode
// the percentage is the share of the recipe's ingredients already on hand,
// derived from the generator's used/missing lists. In cookbook mode every
// candidate scores 0: no inventory context, nothing to match against.
func Score(candidate domain.RecipeCandidate, personalized bool) domain.ScoredRecipe {
	score := 0
	if personalized {
		score = matchPercentage(len(candidate.UsedIngredients), len(candidate.MissingIngredients))
	}

	return domain.ScoredRecipe{
		RecipeCandidate: candidate,
		MatchPercentage: score,
		Image:           ImageKey(candidate.Title),
		Personalized:    personalized,
	}
}

// FallbackScore scores a static catalog recipe against the inventory without
// any external call. An ingredient counts as available when its first word is
// a case-insensitive substring of any inventory item name.
func FallbackScore(candidate domain.RecipeCandidate, inventoryNames []string) domain.ScoredRecipe {
	available := make([]string, 0, len(candidate.UsedIngredients))
	for _, ingredient := range candidate.UsedIngredients {
		if inventoryHas(inventoryNames, ingredient) {
			available = append(available, ingredient)
		}
	}

	scored := domain.ScoredRecipe{
		RecipeCandidate: candidate,
		MatchPercentage: matchPercentage(len(available), len(candidate.MissingIngredients)),
		Image:           ImageKey(candidate.Title),
		Personalized:    true,
	}
	scored.UsedIngredients = available
	return scored
}

// Rank orders recipes by descending match percentage. Stable, so equal scores
// keep the generator's original order.
func Rank(recipes []domain.ScoredRecipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].MatchPercentage > recipes[j].MatchPercentage
	})
}

// matchPercentage guards the generator's undefined both-empty input as 0.
func matchPercentage(used, missing int) int {
	if used+missing == 0 {
		return 0
	}
	return int(math.Round(100 * float64(used) / float64(used+missing)))
}

func inventoryHas(inventoryNames []string, ingredient string) bool {
	firstWord := ingredient
	if idx := strings.IndexByte(firstWord, ' '); idx > 0 {
		firstWord = firstWord[:idx]
	}
	firstWord = strings.ToLower(firstWord)

	for _, name := range inventoryNames {
		if strings.Contains(strings.ToLower(name), firstWord) {
			return true
		}
	}
	return false
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// ImageKey derives a stable image object key from a recipe title.
func ImageKey(title string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-") + ".jpg"
}
