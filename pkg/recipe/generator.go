package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/internal/utils"
	"github.com/Kausha3/smart-pantry/pkg/freshness"
)

type (
	// Generator produces recipe candidates for the given inventory. The
	// production implementation calls the Gemini API; tests substitute stubs.
	Generator interface {
		Generate(ctx context.Context, items []*entities.PantryItem, req domain.SuggestionsRequest) ([]domain.RecipeCandidate, error)
	}

	geminiGenerator struct {
		client *http.Client
	}
)

func NewGeminiGenerator() Generator {
	return &geminiGenerator{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, items []*entities.PantryItem, req domain.SuggestionsRequest) ([]domain.RecipeCandidate, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY not set", domain.ErrAIUnavailable)
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("%w: GEMINI_MODEL not set", domain.ErrAIUnavailable)
	}

	now := time.Now()
	ingredients := make([]map[string]any, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, map[string]any{
			"name":            item.Name,
			"category":        item.Category,
			"quantity":        item.Quantity,
			"daysUntilExpiry": freshness.DaysUntilExpiry(item.ExpiryDate, now),
		})
	}

	maxRecipes := req.MaxRecipes
	if maxRecipes == 0 {
		maxRecipes = 5
	}

	ingredientsJSON, _ := json.Marshal(ingredients)
	dietary := "none"
	if len(req.Dietary) > 0 {
		dietary = strings.Join(req.Dietary, ", ")
	}

	prompt := fmt.Sprintf(
		"You are a professional chef recommending recipes from available ingredients. "+
			"Given these pantry items (with quantities and days until expiry): %s, "+
			"and these dietary restrictions: %s, "+
			"generate %d recipe suggestions that prioritize ingredients closest to expiry. "+
			"Respond ONLY with a valid JSON array where each object has exactly these fields: "+
			"'title' (string), 'usedIngredients' (array of ingredient names taken from the pantry), "+
			"'missingIngredients' (array of ingredient names the user still needs), "+
			"'time' (string like '35 min'), 'calories' (string like '420 kcal'), "+
			"'instructions' (array of step strings), 'dietary' (array of strings). "+
			"Do not include explanations, markdown formatting, or extra text.",
		string(ingredientsJSON),
		dietary,
		maxRecipes,
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(geminiReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s - %s", domain.ErrAIUnavailable, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseInvalid, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrAIResponseInvalid
	}

	return ParseCandidates([]byte(geminiResp.Candidates[0].Content.Parts[0].Text))
}

// ParseCandidates validates the generator's raw text into typed candidates.
// The model occasionally wraps its JSON in markdown fences or commentary, so
// the outermost array is sliced out before unmarshalling. Any failure returns
// ErrAIResponseInvalid; no partially-parsed result is ever returned.
func ParseCandidates(raw []byte) ([]domain.RecipeCandidate, error) {
	text := strings.TrimSpace(string(raw))

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "[")
	endIdx := strings.LastIndex(text, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, fmt.Errorf("%w: no JSON array found", domain.ErrAIResponseInvalid)
	}
	text = text[startIdx : endIdx+1]

	var candidates []domain.RecipeCandidate
	if err := json.Unmarshal([]byte(text), &candidates); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseInvalid, err)
	}

	for i, candidate := range candidates {
		if candidate.Title == "" {
			return nil, fmt.Errorf("%w: candidate %d has no title", domain.ErrAIResponseInvalid, i)
		}
	}

	return candidates, nil
}
