package recipe

import (
	"testing"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArray = `[
	{
		"title": "Tomato Pasta",
		"usedIngredients": ["Tomatoes", "Pasta"],
		"missingIngredients": ["Basil"],
		"time": "25 min",
		"calories": "430 kcal",
		"instructions": ["Boil pasta.", "Simmer tomatoes.", "Combine."],
		"dietary": ["vegetarian"]
	}
]`

func TestParseCandidatesPlainArray(t *testing.T) {
	candidates, err := ParseCandidates([]byte(validArray))

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Tomato Pasta", candidates[0].Title)
	assert.Equal(t, []string{"Tomatoes", "Pasta"}, candidates[0].UsedIngredients)
	assert.Equal(t, []string{"Basil"}, candidates[0].MissingIngredients)
	assert.Equal(t, "25 min", candidates[0].Time)
}

func TestParseCandidatesMarkdownFenced(t *testing.T) {
	fenced := "```json\n" + validArray + "\n```"

	candidates, err := ParseCandidates([]byte(fenced))

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Tomato Pasta", candidates[0].Title)
}

func TestParseCandidatesProseWrapped(t *testing.T) {
	wrapped := "Here are your recipes:\n" + validArray + "\nEnjoy cooking!"

	candidates, err := ParseCandidates([]byte(wrapped))

	require.NoError(t, err)
	require.Len(t, candidates, 1)
}

func TestParseCandidatesNoArray(t *testing.T) {
	_, err := ParseCandidates([]byte("I cannot generate recipes right now."))

	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)
}

func TestParseCandidatesMalformedJSON(t *testing.T) {
	_, err := ParseCandidates([]byte(`[{"title": "Broken"`))

	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)
}

func TestParseCandidatesMissingTitle(t *testing.T) {
	_, err := ParseCandidates([]byte(`[{"usedIngredients": ["Milk"]}]`))

	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)
}
