package recipe

import (
	"github.com/Kausha3/smart-pantry/domain"
)

// Catalog is the static cookbook used for browsing and as the offline
// fallback when the generator is unavailable. Ordering here is the tie-break
// order after ranking.
var Catalog = []domain.RecipeCandidate{
	{
		Title:              "Vegetable Stir Fry",
		UsedIngredients:    []string{"Broccoli florets", "Carrot", "Bell pepper", "Garlic cloves"},
		MissingIngredients: []string{"Soy sauce", "Sesame oil"},
		Time:               "25 min",
		Calories:           "310 kcal",
		Instructions: []string{
			"Chop all vegetables into bite-sized pieces.",
			"Heat oil in a wok over high heat.",
			"Stir-fry garlic for 30 seconds, then add vegetables.",
			"Cook for 5-7 minutes, tossing constantly.",
			"Season with soy sauce and sesame oil before serving.",
		},
		Dietary: []string{"vegetarian", "vegan"},
	},
	{
		Title:              "Creamy Mushroom Omelette",
		UsedIngredients:    []string{"Eggs", "Mushrooms", "Milk", "Butter"},
		MissingIngredients: []string{"Chives"},
		Time:               "15 min",
		Calories:           "380 kcal",
		Instructions: []string{
			"Whisk eggs with a splash of milk.",
			"Saute sliced mushrooms in butter until golden.",
			"Pour in the eggs and cook over medium heat.",
			"Fold the omelette and garnish with chives.",
		},
		Dietary: []string{"vegetarian"},
	},
	{
		Title:              "Garlic Butter Chicken",
		UsedIngredients:    []string{"Chicken breast", "Garlic cloves", "Butter"},
		MissingIngredients: []string{"Fresh parsley", "Lemon"},
		Time:               "35 min",
		Calories:           "520 kcal",
		Instructions: []string{
			"Season chicken breasts with salt and pepper.",
			"Sear in butter until golden on both sides.",
			"Add minced garlic and baste the chicken.",
			"Finish with parsley and a squeeze of lemon.",
		},
	},
	{
		Title:              "Tomato Basil Pasta",
		UsedIngredients:    []string{"Pasta", "Tomatoes", "Garlic cloves", "Olive oil"},
		MissingIngredients: []string{"Fresh basil", "Parmesan cheese"},
		Time:               "30 min",
		Calories:           "450 kcal",
		Instructions: []string{
			"Cook pasta in salted water until al dente.",
			"Soften garlic and diced tomatoes in olive oil.",
			"Toss the pasta through the sauce.",
			"Top with basil and grated parmesan.",
		},
		Dietary: []string{"vegetarian"},
	},
	{
		Title:              "Yogurt Berry Parfait",
		UsedIngredients:    []string{"Yogurt", "Mixed berries", "Honey"},
		MissingIngredients: []string{"Granola"},
		Time:               "10 min",
		Calories:           "260 kcal",
		Instructions: []string{
			"Layer yogurt and berries in a glass.",
			"Drizzle honey between the layers.",
			"Top with granola just before serving.",
		},
		Dietary: []string{"vegetarian", "gluten-free"},
	},
	{
		Title:              "Hearty Lentil Soup",
		UsedIngredients:    []string{"Lentils", "Carrot", "Onion", "Celery stalks"},
		MissingIngredients: []string{"Vegetable stock", "Cumin"},
		Time:               "45 min",
		Calories:           "340 kcal",
		Instructions: []string{
			"Dice the onion, carrot, and celery.",
			"Sweat the vegetables until soft.",
			"Add lentils, stock, and cumin.",
			"Simmer for 30 minutes and season to taste.",
		},
		Dietary: []string{"vegetarian", "vegan"},
	},
}
