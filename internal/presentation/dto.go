// Package presentation converts domain entities into output shapes for the
// CLI. DTOs carry display quantities: base-unit values converted back to the
// friendliest unit of their dimension.
package presentation

import (
	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// RecipeDTO represents a recipe for presentation.
type RecipeDTO struct {
	GUID               string          `json:"guid"`
	Name               string          `json:"name"`
	CookingTimeMinutes int             `json:"cooking_time_minutes"`
	Servings           int             `json:"servings"`
	Tags               []string        `json:"tags,omitempty"`
	Ingredients        []IngredientDTO `json:"ingredients,omitempty"`
	Instructions       string          `json:"instructions"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          string          `json:"created_at"`
	ModifiedAt         string          `json:"modified_at"`
}

// IngredientDTO represents one ingredient line with a display quantity.
type IngredientDTO struct {
	Name     string   `json:"name"`
	Modifier string   `json:"modifier,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// FromDomainRecipe converts a domain recipe to a DTO.
func FromDomainRecipe(r *domain.Recipe) RecipeDTO {
	ingredients := make([]IngredientDTO, 0, len(r.Ingredients()))
	for _, line := range r.Ingredients() {
		ingredients = append(ingredients, fromDomainIngredient(line))
	}

	return RecipeDTO{
		GUID:               r.GUID(),
		Name:               r.Name(),
		CookingTimeMinutes: r.CookingTimeMinutes(),
		Servings:           r.Servings(),
		Tags:               r.Tags(),
		Ingredients:        ingredients,
		Instructions:       r.Instructions(),
		Notes:              r.Notes(),
		CreatedAt:          r.CreatedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
		ModifiedAt:         r.ModifiedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func fromDomainIngredient(line domain.IngredientLine) IngredientDTO {
	dto := IngredientDTO{
		Name:     line.Name,
		Modifier: line.Modifier,
	}
	if line.Quantity != nil {
		value, displayUnit := units.FromBase(*line.Quantity, line.Unit)
		dto.Quantity = &value
		dto.Unit = displayUnit.Label()
	}
	return dto
}

// FromDomainRecipes converts a slice of domain recipes to DTOs.
func FromDomainRecipes(recipes []*domain.Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = FromDomainRecipe(r)
	}
	return dtos
}
