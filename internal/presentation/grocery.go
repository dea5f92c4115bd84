package presentation

import (
	"encoding/json"

	"github.com/zjrosen/larder/internal/grocery"
)

// GroceryListDTO represents a grocery list for machine-readable output.
type GroceryListDTO struct {
	RecipeCount int              `json:"recipe_count"`
	Items       []GroceryItemDTO `json:"items"`
}

// GroceryItemDTO represents one grocery line in display units.
type GroceryItemDTO struct {
	Name     string   `json:"name"`
	Modifier string   `json:"modifier,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Trace    bool     `json:"trace,omitempty"`
}

// FromGroceryList converts a grocery list to its DTO.
func FromGroceryList(list *grocery.List) GroceryListDTO {
	items := make([]GroceryItemDTO, 0, len(list.Items))
	for _, item := range list.Items {
		dto := GroceryItemDTO{
			Name:     item.Name,
			Modifier: item.Modifier,
			Trace:    item.Trace,
		}
		if !item.Trace {
			quantity := item.Quantity
			dto.Quantity = &quantity
			dto.Unit = item.Unit
		}
		items = append(items, dto)
	}
	return GroceryListDTO{RecipeCount: list.RecipeCount, Items: items}
}

// FormatGroceryJSON formats a grocery list as indented JSON.
func (f *Formatter) FormatGroceryJSON(list GroceryListDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(list)
}
