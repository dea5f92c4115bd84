package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter handles output formatting.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatRecipesJSON formats a list of recipes as indented JSON.
func (f *Formatter) FormatRecipesJSON(recipes []RecipeDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(recipes)
}

// FormatRecipeJSON formats a single recipe as indented JSON.
func (f *Formatter) FormatRecipeJSON(recipe RecipeDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(recipe)
}

// FormatRecipeTable formats recipes as an aligned text table.
func (f *Formatter) FormatRecipeTable(recipes []RecipeDTO) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(f.writer, "No recipes found.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-38s %-30s %6s %9s %s\n", "GUID", "NAME", "TIME", "SERVINGS", "TAGS")
	for _, r := range recipes {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(&b, "%-38s %-30s %5dm %9d %s\n",
			r.GUID, name, r.CookingTimeMinutes, r.Servings, strings.Join(r.Tags, ","))
	}
	_, err := io.WriteString(f.writer, b.String())
	return err
}
