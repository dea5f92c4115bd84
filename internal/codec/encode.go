package codec

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// Encode renders one recipe record to the canonical text format. The output
// is deterministic: fixed header field order, ingredients sorted ascending by
// name, and a notes section only when notes are non-empty.
func Encode(record *domain.Recipe) string {
	var b strings.Builder

	b.WriteString(DelimRecipe)
	b.WriteByte('\n')
	b.WriteString("Name: " + record.Name() + "\n")
	b.WriteString("Cooking Time: " + strconv.Itoa(record.CookingTimeMinutes()) + " minutes\n")
	b.WriteString("Servings: " + strconv.Itoa(record.Servings()) + "\n")
	if tags := record.Tags(); len(tags) > 0 {
		b.WriteString("Tags: " + strings.Join(tags, ", ") + "\n")
	}
	b.WriteString("Created: " + record.CreatedAt().Format(time.RFC3339) + "\n")
	b.WriteString("Modified: " + record.ModifiedAt().Format(time.RFC3339) + "\n")

	b.WriteString(DelimIngredients)
	b.WriteByte('\n')
	for _, line := range sortedIngredients(record.Ingredients()) {
		b.WriteString(encodeIngredient(line))
		b.WriteByte('\n')
	}

	b.WriteString(DelimInstructions)
	b.WriteByte('\n')
	b.WriteString(record.Instructions())
	b.WriteByte('\n')

	if notes := record.Notes(); notes != "" {
		b.WriteString(DelimNotes)
		b.WriteByte('\n')
		b.WriteString(notes)
		b.WriteByte('\n')
	}

	b.WriteString(DelimEndRecipe)
	b.WriteByte('\n')
	return b.String()
}

// EncodeAll renders multiple records sorted by name, separated by a blank
// line, so repeated exports of unchanged data are diff-friendly.
func EncodeAll(records []*domain.Recipe) string {
	sorted := make([]*domain.Recipe, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name()) < strings.ToLower(sorted[j].Name())
	})

	blocks := make([]string, len(sorted))
	for i, record := range sorted {
		blocks[i] = Encode(record)
	}
	return strings.Join(blocks, "\n")
}

// sortedIngredients returns a copy of the lines sorted ascending by name,
// then modifier, case-insensitive.
func sortedIngredients(lines []domain.IngredientLine) []domain.IngredientLine {
	sorted := make([]domain.IngredientLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, nj := strings.ToLower(sorted[i].Name), strings.ToLower(sorted[j].Name)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(sorted[i].Modifier) < strings.ToLower(sorted[j].Modifier)
	})
	return sorted
}

// encodeIngredient renders one line so that re-importing it reproduces the
// same base quantity. Count-dimension lines omit the unit token: the line
// parser defaults a bare quantity to pieces.
func encodeIngredient(line domain.IngredientLine) string {
	var b strings.Builder

	if line.Quantity != nil {
		b.WriteString(strconv.FormatFloat(*line.Quantity, 'f', -1, 64))
		b.WriteByte(' ')
		if line.Unit != units.Pieces {
			b.WriteString(line.Unit.Token())
			b.WriteByte(' ')
		}
	}

	b.WriteString(line.Name)
	switch {
	case line.Modifier != "":
		b.WriteString(", " + line.Modifier)
	case strings.Contains(line.Name, ","):
		// A bare trailing comma marks the modifier as empty, so the comma
		// inside the name is not reinterpreted as the modifier split on
		// re-import.
		b.WriteByte(',')
	}
	return b.String()
}
