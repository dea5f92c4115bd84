// Package domain provides the pure domain layer for recipes with no
// infrastructure dependencies.
//
// It defines the Recipe entity with encapsulated state, the IngredientLine
// value type, the RecipeRepository interface for persistence abstraction, and
// domain-specific error types. Ingredient quantities on a Recipe are always
// expressed in base units (grams, milliliters, pieces); normalization happens
// in the text codec before a Recipe is constructed.
package domain

import (
	"time"

	"github.com/zjrosen/larder/internal/units"
)

// MaxNameLength is the upper bound on a recipe name.
const MaxNameLength = 200

// IngredientLine is one ingredient entry of a recipe. Quantity is expressed
// in the line's base Unit; nil means no quantity was given. Modifier is a
// free-text preparation qualifier such as "diced".
type IngredientLine struct {
	Name     string
	Modifier string
	Quantity *float64
	Unit     units.Unit
}

// Recipe is the aggregate root for a stored recipe. All fields are unexported
// to enforce encapsulation; use the constructor and accessor methods.
type Recipe struct {
	id                 int64
	guid               string
	name               string
	cookingTimeMinutes int
	servings           int
	tags               []string
	notes              string
	instructions       string
	ingredients        []IngredientLine

	createdAt  time.Time
	modifiedAt time.Time
	deletedAt  *time.Time
}

// NewRecipe creates a new Recipe with the given GUID and name. Timestamps
// default to the current time; the ID is assigned by the persistence layer.
func NewRecipe(guid, name string) *Recipe {
	now := time.Now()
	return &Recipe{
		id:         0,
		guid:       guid,
		name:       name,
		createdAt:  now,
		modifiedAt: now,
	}
}

// ReconstituteRecipe creates a Recipe from existing data, typically when
// hydrating from the database. All fields are provided explicitly.
func ReconstituteRecipe(
	id int64,
	guid, name string,
	cookingTimeMinutes, servings int,
	tags []string,
	notes, instructions string,
	ingredients []IngredientLine,
	createdAt, modifiedAt time.Time,
	deletedAt *time.Time,
) *Recipe {
	return &Recipe{
		id:                 id,
		guid:               guid,
		name:               name,
		cookingTimeMinutes: cookingTimeMinutes,
		servings:           servings,
		tags:               tags,
		notes:              notes,
		instructions:       instructions,
		ingredients:        ingredients,
		createdAt:          createdAt,
		modifiedAt:         modifiedAt,
		deletedAt:          deletedAt,
	}
}

// ID returns the internal database ID, or 0 if the recipe is unsaved.
func (r *Recipe) ID() int64 { return r.id }

// SetID assigns the database ID after the first save.
func (r *Recipe) SetID(id int64) { r.id = id }

// GUID returns the stable external identifier of this recipe.
func (r *Recipe) GUID() string { return r.guid }

// Name returns the recipe name.
func (r *Recipe) Name() string { return r.name }

// CookingTimeMinutes returns the cooking time in minutes.
func (r *Recipe) CookingTimeMinutes() int { return r.cookingTimeMinutes }

// Servings returns the number of servings the recipe yields.
func (r *Recipe) Servings() int { return r.servings }

// Tags returns the tags in the order they were authored.
func (r *Recipe) Tags() []string { return r.tags }

// Notes returns the optional free-text notes.
func (r *Recipe) Notes() string { return r.notes }

// Instructions returns the preparation instructions.
func (r *Recipe) Instructions() string { return r.instructions }

// Ingredients returns the ordered ingredient lines.
func (r *Recipe) Ingredients() []IngredientLine { return r.ingredients }

// CreatedAt returns when this recipe was created.
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// ModifiedAt returns when this recipe was last modified.
func (r *Recipe) ModifiedAt() time.Time { return r.modifiedAt }

// DeletedAt returns when this recipe was soft-deleted, or nil.
func (r *Recipe) DeletedAt() *time.Time { return r.deletedAt }

// SetName updates the recipe name.
func (r *Recipe) SetName(name string) {
	r.name = name
	r.touch()
}

// SetCookingTimeMinutes updates the cooking time.
func (r *Recipe) SetCookingTimeMinutes(minutes int) {
	r.cookingTimeMinutes = minutes
	r.touch()
}

// SetServings updates the servings count.
func (r *Recipe) SetServings(servings int) {
	r.servings = servings
	r.touch()
}

// SetTags replaces the tag list, preserving the given order.
func (r *Recipe) SetTags(tags []string) {
	r.tags = tags
	r.touch()
}

// SetNotes updates the notes text.
func (r *Recipe) SetNotes(notes string) {
	r.notes = notes
	r.touch()
}

// SetInstructions updates the instructions text.
func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = instructions
	r.touch()
}

// SetIngredients replaces the ingredient lines. Quantities must already be
// normalized to base units.
func (r *Recipe) SetIngredients(lines []IngredientLine) {
	r.ingredients = lines
	r.touch()
}

// SetTimestamps overrides both timestamps, used by the codec when an imported
// document carries explicit Created/Modified metadata.
func (r *Recipe) SetTimestamps(createdAt, modifiedAt time.Time) {
	r.createdAt = createdAt
	r.modifiedAt = modifiedAt
}

// MarkDeleted records a soft delete.
func (r *Recipe) MarkDeleted(at time.Time) {
	r.deletedAt = &at
}

func (r *Recipe) touch() {
	r.modifiedAt = time.Now()
}

// Validate checks the invariants every stored recipe must satisfy. It returns
// a ValidationError naming the first offending field, or nil.
func (r *Recipe) Validate() error {
	if r.name == "" {
		return &ValidationError{Field: "Name", Reason: "must not be empty"}
	}
	if len(r.name) > MaxNameLength {
		return &ValidationError{Field: "Name", Reason: "must be at most 200 characters"}
	}
	if r.cookingTimeMinutes < 1 {
		return &ValidationError{Field: "Cooking Time", Reason: "must be at least 1 minute"}
	}
	if r.servings < 1 {
		return &ValidationError{Field: "Servings", Reason: "must be at least 1"}
	}
	if r.instructions == "" {
		return &ValidationError{Field: "Instructions", Reason: "must not be empty"}
	}
	return nil
}
