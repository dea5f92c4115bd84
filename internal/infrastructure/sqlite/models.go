package sqlite

import (
	"encoding/json"
	"time"

	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// RecipeModel represents the database row for the recipes table.
// Time values are stored as Unix timestamps; tags and ingredients are JSON
// encoded text columns.
type RecipeModel struct {
	ID                 int64
	GUID               string
	Name               string
	CookingTimeMinutes int
	Servings           int
	Tags               *string // nullable, JSON array
	Notes              *string // nullable
	Instructions       string
	Ingredients        *string // nullable, JSON array
	CreatedAt          int64
	ModifiedAt         int64
	DeletedAt          *int64 // nullable
}

// ingredientModel is the JSON shape of one ingredient line in the
// ingredients column. The unit is stored by its canonical token so rows stay
// readable with plain SQL.
type ingredientModel struct {
	Name     string   `json:"name"`
	Modifier string   `json:"modifier,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit"`
}

// toRecipeModel converts a domain Recipe entity to a database RecipeModel.
func toRecipeModel(r *domain.Recipe) *RecipeModel {
	m := &RecipeModel{
		ID:                 r.ID(),
		GUID:               r.GUID(),
		Name:               r.Name(),
		CookingTimeMinutes: r.CookingTimeMinutes(),
		Servings:           r.Servings(),
		Instructions:       r.Instructions(),
		CreatedAt:          r.CreatedAt().Unix(),
		ModifiedAt:         r.ModifiedAt().Unix(),
	}
	if len(r.Tags()) > 0 {
		if tagsJSON, err := json.Marshal(r.Tags()); err == nil {
			tags := string(tagsJSON)
			m.Tags = &tags
		}
	}
	if r.Notes() != "" {
		notes := r.Notes()
		m.Notes = &notes
	}
	if len(r.Ingredients()) > 0 {
		rows := make([]ingredientModel, 0, len(r.Ingredients()))
		for _, line := range r.Ingredients() {
			rows = append(rows, ingredientModel{
				Name:     line.Name,
				Modifier: line.Modifier,
				Quantity: line.Quantity,
				Unit:     line.Unit.Token(),
			})
		}
		if ingredientsJSON, err := json.Marshal(rows); err == nil {
			ingredients := string(ingredientsJSON)
			m.Ingredients = &ingredients
		}
	}
	if r.DeletedAt() != nil {
		deletedAt := r.DeletedAt().Unix()
		m.DeletedAt = &deletedAt
	}
	return m
}

// toDomain converts a database RecipeModel to a domain Recipe entity.
func (m *RecipeModel) toDomain() *domain.Recipe {
	var tags []string
	if m.Tags != nil {
		_ = json.Unmarshal([]byte(*m.Tags), &tags)
	}

	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	var ingredients []domain.IngredientLine
	if m.Ingredients != nil {
		var rows []ingredientModel
		_ = json.Unmarshal([]byte(*m.Ingredients), &rows)
		for _, row := range rows {
			unit, ok := units.Resolve(row.Unit)
			if !ok {
				unit = units.Pieces
			}
			ingredients = append(ingredients, domain.IngredientLine{
				Name:     row.Name,
				Modifier: row.Modifier,
				Quantity: row.Quantity,
				Unit:     unit,
			})
		}
	}

	var deletedAt *time.Time
	if m.DeletedAt != nil {
		t := time.Unix(*m.DeletedAt, 0)
		deletedAt = &t
	}

	return domain.ReconstituteRecipe(
		m.ID,
		m.GUID,
		m.Name,
		m.CookingTimeMinutes,
		m.Servings,
		tags,
		notes,
		m.Instructions,
		ingredients,
		time.Unix(m.CreatedAt, 0),
		time.Unix(m.ModifiedAt, 0),
		deletedAt,
	)
}
