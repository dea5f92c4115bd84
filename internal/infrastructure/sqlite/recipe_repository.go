package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/larder/internal/recipes/domain"
)

// recipeColumns is the list of columns to select for recipe queries.
const recipeColumns = `id, guid, name, cooking_time_minutes, servings, tags,
	notes, instructions, ingredients, created_at, modified_at, deleted_at`

// recipeRepository implements domain.RecipeRepository using SQLite.
type recipeRepository struct {
	db *sql.DB
}

func newRecipeRepository(db *sql.DB) *recipeRepository {
	return &recipeRepository{db: db}
}

// Ensure recipeRepository implements domain.RecipeRepository.
var _ domain.RecipeRepository = (*recipeRepository)(nil)

// scanRecipe scans a row into a RecipeModel.
func scanRecipe(scanner interface{ Scan(...any) error }) (*RecipeModel, error) {
	var model RecipeModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.Name,
		&model.CookingTimeMinutes, &model.Servings,
		&model.Tags, &model.Notes, &model.Instructions, &model.Ingredients,
		&model.CreatedAt, &model.ModifiedAt, &model.DeletedAt,
	)
	return &model, err
}

// Save persists a recipe. For new recipes (ID == 0) it inserts a row and sets
// the recipe ID; otherwise it updates the existing row.
func (r *recipeRepository) Save(recipe *domain.Recipe) error {
	model := toRecipeModel(recipe)

	if recipe.ID() == 0 {
		result, err := r.db.Exec(
			`INSERT INTO recipes (
				guid, name, cooking_time_minutes, servings, tags,
				notes, instructions, ingredients, created_at, modified_at, deleted_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			model.GUID, model.Name, model.CookingTimeMinutes, model.Servings, model.Tags,
			model.Notes, model.Instructions, model.Ingredients,
			model.CreatedAt, model.ModifiedAt, model.DeletedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recipe: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		recipe.SetID(id)
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE recipes SET
			name = ?, cooking_time_minutes = ?, servings = ?, tags = ?,
			notes = ?, instructions = ?, ingredients = ?, modified_at = ?, deleted_at = ?
		WHERE id = ?`,
		model.Name, model.CookingTimeMinutes, model.Servings, model.Tags,
		model.Notes, model.Instructions, model.Ingredients,
		model.ModifiedAt, model.DeletedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// FindByGUID retrieves a recipe by its GUID.
// Returns RecipeNotFoundError if no matching recipe exists.
// Soft-deleted recipes are not returned.
func (r *recipeRepository) FindByGUID(guid string) (*domain.Recipe, error) {
	row := r.db.QueryRow(
		`SELECT `+recipeColumns+` FROM recipes WHERE guid = ? AND deleted_at IS NULL`,
		guid,
	)
	model, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.RecipeNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by guid: %w", err)
	}
	return model.toDomain(), nil
}

// FindByID retrieves a recipe by its internal database ID.
// Returns RecipeNotFoundError if no matching recipe exists.
func (r *recipeRepository) FindByID(id int64) (*domain.Recipe, error) {
	row := r.db.QueryRow(
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	model, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.RecipeNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by id: %w", err)
	}
	return model.toDomain(), nil
}

// List retrieves recipes matching the filter, ordered by name ascending
// (case-insensitive).
func (r *recipeRepository) List(filter domain.ListFilter) ([]*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE 1=1`
	args := []any{}

	if filter.NameContains != "" {
		query += ` AND name LIKE ? COLLATE NOCASE`
		args = append(args, "%"+filter.NameContains+"%")
	}

	// Tags are stored as a JSON array; match the quoted element.
	if filter.Tag != "" {
		query += ` AND tags LIKE ?`
		args = append(args, `%"`+filter.Tag+`"%`)
	}

	if !filter.IncludeDeleted {
		query += ` AND deleted_at IS NULL`
	}

	query += ` ORDER BY name COLLATE NOCASE ASC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recipes []*domain.Recipe
	for rows.Next() {
		model, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipe rows: %w", err)
	}

	return recipes, nil
}

// Delete performs a soft delete by setting the deletedAt timestamp.
// Returns RecipeNotFoundError if no matching recipe exists.
func (r *recipeRepository) Delete(guid string) error {
	now := time.Now().Unix()
	result, err := r.db.Exec(
		`UPDATE recipes SET deleted_at = ?, modified_at = ?
		 WHERE guid = ? AND deleted_at IS NULL`,
		now, now, guid,
	)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &domain.RecipeNotFoundError{GUID: guid}
	}
	return nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *recipeRepository) Close() error {
	return nil
}
