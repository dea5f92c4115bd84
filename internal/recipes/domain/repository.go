package domain

// ListFilter provides filtering options for listing recipes.
type ListFilter struct {
	// NameContains filters to recipes whose name contains the given
	// substring (case-insensitive). Empty means no name filtering.
	NameContains string

	// Tag filters to recipes carrying the given tag. Empty means no tag
	// filtering.
	Tag string

	// Limit restricts the number of recipes returned. 0 means no limit.
	Limit int

	// IncludeDeleted includes soft-deleted recipes in results.
	IncludeDeleted bool
}

// RecipeRepository defines the persistence interface for Recipe entities.
// Implementations may use SQLite, in-memory storage, or other backends.
type RecipeRepository interface {
	// Save persists a recipe. For new recipes (ID == 0) it creates a new
	// record and sets the ID; otherwise it updates the existing record.
	Save(recipe *Recipe) error

	// FindByGUID retrieves a recipe by its GUID.
	// Returns RecipeNotFoundError if no matching recipe exists.
	// Soft-deleted recipes are not returned.
	FindByGUID(guid string) (*Recipe, error)

	// FindByID retrieves a recipe by its internal database ID.
	// Returns RecipeNotFoundError if no matching recipe exists.
	FindByID(id int64) (*Recipe, error)

	// List retrieves recipes matching the filter, ordered by name ascending.
	List(filter ListFilter) ([]*Recipe, error)

	// Delete performs a soft delete by setting the deletedAt timestamp.
	// Returns RecipeNotFoundError if no matching recipe exists.
	Delete(guid string) error

	// Close releases any resources held by the repository.
	Close() error
}
