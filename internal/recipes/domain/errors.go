package domain

import "fmt"

// RecipeNotFoundError indicates that no recipe matched the given identifier.
type RecipeNotFoundError struct {
	GUID string
	ID   int64
}

func (e *RecipeNotFoundError) Error() string {
	if e.GUID != "" {
		return fmt.Sprintf("recipe %q not found", e.GUID)
	}
	return fmt.Sprintf("recipe #%d not found", e.ID)
}

// ValidationError indicates a recipe field violated a domain invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
