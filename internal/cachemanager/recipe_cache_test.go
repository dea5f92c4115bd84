package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/pubsub"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

// countingRepo wraps an in-memory recipe map and counts FindByGUID calls.
type countingRepo struct {
	recipes map[string]*domain.Recipe
	finds   int
}

func (r *countingRepo) Save(recipe *domain.Recipe) error { return nil }

func (r *countingRepo) FindByGUID(guid string) (*domain.Recipe, error) {
	r.finds++
	if recipe, ok := r.recipes[guid]; ok {
		return recipe, nil
	}
	return nil, &domain.RecipeNotFoundError{GUID: guid}
}

func (r *countingRepo) FindByID(id int64) (*domain.Recipe, error) {
	return nil, &domain.RecipeNotFoundError{ID: id}
}

func (r *countingRepo) List(filter domain.ListFilter) ([]*domain.Recipe, error) {
	return nil, nil
}

func (r *countingRepo) Delete(guid string) error { return nil }

func (r *countingRepo) Close() error { return nil }

func newCountingRepo() *countingRepo {
	return &countingRepo{recipes: map[string]*domain.Recipe{
		"g1": domain.NewRecipe("g1", "Pancakes"),
	}}
}

func TestRecipeCache_FetchHitsCacheOnRepeat(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, false)

	first, err := cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)
	second, err := cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)

	require.Equal(t, 1, repo.finds, "second fetch should come from the cache")
	require.Same(t, first, second)
}

func TestRecipeCache_FetchMissesAreNotCached(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, false)

	_, err := cache.Fetch(context.Background(), "missing")
	require.Error(t, err)
	_, err = cache.Fetch(context.Background(), "missing")
	require.Error(t, err)

	require.Equal(t, 2, repo.finds, "not-found results should not be cached")
}

func TestRecipeCache_Invalidate(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, false)

	_, err := cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(context.Background(), "g1"))

	_, err = cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)
	require.Equal(t, 2, repo.finds, "invalidated entry should reload from the repository")
}

func TestRecipeCache_Flush(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, false)

	_, err := cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)

	require.NoError(t, cache.Flush(context.Background()))

	_, err = cache.Fetch(context.Background(), "g1")
	require.NoError(t, err)
	require.Equal(t, 2, repo.finds)
}

func TestRecipeCache_FlushNotifiesSubscribers(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := cache.Subscribe(ctx)

	require.NoError(t, cache.Flush(context.Background()))

	select {
	case event := <-events:
		require.Equal(t, pubsub.FlushedEvent, event.Type)
		require.Equal(t, "recipes", event.Payload)
	case <-time.After(time.Second):
		t.Fatal("no flushed event arrived")
	}
}

func TestRecipeCache_SkipCache(t *testing.T) {
	repo := newCountingRepo()
	cache := NewRecipeCache(repo, time.Minute, true)

	for i := 0; i < 3; i++ {
		_, err := cache.Fetch(context.Background(), "g1")
		require.NoError(t, err)
	}
	require.Equal(t, 3, repo.finds, "skip-cache mode should always hit the repository")
}
