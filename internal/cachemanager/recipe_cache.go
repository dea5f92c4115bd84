package cachemanager

import (
	"context"
	"time"

	"github.com/zjrosen/larder/internal/pubsub"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

// recipeKeyPrefix namespaces recipe entries in the shared key space.
const recipeKeyPrefix = "recipe:"

// RecipeCache is a read-through cache over repository GUID lookups. Fetch has
// the signature the grocery aggregator expects, so the cache drops in between
// the aggregator and the SQLite repository.
type RecipeCache struct {
	store  *InMemoryCacheManager[string, *domain.Recipe]
	rt     *ReadThroughCache[string, *domain.Recipe, string]
	ttl    time.Duration
	events *pubsub.Broker[string]
}

// NewRecipeCache builds a recipe cache in front of repo. skipCache disables
// caching while keeping the call path identical.
func NewRecipeCache(repo domain.RecipeRepository, ttl time.Duration, skipCache bool) *RecipeCache {
	store := NewInMemoryCacheManager[string, *domain.Recipe]("recipes", ttl, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, *domain.Recipe, string](store,
		func(ctx context.Context, guid string) (*domain.Recipe, error) {
			return repo.FindByGUID(guid)
		},
		skipCache,
	)
	return &RecipeCache{
		store:  store,
		rt:     rt,
		ttl:    ttl,
		events: pubsub.NewBroker[string](),
	}
}

// Fetch returns the recipe for guid, consulting the cache first.
func (c *RecipeCache) Fetch(ctx context.Context, guid string) (*domain.Recipe, error) {
	return c.rt.Get(ctx, recipeKeyPrefix+guid, guid, c.ttl)
}

// Invalidate drops the cached entries for the given GUIDs, typically after a
// save or delete.
func (c *RecipeCache) Invalidate(ctx context.Context, guids ...string) error {
	keys := make([]string, 0, len(guids))
	for _, guid := range guids {
		keys = append(keys, recipeKeyPrefix+guid)
	}
	return c.store.Delete(ctx, keys...)
}

// Flush drops every cached recipe and announces the flush to subscribers.
// The database watcher calls this when the file changes under us.
func (c *RecipeCache) Flush(ctx context.Context) error {
	if err := c.store.Flush(ctx); err != nil {
		return err
	}
	c.events.Publish(pubsub.FlushedEvent, "recipes")
	return nil
}

// Subscribe hands out a channel of cache lifecycle events. Consumers that
// hold derived state (a rendered grocery list, say) rebuild it when a
// flushed event arrives.
func (c *RecipeCache) Subscribe(ctx context.Context) <-chan pubsub.Event[string] {
	return c.events.Subscribe(ctx)
}
