package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moramnavadeep/FreshNCook/internal/types"
)

func setupSessionStore(t *testing.T) *RecipeSessionStore {
	t.Helper()
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST not set, skipping Redis-backed test")
	}

	addr := fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"))
	if os.Getenv("REDIS_PORT") == "" {
		addr = os.Getenv("REDIS_HOST") + ":6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewRecipeSessionStore(client)
}

func sampleBatch() []types.Recipe {
	return []types.Recipe{
		{
			ID:           "recipe-1",
			Name:         "Tomato Rice",
			Ingredients:  []string{"tomato", "rice"},
			Instructions: "Cook.",
			ImageURL:     types.PlaceholderImageURL,
		},
		{
			ID:           "recipe-2",
			Name:         "Tomato Soup",
			Ingredients:  []string{"tomato"},
			Instructions: "Simmer.",
			ImageURL:     types.PlaceholderImageURL,
		},
	}
}

func TestSessionStoreSaveAndGet(t *testing.T) {
	store := setupSessionStore(t)
	ctx := context.Background()

	sessionID, err := store.SaveBatch(ctx, sampleBatch())
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	recipe, err := store.GetRecipe(ctx, sessionID, "recipe-1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Rice", recipe.Name)
	assert.Equal(t, types.PlaceholderImageURL, recipe.ImageURL)

	_, err = store.GetRecipe(ctx, sessionID, "recipe-9")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestSessionStoreSetImageURL(t *testing.T) {
	store := setupSessionStore(t)
	ctx := context.Background()

	sessionID, err := store.SaveBatch(ctx, sampleBatch())
	require.NoError(t, err)

	applied, current, err := store.SetImageURL(ctx, sessionID, "recipe-1", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "data:image/png;base64,AAAA", current)

	recipe, err := store.GetRecipe(ctx, sessionID, "recipe-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", recipe.ImageURL)

	// The sibling recipe keeps its placeholder.
	sibling, err := store.GetRecipe(ctx, sessionID, "recipe-2")
	require.NoError(t, err)
	assert.Equal(t, types.PlaceholderImageURL, sibling.ImageURL)
}

func TestSessionStoreSetImageURLDoesNotOverwrite(t *testing.T) {
	store := setupSessionStore(t)
	ctx := context.Background()

	sessionID, err := store.SaveBatch(ctx, sampleBatch())
	require.NoError(t, err)

	_, _, err = store.SetImageURL(ctx, sessionID, "recipe-1", "data:image/png;base64,FIRST")
	require.NoError(t, err)

	// A second, slower generation loses: the stored image stays.
	applied, current, err := store.SetImageURL(ctx, sessionID, "recipe-1", "data:image/png;base64,SECOND")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "data:image/png;base64,FIRST", current)

	recipe, err := store.GetRecipe(ctx, sessionID, "recipe-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,FIRST", recipe.ImageURL)
}
