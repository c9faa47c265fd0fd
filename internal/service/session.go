package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// sessionTTL bounds how long a suggestion batch stays addressable.
const sessionTTL = 24 * time.Hour

// ErrRecipeNotFound is returned when a session or recipe ID does not
// resolve to a stored suggestion.
var ErrRecipeNotFound = errors.New("recipe not found in session")

// RecipeSessionStore keeps suggestion batches in Redis so that image
// backfill requests can address individual recipes after the suggestion
// response has gone out.
type RecipeSessionStore struct {
	client *redis.Client
}

// NewRecipeSessionStore creates a new RecipeSessionStore instance.
func NewRecipeSessionStore(client *redis.Client) *RecipeSessionStore {
	return &RecipeSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("recipe_session:%s", sessionID)
}

// SaveBatch stores a suggestion batch under a fresh session ID. Each
// recipe is a hash field keyed by its recipe ID.
func (s *RecipeSessionStore) SaveBatch(ctx context.Context, recipes []types.Recipe) (string, error) {
	sessionID := uuid.New().String()
	key := sessionKey(sessionID)

	fields := make(map[string]interface{}, len(recipes))
	for _, r := range recipes {
		data, err := json.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to marshal recipe: %w", err)
		}
		fields[r.ID] = data
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store recipe session: %w", err)
	}
	return sessionID, nil
}

// GetRecipe loads one recipe from a stored batch.
func (s *RecipeSessionStore) GetRecipe(ctx context.Context, sessionID, recipeID string) (*types.Recipe, error) {
	data, err := s.client.HGet(ctx, sessionKey(sessionID), recipeID).Result()
	if err == redis.Nil {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	var recipe types.Recipe
	if err := json.Unmarshal([]byte(data), &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return &recipe, nil
}

// SetImageURL replaces the recipe's placeholder image with imageURL,
// but only while the stored value is still the placeholder. It returns
// whether the update was applied and the image URL now stored. The
// check-and-write runs under WATCH so a concurrent backfill cannot
// overwrite an image that already landed.
func (s *RecipeSessionStore) SetImageURL(ctx context.Context, sessionID, recipeID, imageURL string) (bool, string, error) {
	key := sessionKey(sessionID)
	var applied bool
	var current string

	txn := func(tx *redis.Tx) error {
		data, err := tx.HGet(ctx, key, recipeID).Result()
		if err == redis.Nil {
			return ErrRecipeNotFound
		}
		if err != nil {
			return err
		}

		var recipe types.Recipe
		if err := json.Unmarshal([]byte(data), &recipe); err != nil {
			return fmt.Errorf("failed to unmarshal recipe: %w", err)
		}

		if recipe.ImageURL != types.PlaceholderImageURL && recipe.ImageURL != "" {
			applied = false
			current = recipe.ImageURL
			return nil
		}

		recipe.ImageURL = imageURL
		updated, err := json.Marshal(recipe)
		if err != nil {
			return fmt.Errorf("failed to marshal recipe: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, recipeID, updated)
			return nil
		})
		if err != nil {
			return err
		}
		applied = true
		current = imageURL
		return nil
	}

	// Retry on WATCH conflicts a few times before giving up.
	for i := 0; i < 5; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return applied, current, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return false, "", err
	}
	return false, "", errors.New("image update contention, retries exhausted")
}
