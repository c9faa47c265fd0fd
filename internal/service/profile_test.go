package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/testhelpers"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	return NewProfileService(testhelpers.SetupTestDB(t), zap.NewNop())
}

func TestUpsertProfileCreates(t *testing.T) {
	svc := newProfileService(t)

	profile, err := svc.UpsertProfile(context.Background(), "uid-1", &types.UpsertProfileRequest{
		Email:       "chef@example.com",
		DisplayName: "Chef",
		PhotoURL:    "https://example.com/avatar.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "chef@example.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Nil(t, profile.Location)
}

func TestUpsertProfileMergesIdentityOnly(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	created, err := svc.UpsertProfile(ctx, "uid-1", &types.UpsertProfileRequest{
		Email:       "old@example.com",
		DisplayName: "Old Name",
	})
	require.NoError(t, err)

	_, err = svc.UpdateLocation(ctx, "uid-1", &types.Location{Latitude: 12.97, Longitude: 77.59})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.UpsertProfile(ctx, "uid-1", &types.UpsertProfileRequest{
		Email:       "new@example.com",
		DisplayName: "New Name",
		PhotoURL:    "https://example.com/new.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "New Name", updated.DisplayName)

	// A later sign-in never rewrites history or the saved location.
	reloaded, err := svc.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt.Unix(), reloaded.CreatedAt.Unix())
	require.NotNil(t, reloaded.Location)
	assert.InDelta(t, 12.97, reloaded.Location.Latitude, 1e-9)
	assert.InDelta(t, 77.59, reloaded.Location.Longitude, 1e-9)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newProfileService(t)

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateLocationRequiresProfile(t *testing.T) {
	svc := newProfileService(t)

	_, err := svc.UpdateLocation(context.Background(), "missing", &types.Location{Latitude: 1, Longitude: 2})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfilesAreIsolatedByUID(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, "uid-1", &types.UpsertProfileRequest{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.UpsertProfile(ctx, "uid-2", &types.UpsertProfileRequest{Email: "b@example.com"})
	require.NoError(t, err)

	p1, err := svc.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	p2, err := svc.GetProfile(ctx, "uid-2")
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", p1.Email)
	assert.Equal(t, "b@example.com", p2.Email)
}
