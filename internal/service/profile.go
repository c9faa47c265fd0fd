package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moramnavadeep/FreshNCook/internal/models"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages user profile records.
type ProfileService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB, logger *zap.Logger) *ProfileService {
	return &ProfileService{db: db, logger: logger.Named("profile")}
}

var _ IProfileService = (*ProfileService)(nil)

// GetProfile loads the profile for uid.
func (s *ProfileService) GetProfile(ctx context.Context, uid string) (*types.ProfileResponse, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return toProfileResponse(&profile), nil
}

// UpsertProfile creates the profile on first sign-in and refreshes only
// the identity fields on subsequent ones. CreatedAt and the saved
// location are never touched by an upsert; location changes go through
// their own update path.
func (s *ProfileService) UpsertProfile(ctx context.Context, uid string, req *types.UpsertProfileRequest) (*types.ProfileResponse, error) {
	if err := schema.Validate(req); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, "uid = ?", uid).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.UserProfile{
			UID:         uid,
			Email:       req.Email,
			DisplayName: req.DisplayName,
			PhotoURL:    req.PhotoURL,
			CreatedAt:   time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		s.logger.Info("created profile", zap.String("uid", uid))
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	default:
		updates := map[string]interface{}{
			"email":        req.Email,
			"display_name": req.DisplayName,
			"photo_url":    req.PhotoURL,
		}
		if err := s.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return toProfileResponse(&profile), nil
}

// UpdateLocation stores the user's saved location.
func (s *ProfileService) UpdateLocation(ctx context.Context, uid string, loc *types.Location) (*types.ProfileResponse, error) {
	if err := schema.Validate(loc); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	updates := map[string]interface{}{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
	}
	if err := s.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return toProfileResponse(&profile), nil
}

func toProfileResponse(p *models.UserProfile) *types.ProfileResponse {
	resp := &types.ProfileResponse{
		UID:         p.UID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
	}
	if p.Latitude != nil && p.Longitude != nil {
		resp.Location = &types.Location{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		}
	}
	return resp
}
