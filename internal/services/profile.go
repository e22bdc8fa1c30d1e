package services

import (
	"context"
	"errors"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/repositories"
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Create(ctx context.Context, userID int64) (*models.UserProfileDB, error)
	Update(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.UserProfileDB, error)
}

// ProfileService handles profile get-or-create and owner updates.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access. A concurrent create for the same user falls back to the lookup.
func (svc *ProfileService) GetOrCreate(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = svc.writer.Create(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return svc.reader.GetByUserID(ctx, userID)
		}
		logger.Log.Errorw("failed to create profile", "user_id", userID, "err", err)
		return nil, err
	}

	return profile, nil
}

// Update applies the owner-writable fields to the user's profile,
// creating it first if absent.
func (svc *ProfileService) Update(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.UserProfileDB, error) {
	if _, err := svc.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := svc.writer.Update(ctx, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		// The profile existed a moment ago; only a concurrent user
		// deletion can make the update miss.
		return nil, ErrUserNotFound
	}

	return profile, nil
}
