package services

import (
	"context"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

// StatsReader aggregates dashboard counters from the store.
type StatsReader interface {
	Get(ctx context.Context) (*models.AdminStats, error)
}

// StatsCache caches dashboard counters.
type StatsCache interface {
	Get(ctx context.Context) (*models.AdminStats, error)     // nil result means cache miss
	Set(ctx context.Context, stats *models.AdminStats) error // Caches stats with TTL
}

// UserLister lists all users for the admin panel.
type UserLister interface {
	ListAll(ctx context.Context) ([]models.AdminUserDB, error)
}

// UserActivator toggles a user's active flag.
type UserActivator interface {
	SetActive(ctx context.Context, id int64, active bool) (*models.UserDB, error)
}

// AdminService serves the admin dashboard: stats, user listing, activation.
type AdminService struct {
	stats     StatsReader
	cache     StatsCache
	users     UserLister
	activator UserActivator
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(stats StatsReader, cache StatsCache, users UserLister, activator UserActivator) *AdminService {
	return &AdminService{
		stats:     stats,
		cache:     cache,
		users:     users,
		activator: activator,
	}
}

// Stats returns the dashboard counters, served from cache when fresh.
// Cache failures degrade to the database; they never fail the request.
func (svc *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err != nil {
			logger.Log.Warnw("stats cache read failed, falling back to database", "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := svc.stats.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate stats", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, stats); err != nil {
			logger.Log.Warnw("stats cache write failed", "err", err)
		}
	}

	return stats, nil
}

// ListUsers returns every user with its application count.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.AdminUserDB, error) {
	users, err := svc.users.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// SetUserActive toggles a user's active flag.
func (svc *AdminService) SetUserActive(ctx context.Context, id int64, active bool) (*models.UserDB, error) {
	user, err := svc.activator.SetActive(ctx, id, active)
	if err != nil {
		logger.Log.Errorw("failed to set user active flag", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
