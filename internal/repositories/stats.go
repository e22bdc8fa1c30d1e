package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// Get aggregates the admin dashboard counters from the database.
func (r *StatsReadRepository) Get(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{
		ApplicationsByStatus: make(map[string]int64),
		ProfilesByStatus:     make(map[string]int64),
	}

	const userQuery = `
		SELECT COUNT(*)                                   AS total,
		       COUNT(*) FILTER (WHERE is_active)          AS active
		FROM users
	`
	var userCounts struct {
		Total  int64 `db:"total"`
		Active int64 `db:"active"`
	}
	if err := r.db.GetContext(ctx, &userCounts, userQuery); err != nil {
		logger.Log.Errorw("stats user count query failed", "error", err)
		return nil, err
	}
	stats.TotalUsers = userCounts.Total
	stats.ActiveUsers = userCounts.Active

	const appQuery = `
		SELECT status, COUNT(*) AS count
		FROM job_applications
		GROUP BY status
	`
	var appRows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &appRows, appQuery); err != nil {
		logger.Log.Errorw("stats application count query failed", "error", err)
		return nil, err
	}
	for _, row := range appRows {
		stats.ApplicationsByStatus[row.Status] = row.Count
		stats.TotalApplications += row.Count
	}

	const profileQuery = `
		SELECT recruitment_status, COUNT(*) AS count
		FROM user_profiles
		GROUP BY recruitment_status
	`
	var profileRows []struct {
		Status string `db:"recruitment_status"`
		Count  int64  `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &profileRows, profileQuery); err != nil {
		logger.Log.Errorw("stats profile count query failed", "error", err)
		return nil, err
	}
	for _, row := range profileRows {
		stats.ProfilesByStatus[row.Status] = row.Count
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(userQuery+appQuery+profileQuery), " "),
		"total_users", stats.TotalUsers,
		"total_applications", stats.TotalApplications,
	)

	return stats, nil
}

// statsCacheKey is the fixed redis key for the dashboard counters.
const statsCacheKey = "admin:stats"

// StatsCacheRepository caches admin dashboard counters in Redis.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached stats
}

// NewStatsCacheRepository creates a new repository instance with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches cached stats. Returns nil without error on a cache miss.
func (r *StatsCacheRepository) Get(ctx context.Context) (*models.AdminStats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("stats cache get failed", "key", statsCacheKey, "error", err)
		return nil, err
	}

	var stats models.AdminStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("stats cache unmarshal failed", "key", statsCacheKey, "error", err)
		return nil, err
	}

	return &stats, nil
}

// Set caches stats with the configured expiration.
func (r *StatsCacheRepository) Set(ctx context.Context, stats *models.AdminStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", statsCacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}
