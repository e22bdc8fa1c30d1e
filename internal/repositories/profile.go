package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

const profileColumns = `profile_id, user_id, phone, bio, highest_degree, branch, college, state,
	cgpa, tenth_percentage, twelfth_percentage, skills, soft_skills, certifications,
	github, linkedin, recruitment_status, updated_at`

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile owned by the given user, or nil if absent.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	const query = `
		SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE user_id = $1
		LIMIT 1
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Create inserts an empty profile for the user and returns it.
// Returns ErrAlreadyExists when the user already has a profile.
func (r *ProfileWriteRepository) Create(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	const query = `
		INSERT INTO user_profiles (user_id, recruitment_status, updated_at)
		VALUES ($1, 'PENDING', NOW())
		RETURNING ` + profileColumns + `
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &profile, nil
}

// Update applies the non-nil fields of upd to the user's profile and
// returns the updated row, or nil if the profile is absent.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.UserProfileDB, error) {
	const query = `
		UPDATE user_profiles
		SET phone              = COALESCE($2, phone),
		    bio                = COALESCE($3, bio),
		    highest_degree     = COALESCE($4, highest_degree),
		    branch             = COALESCE($5, branch),
		    college            = COALESCE($6, college),
		    state              = COALESCE($7, state),
		    cgpa               = COALESCE($8, cgpa),
		    tenth_percentage   = COALESCE($9, tenth_percentage),
		    twelfth_percentage = COALESCE($10, twelfth_percentage),
		    skills             = COALESCE($11, skills),
		    soft_skills        = COALESCE($12, soft_skills),
		    certifications     = COALESCE($13, certifications),
		    github             = COALESCE($14, github),
		    linkedin           = COALESCE($15, linkedin),
		    updated_at         = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns + `
	`
	args := []any{
		userID,
		upd.Phone, upd.Bio,
		upd.HighestDegree, upd.Branch, upd.College, upd.State,
		upd.CGPA, upd.TenthPercentage, upd.TwelfthPercentage,
		upd.Skills, upd.SoftSkills, upd.Certifications,
		upd.GitHub, upd.LinkedIn,
	}

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
