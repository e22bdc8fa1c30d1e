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

const applicationColumns = `id, user_id, job_title, company, location, job_link, match_score,
	status, applied_at, updated_at`

type ApplicationReadRepository struct {
	db *sqlx.DB
}

func NewApplicationReadRepository(db *sqlx.DB) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db}
}

// ListByUserID returns the user's applications, newest first.
func (r *ApplicationReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.JobApplicationDB, error) {
	const query = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`

	var apps []models.JobApplicationDB
	err := r.db.SelectContext(ctx, &apps, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(apps),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// ListAll returns every application joined with its owner, newest first.
func (r *ApplicationReadRepository) ListAll(ctx context.Context) ([]models.JobApplicationAdminDB, error) {
	const query = `
		SELECT a.id, a.user_id, a.job_title, a.company, a.location, a.job_link, a.match_score,
		       a.status, a.applied_at, a.updated_at,
		       u.username, u.email AS user_email
		FROM job_applications a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.applied_at DESC
	`

	var apps []models.JobApplicationAdminDB
	err := r.db.SelectContext(ctx, &apps, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(apps),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// GetByID returns the application with the given id, or nil if absent.
func (r *ApplicationReadRepository) GetByID(ctx context.Context, id int64) (*models.JobApplicationDB, error) {
	const query = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE id = $1
		LIMIT 1
	`

	var app models.JobApplicationDB
	err := r.db.GetContext(ctx, &app, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &app, nil
}

type ApplicationWriteRepository struct {
	db *sqlx.DB
}

func NewApplicationWriteRepository(db *sqlx.DB) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db}
}

// Save inserts a new pending application owned by userID and returns it.
func (r *ApplicationWriteRepository) Save(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.JobApplicationDB, error) {
	const query = `
		INSERT INTO job_applications (user_id, job_title, company, location, job_link, match_score,
		                              status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
		RETURNING ` + applicationColumns + `
	`
	args := []any{userID, fields.JobTitle, fields.Company, fields.Location, fields.JobLink, fields.MatchScore}

	var app models.JobApplicationDB
	err := r.db.GetContext(ctx, &app, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, fields.JobTitle, fields.Company},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &app, nil
}

// UpdateStatus sets the application's status and returns the updated row,
// or nil if no application has that id.
func (r *ApplicationWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.JobApplicationDB, error) {
	const query = `
		UPDATE job_applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + applicationColumns + `
	`

	var app models.JobApplicationDB
	err := r.db.GetContext(ctx, &app, query, id, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, status},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &app, nil
}
