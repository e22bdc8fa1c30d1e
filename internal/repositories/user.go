package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

// ErrAlreadyExists is returned by write repositories when an INSERT hits a
// unique constraint. Services use it to retry the lookup path on a
// concurrent get-or-create race.
var ErrAlreadyExists = errors.New("record already exists")

// isUniqueViolation reports whether err is a postgres unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, email, username, role, is_active, password_hash, created_at, updated_at`

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

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

	return &user, nil
}

// ListAll returns every user with its application count, newest first.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.AdminUserDB, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.role, u.is_active, u.created_at,
		       COUNT(a.id) AS application_count
		FROM users u
		LEFT JOIN job_applications a ON a.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`

	var users []models.AdminUserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new active user and returns the created row.
// passwordHash is nil for OAuth-only accounts. Returns ErrAlreadyExists
// when the email (or username) is already taken.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, role string, passwordHash *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, username, role, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, $4, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{email, username, role, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username, role},
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &user, nil
}

// SetActive updates a user's active flag and returns the updated row,
// or nil if no user has that id.
func (r *UserWriteRepository) SetActive(ctx context.Context, id int64, active bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id, active)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, active},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
