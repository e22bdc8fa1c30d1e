package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/edu2job/edu2job-backend/internal/google"
	"github.com/edu2job/edu2job-backend/internal/jwt"
	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRequired     = errors.New("email is required")
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrInvalidRole       = errors.New("role must be USER or ADMIN")
)

// minPasswordLength is the registration password policy.
const minPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, role string, passwordHash *string) (*models.UserDB, error)
}

// IdentityVerifier verifies an externally issued identity token.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*google.Claims, error)
}

// TokenPairGenerator mints access/refresh credential pairs.
type TokenPairGenerator interface {
	GeneratePair(ctx context.Context, userID int64, role string) (*jwt.Pair, error)
}

// GoogleLoginResult is the outcome of a successful Google login.
type GoogleLoginResult struct {
	Access    string
	Refresh   string
	User      models.UserSummary
	IsNewUser bool
}

// AuthService handles registration, Google login, and identity lookup.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	verifier IdentityVerifier
	jwt      TokenPairGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, verifier IdentityVerifier, jwt TokenPairGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		verifier: verifier,
		jwt:      jwt,
	}
}

// Register creates a user with a hashed password credential.
// Unlike the Google flow, an unknown role is rejected, not coerced.
func (svc *AuthService) Register(ctx context.Context, email, username, password, role string) (*models.UserDB, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if role == "" {
		role = models.RoleUser
	} else if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	hash := string(hashed)
	user, err := svc.writer.Save(ctx, email, username, role, &hash)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// GoogleLogin verifies a Google ID token, resolves the user by email
// (creating one on first login), and issues a credential pair.
// An unknown requested role is silently coerced to USER; an existing
// user's stored role is never changed by a repeat login.
func (svc *AuthService) GoogleLogin(ctx context.Context, token, role string) (*GoogleLoginResult, error) {
	if !models.ValidRole(role) {
		role = models.RoleUser
	}

	claims, err := svc.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	username := deriveUsername(claims.Email, claims.Name)

	user, created, err := svc.getOrCreate(ctx, claims.Email, username, role)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "email", claims.Email, "err", err)
		return nil, err
	}

	pair, err := svc.jwt.GeneratePair(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "user_id", user.ID, "err", err)
		return nil, err
	}

	return &GoogleLoginResult{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		User:      user.Summary(),
		IsNewUser: created,
	}, nil
}

// getOrCreate looks the user up by email and creates one if absent.
// A concurrent insert for the same email is serialized by the unique
// constraint: on ErrAlreadyExists the lookup is retried and the winner's
// row is returned with created=false.
func (svc *AuthService) getOrCreate(ctx context.Context, email, username, role string) (*models.UserDB, bool, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	user, err = svc.writer.Save(ctx, email, username, role, nil)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			user, lookupErr := svc.reader.GetByEmail(ctx, email)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if user == nil {
				// The conflicting row vanished between the insert and
				// the retry lookup, likely a concurrent delete.
				return nil, false, errors.New("user lookup failed after insert conflict")
			}
			return user, false, nil
		}
		return nil, false, err
	}

	return user, true, nil
}

// Me returns the user identified by the access credential's id claim.
func (svc *AuthService) Me(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// deriveUsername builds a default username from verified claims: the
// local part of the email, or the display name lower-cased with spaces
// removed when the email is absent.
func deriveUsername(email, name string) string {
	if email != "" {
		return strings.SplitN(email, "@", 2)[0]
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
