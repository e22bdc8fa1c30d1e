package google

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/edu2job/edu2job-backend/internal/logger"
)

// Error variables
var (
	// ErrInvalidToken covers every verification failure: bad signature,
	// expired token, wrong audience, wrong issuer, provider unreachable.
	// Callers never learn which check failed.
	ErrInvalidToken = errors.New("invalid google token")
	// ErrEmailNotProvided is returned for an otherwise valid token whose
	// claims carry no email.
	ErrEmailNotProvided = errors.New("email not provided by google")
)

// Google issues tokens under exactly these two issuer strings.
var allowedIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// Claims holds the verified identity claims used by the login flow.
type Claims struct {
	Email string // always non-empty on success
	Name  string // display name, may be empty
}

// validateFunc matches idtoken's Validator.Validate signature; injected in tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier validates Google ID tokens against a configured OAuth client ID.
type Verifier struct {
	clientID string
	validate validateFunc
}

// NewVerifier creates a Verifier for the given Google OAuth client ID.
// The provider call uses an HTTP client with the given timeout.
func NewVerifier(ctx context.Context, clientID string, timeout time.Duration) (*Verifier, error) {
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, err
	}
	return &Verifier{
		clientID: clientID,
		validate: v.Validate,
	}, nil
}

// Verify validates the token's signature, expiry, audience, and issuer,
// and returns the verified claims.
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		logger.Log.Errorw("google token verification failed", "err", err)
		return nil, ErrInvalidToken
	}

	if _, ok := allowedIssuers[payload.Issuer]; !ok {
		logger.Log.Errorw("google token has unexpected issuer", "iss", payload.Issuer)
		return nil, ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrEmailNotProvided
	}
	name, _ := payload.Claims["name"].(string)

	return &Claims{Email: email, Name: name}, nil
}
