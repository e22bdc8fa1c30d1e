package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types embedded in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims holds the identity claims carried by an issued token.
type Claims struct {
	UserID int64
	Role   string
}

// Pair is an access/refresh credential pair bound to one user.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// JWT issues and validates HS256 token pairs.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token expiration
	RefreshExp time.Duration // Refresh token expiration
}

// New creates a new JWT instance.
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// GeneratePair mints a fresh access/refresh pair carrying the user's id and role.
func (j *JWT) GeneratePair(ctx context.Context, userID int64, role string) (*Pair, error) {
	access, err := j.generate(userID, role, TokenTypeAccess, j.AccessExp)
	if err != nil {
		return nil, err
	}
	refresh, err := j.generate(userID, role, TokenTypeRefresh, j.RefreshExp)
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

func (j *JWT) generate(userID int64, role, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"token_type": tokenType,
		"exp":        now.Add(exp).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns the identity claims if valid.
// Only access-type tokens are accepted: a refresh token presented as a
// bearer credential is rejected regardless of its remaining TTL.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	tokenType, ok := mapClaims["token_type"].(string)
	if !ok || tokenType != TokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, errors.New("user_id not found in token")
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("role not found in token")
	}

	return &Claims{UserID: int64(userID), Role: role}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
