package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job-backend/internal/jwt"
	"github.com/edu2job/edu2job-backend/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(parser *MockTokenParser)
		expectedCode int
		expectClaims *jwt.Claims
	}{
		{
			name: "valid token",
			mockSetup: func(parser *MockTokenParser) {
				parser.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				parser.EXPECT().
					GetClaims(gomock.Any(), "token123").
					Return(&jwt.Claims{UserID: 5, Role: models.RoleUser}, nil)
			},
			expectedCode: http.StatusOK,
			expectClaims: &jwt.Claims{UserID: 5, Role: models.RoleUser},
		},
		{
			name: "missing header",
			mockSetup: func(parser *MockTokenParser) {
				parser.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(parser *MockTokenParser) {
				parser.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("bad", nil)
				parser.EXPECT().
					GetClaims(gomock.Any(), "bad").
					Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewMockTokenParser(ctrl)
			tt.mockSetup(parser)

			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = GetAuthFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(parser)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectClaims, gotClaims)
		})
	}
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	j := jwt.New("test-secret", time.Minute, time.Hour)

	pair, err := j.GeneratePair(context.Background(), 7, models.RoleUser)
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{
			name:         "access token passes",
			token:        pair.Access,
			expectedCode: http.StatusOK,
		},
		{
			name:         "refresh token is unauthorized",
			token:        pair.Refresh,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rr := httptest.NewRecorder()

			AuthMiddleware(j)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		claims       *jwt.Claims
		expectedCode int
	}{
		{
			name:         "admin passes",
			claims:       &jwt.Claims{UserID: 1, Role: models.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "non-admin forbidden",
			claims:       &jwt.Claims{UserID: 2, Role: models.RoleUser},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "unauthenticated",
			claims:       nil,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats/", nil)
			if tt.claims != nil {
				req = req.WithContext(SetAuthToContext(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			AdminMiddleware()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetAuthFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetAuthFromContext(req.Context()))
}
