package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job-backend/internal/jwt"
	"github.com/edu2job/edu2job-backend/internal/middlewares"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		claims       *jwt.Claims
		mockSetup    func(m *MockMeGetter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success",
			claims: &jwt.Claims{UserID: 1, Role: "USER"},
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().
					Me(gomock.Any(), int64(1)).
					Return(&models.UserDB{
						ID:       1,
						Email:    "john@example.com",
						Username: "john",
						Role:     "USER",
						IsActive: true,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"id":       float64(1),
				"email":    "john@example.com",
				"username": "john",
				"role":     "USER",
			},
		},
		{
			name:         "no claims in context",
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
		{
			name:   "user not found",
			claims: &jwt.Claims{UserID: 42, Role: "USER"},
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().
					Me(gomock.Any(), int64(42)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:   "internal server error",
			claims: &jwt.Claims{UserID: 1, Role: "USER"},
			mockSetup: func(m *MockMeGetter) {
				m.EXPECT().
					Me(gomock.Any(), int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewMeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetAuthToContext(req.Context(), tt.claims))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
