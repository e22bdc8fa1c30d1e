package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Email:    "john@example.com",
				Username: "john",
				Password: "secret123",
				Role:     "USER",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john", "secret123", "USER").
					Return(&models.UserDB{
						ID:       1,
						Email:    "john@example.com",
						Username: "john",
						Role:     "USER",
						IsActive: true,
					}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"id":       float64(1),
				"email":    "john@example.com",
				"username": "john",
				"role":     "USER",
			},
		},
		{
			name: "email already registered",
			reqBody: RegisterRequest{
				Email:    "alice@example.com",
				Username: "alice",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "secret123", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "email already registered"},
		},
		{
			name: "blank email",
			reqBody: RegisterRequest{
				Username: "noemail",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "noemail", "secret123", "").
					Return(nil, services.ErrEmailRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "email is required"},
		},
		{
			name: "password too short",
			reqBody: RegisterRequest{
				Email:    "bob@example.com",
				Username: "bob",
				Password: "abc",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "bob", "abc", "").
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "password must be at least 6 characters"},
		},
		{
			name: "invalid role",
			reqBody: RegisterRequest{
				Email:    "eve@example.com",
				Username: "eve",
				Password: "secret123",
				Role:     "SUPERUSER",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "eve@example.com", "eve", "secret123", "SUPERUSER").
					Return(nil, services.ErrInvalidRole)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "role must be USER or ADMIN"},
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Email:    "carol@example.com",
				Username: "carol",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol@example.com", "carol", "secret123", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register/", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/register/", bytes.NewBuffer(bodyBytes))
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
