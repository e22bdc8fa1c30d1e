package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

func TestAdminListApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockAdminApplicationLister)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockAdminApplicationLister) {
				m.EXPECT().
					AdminListAll(gomock.Any()).
					Return([]models.JobApplicationAdminDB{
						{
							JobApplicationDB: models.JobApplicationDB{
								ID:       1,
								UserID:   2,
								JobTitle: "Backend Engineer",
								Status:   models.ApplicationPending,
							},
							Username:  "john",
							UserEmail: "john@example.com",
						},
					}, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				var apps []models.JobApplicationAdminDB
				assert.NoError(t, json.Unmarshal(body, &apps))
				assert.Len(t, apps, 1)
				assert.Equal(t, "john", apps[0].Username)
				assert.Equal(t, "john@example.com", apps[0].UserEmail)
			},
		},
		{
			name: "empty list is not null",
			mockSetup: func(m *MockAdminApplicationLister) {
				m.EXPECT().
					AdminListAll(gomock.Any()).
					Return(nil, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[]`, string(body))
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockAdminApplicationLister) {
				m.EXPECT().
					AdminListAll(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Internal server error"}, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminApplicationLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewAdminListApplicationsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/job-applications/", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.checkBody(t, rr.Body.Bytes())
		})
	}
}

func TestAdminStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockStatsProvider)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockStatsProvider) {
				m.EXPECT().
					Stats(gomock.Any()).
					Return(&models.AdminStats{
						TotalUsers:        10,
						ActiveUsers:       8,
						TotalApplications: 25,
						ApplicationsByStatus: map[string]int64{
							models.ApplicationPending: 20,
							models.ApplicationHired:   5,
						},
						ProfilesByStatus: map[string]int64{
							models.RecruitmentPending: 10,
						},
					}, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				var stats models.AdminStats
				assert.NoError(t, json.Unmarshal(body, &stats))
				assert.Equal(t, int64(10), stats.TotalUsers)
				assert.Equal(t, int64(8), stats.ActiveUsers)
				assert.Equal(t, int64(25), stats.TotalApplications)
				assert.Equal(t, int64(5), stats.ApplicationsByStatus[models.ApplicationHired])
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockStatsProvider) {
				m.EXPECT().
					Stats(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Internal server error"}, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStatsProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewAdminStatsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/stats/", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.checkBody(t, rr.Body.Bytes())
		})
	}
}

func TestAdminListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserListProvider)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserListProvider) {
				m.EXPECT().
					ListUsers(gomock.Any()).
					Return([]models.AdminUserDB{
						{ID: 1, Email: "john@example.com", Username: "john", Role: "USER", IsActive: true, ApplicationCount: 3},
						{ID: 2, Email: "admin@example.com", Username: "admin", Role: "ADMIN", IsActive: true, ApplicationCount: 0},
					}, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				var users []models.AdminUserDB
				assert.NoError(t, json.Unmarshal(body, &users))
				assert.Len(t, users, 2)
				assert.Equal(t, int64(3), users[0].ApplicationCount)
				assert.Equal(t, "ADMIN", users[1].Role)
			},
		},
		{
			name: "empty list is not null",
			mockSetup: func(m *MockUserListProvider) {
				m.EXPECT().
					ListUsers(gomock.Any()).
					Return(nil, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[]`, string(body))
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserListProvider) {
				m.EXPECT().
					ListUsers(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Internal server error"}, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserListProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewAdminListUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/users/", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.checkBody(t, rr.Body.Bytes())
		})
	}
}

func TestUpdateUserStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		reqBody      string
		mockSetup    func(m *MockUserStatusUpdater)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:    "deactivate user",
			id:      "3",
			reqBody: `{"is_active": false}`,
			mockSetup: func(m *MockUserStatusUpdater) {
				m.EXPECT().
					SetUserActive(gomock.Any(), int64(3), false).
					Return(&models.UserDB{
						ID:       3,
						Email:    "john@example.com",
						Username: "john",
						Role:     "USER",
						IsActive: false,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"id":       float64(3),
				"email":    "john@example.com",
				"username": "john",
				"role":     "USER",
			},
		},
		{
			name:         "non-integer id",
			id:           "abc",
			reqBody:      `{"is_active": true}`,
			expectedCode: 404,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:    "user not found",
			id:      "99",
			reqBody: `{"is_active": true}`,
			mockSetup: func(m *MockUserStatusUpdater) {
				m.EXPECT().
					SetUserActive(gomock.Any(), int64(99), true).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:         "invalid json",
			id:           "3",
			reqBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name:    "internal server error",
			id:      "3",
			reqBody: `{"is_active": true}`,
			mockSetup: func(m *MockUserStatusUpdater) {
				m.EXPECT().
					SetUserActive(gomock.Any(), int64(3), true).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserStatusUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateUserStatusHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPatch, "/admin/user/"+tt.id+"/status/", bytes.NewBufferString(tt.reqBody))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
