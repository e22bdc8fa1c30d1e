package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

// AdminApplicationLister defines the interface for the admin application list.
type AdminApplicationLister interface {
	AdminListAll(ctx context.Context) ([]models.JobApplicationAdminDB, error)
}

// StatsProvider defines the interface for the admin dashboard counters.
type StatsProvider interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// UserListProvider defines the interface for the admin user list.
type UserListProvider interface {
	ListUsers(ctx context.Context) ([]models.AdminUserDB, error)
}

// UserStatusUpdater defines the interface for toggling a user's active flag.
type UserStatusUpdater interface {
	SetUserActive(ctx context.Context, id int64, active bool) (*models.UserDB, error)
}

// UserStatusRequest represents the JSON body for a user activation toggle
// swagger:model UserStatusRequest
type UserStatusRequest struct {
	// New active flag
	// required: true
	IsActive bool `json:"is_active"`
}

// AdminErrorResponse represents an error response for admin endpoints
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewAdminListApplicationsHandler returns an HTTP handler for the full
// application list across all users.
// @Summary List all applications
// @Description Returns every job application with its owner's identity. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobApplicationAdminDB "All applications"
// @Failure 403 {object} handlers.AdminErrorResponse "Caller is not an admin"
// @Router /admin/job-applications/ [get]
func NewAdminListApplicationsHandler(svc AdminApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps, err := svc.AdminListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}
		if apps == nil {
			apps = []models.JobApplicationAdminDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}

// NewAdminStatsHandler returns an HTTP handler for the dashboard counters.
// @Summary Admin dashboard stats
// @Description Returns user, application, and recruitment counters. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdminStats "Dashboard counters"
// @Failure 403 {object} handlers.AdminErrorResponse "Caller is not an admin"
// @Router /admin/stats/ [get]
func NewAdminStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}

// NewAdminListUsersHandler returns an HTTP handler for the admin user list.
// @Summary List all users
// @Description Returns every user with its application count. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AdminUserDB "All users"
// @Failure 403 {object} handlers.AdminErrorResponse "Caller is not an admin"
// @Router /admin/users/ [get]
func NewAdminListUsersHandler(svc UserListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}
		if users == nil {
			users = []models.AdminUserDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewUpdateUserStatusHandler returns an HTTP handler for toggling a user's
// active flag.
// @Summary Toggle a user's active flag
// @Description Activates or deactivates a user account. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param userStatus body handlers.UserStatusRequest true "New active flag"
// @Success 200 {object} models.UserSummary "Updated user"
// @Failure 403 {object} handlers.AdminErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/user/{id}/status/ [patch]
func NewUpdateUserStatusHandler(svc UserStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
			return
		}

		var req UserStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.SetUserActive(r.Context(), id, req.IsActive)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.Summary())
	}
}
