package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/middlewares"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

// ApplicationLister defines the interface for listing the caller's applications.
type ApplicationLister interface {
	ListOwn(ctx context.Context, userID int64) ([]models.JobApplicationDB, error)
}

// ApplicationCreator defines the interface for creating applications.
type ApplicationCreator interface {
	Create(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.JobApplicationDB, error)
}

// ApplicationStatusUpdater defines the interface for admin status updates.
type ApplicationStatusUpdater interface {
	AdminUpdateStatus(ctx context.Context, id int64, status string) (*models.JobApplicationDB, error)
}

// StatusUpdateRequest represents the JSON body for a status update
// swagger:model StatusUpdateRequest
type StatusUpdateRequest struct {
	// New status: pending, shortlisted, rejected, or hired
	// required: true
	Status string `json:"status"`
}

// ApplicationErrorResponse represents an error response for application endpoints
// swagger:model ApplicationErrorResponse
type ApplicationErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListApplicationsHandler returns an HTTP handler for the caller's applications.
// @Summary List own applications
// @Description Returns the caller's job applications, newest first.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobApplicationDB "Caller's applications"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Missing or invalid credential"
// @Router /jobs/applied/ [get]
func NewListApplicationsHandler(svc ApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetAuthFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Unauthorized"})
			return
		}

		apps, err := svc.ListOwn(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			return
		}
		if apps == nil {
			apps = []models.JobApplicationDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}

// NewCreateApplicationHandler returns an HTTP handler for submitting an application.
// The owner is always the authenticated caller; any owner field in the
// payload is ignored.
// @Summary Submit a job application
// @Description Stores a new pending application owned by the caller.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application body models.ApplicationFields true "Application fields"
// @Success 201 {object} models.JobApplicationDB "Created application"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Missing or invalid credential"
// @Router /jobs/applied/ [post]
func NewCreateApplicationHandler(svc ApplicationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetAuthFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Unauthorized"})
			return
		}

		var fields models.ApplicationFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid request body"})
			return
		}

		app, err := svc.Create(r.Context(), claims.UserID, fields)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(app)
	}
}

// NewUpdateApplicationStatusHandler returns an HTTP handler for admin status
// updates. Mounted under both /jobs/applied/{id}/status/ and
// /admin/job-applications/{id}/status/.
// @Summary Update an application's status
// @Description Sets a job application's status. Admin only.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param statusUpdate body handlers.StatusUpdateRequest true "New status"
// @Success 200 {object} models.JobApplicationDB "Updated application"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Invalid status"
// @Failure 403 {object} handlers.ApplicationErrorResponse "Caller is not an admin"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Application not found"
// @Router /jobs/applied/{id}/status/ [patch]
func NewUpdateApplicationStatusHandler(svc ApplicationStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Application not found"})
			return
		}

		var req StatusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid request body"})
			return
		}

		app, err := svc.AdminUpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			switch err {
			case services.ErrInvalidStatus:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Invalid status"})
			case services.ErrApplicationNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Application not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(app)
	}
}
