package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/middlewares"
	"github.com/edu2job/edu2job-backend/internal/models"
)

// ProfileGetter defines the interface for profile get-or-create.
type ProfileGetter interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.UserProfileDB, error)
}

// ProfileUpdater defines the interface for owner profile updates.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.UserProfileDB, error)
}

// ProfileErrorResponse represents an error response for profile endpoints
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for the caller's profile.
// The profile is created empty on first access.
// @Summary Get own profile
// @Description Returns the caller's profile, creating an empty one on first access.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfileDB "Caller's profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Missing or invalid credential"
// @Router /profile/me/ [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetAuthFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		profile, err := svc.GetOrCreate(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for owner profile updates.
// Serves both PATCH and PUT; absent fields are left unchanged.
// @Summary Update own profile
// @Description Applies the supplied profile fields to the caller's profile.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileUpdate body models.ProfileUpdate true "Profile fields to update"
// @Success 200 {object} models.UserProfileDB "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ProfileErrorResponse "Missing or invalid credential"
// @Router /profile/me/ [patch]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetAuthFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		var upd models.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "invalid request body"})
			return
		}

		profile, err := svc.Update(r.Context(), claims.UserID, upd)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
