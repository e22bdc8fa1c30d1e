package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/middlewares"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

// MeGetter defines the interface for fetching the authenticated user.
type MeGetter interface {
	Me(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MeErrorResponse represents an error response for the /me/ endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the caller's user summary.
// @Summary Current user
// @Description Returns the authenticated caller's user summary.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserSummary "Caller's user summary"
// @Failure 401 {object} handlers.MeErrorResponse "Missing or invalid credential"
// @Router /me/ [get]
func NewMeHandler(svc MeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetAuthFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MeErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.Summary())
	}
}
