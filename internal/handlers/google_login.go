package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edu2job/edu2job-backend/internal/google"
	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
	"github.com/edu2job/edu2job-backend/internal/services"
)

// GoogleLoginer defines the interface that the Google login service must implement.
type GoogleLoginer interface {
	GoogleLogin(ctx context.Context, token, role string) (*services.GoogleLoginResult, error)
}

// GoogleLoginRequest represents the JSON body for Google login
// swagger:model GoogleLoginRequest
type GoogleLoginRequest struct {
	// Google ID token issued to the frontend
	// required: true
	Token string `json:"token"`

	// Requested role for a newly created account; unknown values fall back to USER
	// required: false
	// default: USER
	Role string `json:"role"`
}

// GoogleLoginResponse represents a successful Google login response
// swagger:model GoogleLoginResponse
type GoogleLoginResponse struct {
	Access    string             `json:"access"`
	Refresh   string             `json:"refresh"`
	User      models.UserSummary `json:"user"`
	IsNewUser bool               `json:"is_new_user"`
}

// GoogleLoginErrorResponse represents an error response for Google login
// swagger:model GoogleLoginErrorResponse
type GoogleLoginErrorResponse struct {
	// Error message
	// default: Invalid Google token
	Detail string `json:"detail"`
}

// NewGoogleLoginHandler returns an HTTP handler for the Google login flow.
// @Summary Login with a Google ID token
// @Description Verifies the token with Google, creates the user on first login, and returns a JWT pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param googleLoginRequest body handlers.GoogleLoginRequest true "Google login request"
// @Success 200 {object} handlers.GoogleLoginResponse "JWT pair and user summary"
// @Failure 400 {object} handlers.GoogleLoginErrorResponse "Missing or invalid token, or no email in claims"
// @Router /google-login/ [post]
func NewGoogleLoginHandler(svc GoogleLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
				Detail: "invalid request body",
			})
			return
		}

		if req.Token == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
				Detail: "Token missing",
			})
			return
		}

		result, err := svc.GoogleLogin(r.Context(), req.Token, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, google.ErrInvalidToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
					Detail: "Invalid Google token",
				})
			case errors.Is(err, google.ErrEmailNotProvided):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
					Detail: "Email not provided by Google",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
					Detail: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GoogleLoginResponse{
			Access:    result.Access,
			Refresh:   result.Refresh,
			User:      result.User,
			IsNewUser: result.IsNewUser,
		})
	}
}
