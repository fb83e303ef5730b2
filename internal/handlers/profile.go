package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// ProfileGetter loads the public record of a user.
type ProfileGetter interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ProfileResponse represents the authenticated user's profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// default: Protected route accessed successfully
	Message string `json:"message"`

	User *models.User `json:"user"`
}

// NewProfileHandler returns the authenticated user's profile.
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse "Authorization token missing or invalid"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /protected/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			Message: "Protected route accessed successfully",
			User:    user,
		})
	}
}
