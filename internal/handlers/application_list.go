package handlers

//go:generate mockgen -source=application_list.go -destination=application_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// ApplicationLister lists the caller's applications.
type ApplicationLister interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.ApplicationSummary, error)
}

// ApplicationsResponse lists applications
// swagger:model ApplicationsResponse
type ApplicationsResponse struct {
	Applications []models.ApplicationSummary `json:"applications"`
}

// NewListApplicationsHandler lists the caller's applications, most recent first.
// @Summary My applications
// @Tags applications
// @Produce json
// @Success 200 {object} handlers.ApplicationsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires STUDENT role"
// @Router /applications [get]
// @Security BearerAuth
func NewListApplicationsHandler(svc ApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		apps, err := svc.ListMine(r.Context(), claims.UserID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ApplicationsResponse{Applications: apps})
	}
}
