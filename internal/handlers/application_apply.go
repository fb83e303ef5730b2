package handlers

//go:generate mockgen -source=application_apply.go -destination=application_apply_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// Applier submits applications.
type Applier interface {
	Apply(ctx context.Context, userID, opportunityID uuid.UUID) (*models.Application, error)
}

// ApplicationResponse wraps a single application
// swagger:model ApplicationResponse
type ApplicationResponse struct {
	// default: Application submitted successfully
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

// NewApplyHandler applies the caller to an active opportunity.
// @Summary Apply to opportunity
// @Description Student only. The opportunity must be ACTIVE; a second application is rejected.
// @Tags applications
// @Produce json
// @Param opportunityId path string true "Opportunity ID"
// @Success 201 {object} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse "Opportunity not found or not active"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires STUDENT role"
// @Failure 409 {object} handlers.ErrorResponse "You have already applied to this opportunity"
// @Router /applications/{opportunityId} [post]
// @Security BearerAuth
func NewApplyHandler(svc Applier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		oppID, ok := uuidParam(w, r, "opportunityId", "Invalid opportunity id")
		if !ok {
			return
		}

		app, err := svc.Apply(r.Context(), claims.UserID, oppID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOpportunityNotActive):
				writeError(w, http.StatusBadRequest, "Opportunity not found or not active")
			case errors.Is(err, services.ErrAlreadyApplied):
				writeError(w, http.StatusConflict, "You have already applied to this opportunity")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, ApplicationResponse{
			Message:     "Application submitted successfully",
			Application: app,
		})
	}
}
