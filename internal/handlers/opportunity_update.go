package handlers

//go:generate mockgen -source=opportunity_update.go -destination=opportunity_update_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// OpportunityUpdater replaces opportunities.
type OpportunityUpdater interface {
	Update(ctx context.Context, adminID, id uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error)
}

// NewUpdateOpportunityHandler replaces every field of an opportunity.
// @Summary Replace opportunity
// @Description Admin only. Full overwrite: optional fields left out are cleared. Invalidates every cached listing page.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param request body handlers.OpportunityRequest true "Opportunity"
// @Success 200 {object} handlers.OpportunityResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires ADMIN role"
// @Failure 404 {object} handlers.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [put]
// @Security BearerAuth
func NewUpdateOpportunityHandler(svc OpportunityUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := uuidParam(w, r, "id", "Invalid opportunity id")
		if !ok {
			return
		}

		var req OpportunityRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		in, msg := req.toInput()
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		opp, err := svc.Update(r.Context(), claims.UserID, id, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOpportunityNotFound):
				writeError(w, http.StatusNotFound, "Opportunity not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, OpportunityResponse{
			Message:     "Opportunity updated",
			Opportunity: opp,
		})
	}
}
