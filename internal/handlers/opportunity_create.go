package handlers

//go:generate mockgen -source=opportunity_create.go -destination=opportunity_create_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// OpportunityCreator creates opportunities.
type OpportunityCreator interface {
	Create(ctx context.Context, adminID uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error)
}

// NewCreateOpportunityHandler creates an opportunity.
// @Summary Create opportunity
// @Description Admin only. Invalidates every cached listing page.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body handlers.OpportunityRequest true "Opportunity"
// @Success 201 {object} handlers.OpportunityResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires ADMIN role"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /opportunities [post]
// @Security BearerAuth
func NewCreateOpportunityHandler(svc OpportunityCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
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

		opp, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, OpportunityResponse{
			Message:     "Opportunity created successfully",
			Opportunity: opp,
		})
	}
}
