package handlers

//go:generate mockgen -source=opportunity_get.go -destination=opportunity_get_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// OpportunityGetter loads one opportunity.
type OpportunityGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error)
}

// NewGetOpportunityHandler returns one opportunity by id.
// @Summary Get opportunity
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} handlers.OpportunityResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid opportunity id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [get]
// @Security BearerAuth
func NewGetOpportunityHandler(svc OpportunityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		id, ok := uuidParam(w, r, "id", "Invalid opportunity id")
		if !ok {
			return
		}

		opp, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOpportunityNotFound):
				writeError(w, http.StatusNotFound, "Opportunity not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, OpportunityResponse{Opportunity: opp})
	}
}
