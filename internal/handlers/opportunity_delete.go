package handlers

//go:generate mockgen -source=opportunity_delete.go -destination=opportunity_delete_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// OpportunityDeleter deletes opportunities.
type OpportunityDeleter interface {
	Delete(ctx context.Context, adminID, id uuid.UUID) error
}

// NewDeleteOpportunityHandler deletes an opportunity.
// @Summary Delete opportunity
// @Description Admin only. Applications and bookmarks of the opportunity are removed with it.
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid opportunity id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires ADMIN role"
// @Failure 404 {object} handlers.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [delete]
// @Security BearerAuth
func NewDeleteOpportunityHandler(svc OpportunityDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := uuidParam(w, r, "id", "Invalid opportunity id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrOpportunityNotFound):
				writeError(w, http.StatusNotFound, "Opportunity not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Opportunity deleted"})
	}
}
