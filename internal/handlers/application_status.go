package handlers

//go:generate mockgen -source=application_status.go -destination=application_status_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// ApplicationStatusUpdater changes application statuses.
type ApplicationStatusUpdater interface {
	UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// ApplicationStatusRequest is the JSON body for a status change
// swagger:model ApplicationStatusRequest
type ApplicationStatusRequest struct {
	// APPLIED, SHORTLISTED, REJECTED, SELECTED or WITHDRAWN
	// required: true
	// default: WITHDRAWN
	Status string `json:"status"`
}

// NewUpdateApplicationStatusHandler changes the status of the caller's application.
// @Summary Update application status
// @Description Only the owner of the application may change it.
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param request body handlers.ApplicationStatusRequest true "New status"
// @Success 200 {object} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse "Status is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Application not found"
// @Router /applications/{applicationId} [patch]
// @Security BearerAuth
func NewUpdateApplicationStatusHandler(svc ApplicationStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		appID, ok := uuidParam(w, r, "applicationId", "Invalid application id")
		if !ok {
			return
		}

		var req ApplicationStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if strings.TrimSpace(req.Status) == "" {
			writeError(w, http.StatusBadRequest, "Status is required")
			return
		}
		status, ok := models.ParseApplicationStatus(req.Status)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid status")
			return
		}

		app, err := svc.UpdateStatus(r.Context(), claims.UserID, appID, status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrApplicationNotFound):
				writeError(w, http.StatusNotFound, "Application not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ApplicationResponse{
			Message:     "Status updated",
			Application: app,
		})
	}
}
