package handlers

//go:generate mockgen -source=bookmark_create.go -destination=bookmark_create_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// Bookmarker saves bookmarks.
type Bookmarker interface {
	Bookmark(ctx context.Context, userID, opportunityID uuid.UUID) (*models.Bookmark, error)
}

// BookmarkResponse wraps a single bookmark
// swagger:model BookmarkResponse
type BookmarkResponse struct {
	// default: Opportunity bookmarked
	Message  string           `json:"message"`
	Bookmark *models.Bookmark `json:"bookmark"`
}

// NewBookmarkHandler bookmarks an opportunity for the caller.
// @Summary Bookmark opportunity
// @Tags bookmarks
// @Produce json
// @Param opportunityId path string true "Opportunity ID"
// @Success 201 {object} handlers.BookmarkResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid opportunity id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires STUDENT role"
// @Failure 404 {object} handlers.ErrorResponse "Opportunity not found"
// @Failure 409 {object} handlers.ErrorResponse "Opportunity already bookmarked"
// @Router /bookmarks/{opportunityId} [post]
// @Security BearerAuth
func NewBookmarkHandler(svc Bookmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		oppID, ok := uuidParam(w, r, "opportunityId", "Invalid opportunity id")
		if !ok {
			return
		}

		bookmark, err := svc.Bookmark(r.Context(), claims.UserID, oppID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyBookmarked):
				writeError(w, http.StatusConflict, "Opportunity already bookmarked")
			case errors.Is(err, services.ErrOpportunityNotFound):
				writeError(w, http.StatusNotFound, "Opportunity not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, BookmarkResponse{
			Message:  "Opportunity bookmarked",
			Bookmark: bookmark,
		})
	}
}
