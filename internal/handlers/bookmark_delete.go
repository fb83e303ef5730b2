package handlers

//go:generate mockgen -source=bookmark_delete.go -destination=bookmark_delete_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// BookmarkRemover removes bookmarks.
type BookmarkRemover interface {
	Remove(ctx context.Context, userID, opportunityID uuid.UUID) error
}

// NewRemoveBookmarkHandler removes the caller's bookmark. Removing a missing bookmark succeeds.
// @Summary Remove bookmark
// @Tags bookmarks
// @Produce json
// @Param opportunityId path string true "Opportunity ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid opportunity id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires STUDENT role"
// @Router /bookmarks/{opportunityId} [delete]
// @Security BearerAuth
func NewRemoveBookmarkHandler(svc BookmarkRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		oppID, ok := uuidParam(w, r, "opportunityId", "Invalid opportunity id")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, oppID); err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Bookmark removed"})
	}
}
