package handlers

//go:generate mockgen -source=bookmark_list.go -destination=bookmark_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// BookmarkLister lists the caller's bookmarks.
type BookmarkLister interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedOpportunity, error)
}

// BookmarksResponse lists bookmarked opportunities
// swagger:model BookmarksResponse
type BookmarksResponse struct {
	Count     int                            `json:"count"`
	Bookmarks []models.BookmarkedOpportunity `json:"bookmarks"`
}

// NewListBookmarksHandler lists the caller's bookmarks, most recent first.
// @Summary My bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {object} handlers.BookmarksResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: requires STUDENT role"
// @Router /bookmarks [get]
// @Security BearerAuth
func NewListBookmarksHandler(svc BookmarkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		bookmarks, err := svc.ListMine(r.Context(), claims.UserID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, BookmarksResponse{
			Count:     len(bookmarks),
			Bookmarks: bookmarks,
		})
	}
}
