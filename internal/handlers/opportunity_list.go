package handlers

//go:generate mockgen -source=opportunity_list.go -destination=opportunity_list_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// OpportunityLister lists active opportunities.
type OpportunityLister interface {
	List(ctx context.Context, q models.ListingQuery) (*models.OpportunityPage, error)
}

// NewListOpportunitiesHandler lists active opportunities with filters and pagination.
// @Summary List active opportunities
// @Description Newest first, annotated with the caller's isBookmarked and isApplied. Cached for 60 seconds.
// @Tags opportunities
// @Produce json
// @Param search query string false "Case-insensitive substring of title or organization"
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 100" default(10)
// @Success 200 {object} models.OpportunityPage
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /opportunities [get]
// @Security BearerAuth
func NewListOpportunitiesHandler(svc OpportunityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		q, msg := parseListingQuery(r)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		q.UserID = claims.UserID

		page, err := svc.List(r.Context(), q)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// parseListingQuery normalizes the listing query parameters. Bad page or
// limit values fall back to the defaults, and both are capped; an unknown
// category is rejected.
func parseListingQuery(r *http.Request) (models.ListingQuery, string) {
	values := r.URL.Query()

	q := models.ListingQuery{
		Search:   strings.TrimSpace(values.Get("search")),
		Page:     min(positiveIntOr(values.Get("page"), models.DefaultPage), models.MaxPage),
		PageSize: min(positiveIntOr(values.Get("limit"), models.DefaultPageSize), models.MaxPageSize),
	}

	if raw := strings.TrimSpace(values.Get("category")); raw != "" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			return q, "Invalid category"
		}
		q.Category = category
	}

	return q, ""
}
