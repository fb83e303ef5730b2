package services

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
)

// Key sentinels for absent filters
const (
	searchNone  = "*"
	categoryAll = "all"
)

// ListingCache stores serialized listing pages under generation-versioned keys.
type ListingCache interface {
	GetGeneration(ctx context.Context, userID uuid.UUID) (models.CacheGeneration, error)
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	BumpGlobalGeneration(ctx context.Context) error
}

// UserListingInvalidator orphans the cached listing pages of one requester.
type UserListingInvalidator interface {
	BumpUserGeneration(ctx context.Context, userID uuid.UUID) error
}

// ListingCacheKey derives the cache key of one listing read. Distinct
// queries always yield distinct keys: the search term is query-escaped so
// it can never contain ':' or the '*' sentinel.
func ListingCacheKey(gen models.CacheGeneration, q models.ListingQuery) string {
	search := searchNone
	if q.Search != "" {
		search = url.QueryEscape(q.Search)
	}
	category := categoryAll
	if q.Category != "" {
		category = string(q.Category)
	}

	return fmt.Sprintf("%sgen:%d:%d:user:%s:search:%s:category:%s:page:%d:limit:%d",
		repositories.ListingKeyPrefix, gen.Global, gen.User, q.UserID, search, category, q.Page, q.PageSize)
}

// invalidateUserListings bumps the requester's generation after a change to
// their own applications or bookmarks. Failures only cost staleness bounded
// by the entry TTL, so they are logged and counted, not returned.
func invalidateUserListings(ctx context.Context, inv UserListingInvalidator, m *metrics.ListingCacheMetrics, userID uuid.UUID) {
	if err := inv.BumpUserGeneration(context.WithoutCancel(ctx), userID); err != nil {
		logger.Log.Errorw("failed to invalidate user listing cache", "userID", userID, "error", err)
		m.IncInvalidationFailure()
		return
	}
	m.IncInvalidation()
}
