package models

import "github.com/google/uuid"

// Listing page size bounds
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage bounds the page number so that Offset cannot overflow on
	// 32-bit platforms. Any page past the data yields an empty list anyway.
	MaxPage = 10_000_000
)

// ListingQuery describes one filtered, paginated read of active opportunities.
// Search and Category are already normalized; empty means "no filter".
type ListingQuery struct {
	UserID   uuid.UUID
	Search   string
	Category Category
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the query's page.
func (q ListingQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// OpportunityListItem is an active opportunity annotated with the
// requester's bookmark and application state.
type OpportunityListItem struct {
	Opportunity
	IsBookmarked bool `json:"isBookmarked" db:"is_bookmarked"`
	IsApplied    bool `json:"isApplied" db:"is_applied"`
}

// OpportunityPage is one page of the active opportunity listing.
type OpportunityPage struct {
	Opportunities []OpportunityListItem `json:"opportunities"`
	TotalCount    int                   `json:"totalCount"`
	TotalPages    int                   `json:"totalPages"`
	CurrentPage   int                   `json:"currentPage"`
}

// CacheGeneration is the pair of counters that versions listing cache keys.
type CacheGeneration struct {
	Global int64 // bumped by any opportunity mutation
	User   int64 // bumped by the requester's own applies and bookmarks
}
