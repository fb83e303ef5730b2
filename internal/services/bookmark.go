package services

//go:generate mockgen -source=bookmark.go -destination=bookmark_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
)

var (
	// ErrAlreadyBookmarked is returned on a second bookmark of the same opportunity.
	ErrAlreadyBookmarked = errors.New("opportunity already bookmarked")
)

// BookmarkReader defines read operations for bookmarks.
type BookmarkReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedOpportunity, error)
}

// BookmarkWriter defines write operations for bookmarks.
type BookmarkWriter interface {
	Create(ctx context.Context, id, userID, opportunityID uuid.UUID) (*models.Bookmark, error)
	Delete(ctx context.Context, userID, opportunityID uuid.UUID) error
}

// BookmarkService handles student bookmarks.
type BookmarkService struct {
	reader  BookmarkReader
	writer  BookmarkWriter
	cache   UserListingInvalidator
	metrics *metrics.ListingCacheMetrics
}

// NewBookmarkService creates a new BookmarkService. m may be nil.
func NewBookmarkService(reader BookmarkReader, writer BookmarkWriter, cache UserListingInvalidator, m *metrics.ListingCacheMetrics) *BookmarkService {
	return &BookmarkService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		metrics: m,
	}
}

// Bookmark saves opportunityID for userID.
func (s *BookmarkService) Bookmark(ctx context.Context, userID, opportunityID uuid.UUID) (*models.Bookmark, error) {
	bookmark, err := s.writer.Create(ctx, uuid.New(), userID, opportunityID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyExists):
			return nil, ErrAlreadyBookmarked
		case errors.Is(err, repositories.ErrReferenceNotFound):
			return nil, ErrOpportunityNotFound
		}
		logger.Log.Errorw("failed to bookmark", "userID", userID, "opportunityID", opportunityID, "error", err)
		return nil, err
	}

	invalidateUserListings(ctx, s.cache, s.metrics, userID)

	return bookmark, nil
}

// Remove deletes the bookmark if present. Removing an absent bookmark succeeds.
func (s *BookmarkService) Remove(ctx context.Context, userID, opportunityID uuid.UUID) error {
	if err := s.writer.Delete(ctx, userID, opportunityID); err != nil {
		logger.Log.Errorw("failed to remove bookmark", "userID", userID, "opportunityID", opportunityID, "error", err)
		return err
	}

	invalidateUserListings(ctx, s.cache, s.metrics, userID)

	return nil
}

// ListMine returns the user's bookmarked opportunities, most recent first.
func (s *BookmarkService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedOpportunity, error) {
	items, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "userID", userID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.BookmarkedOpportunity{}
	}
	return items, nil
}
