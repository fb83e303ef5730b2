package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkService_Bookmark(t *testing.T) {
	userID, oppID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "bookmarked"},
		{name: "duplicate", repoErr: repositories.ErrAlreadyExists, wantErr: ErrAlreadyBookmarked},
		{name: "unknown opportunity", repoErr: repositories.ErrReferenceNotFound, wantErr: ErrOpportunityNotFound},
		{name: "store error", repoErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := NewMockBookmarkWriter(ctrl)
			cache := NewMockUserListingInvalidator(ctrl)
			cm := &metrics.ListingCacheMetrics{}

			svc := NewBookmarkService(NewMockBookmarkReader(ctrl), writer, cache, cm)

			var bookmark *models.Bookmark
			if tt.repoErr == nil {
				bookmark = &models.Bookmark{ID: uuid.New(), UserID: userID, OpportunityID: oppID}
				cache.EXPECT().BumpUserGeneration(gomock.Any(), userID).Return(nil)
			}
			writer.EXPECT().Create(gomock.Any(), gomock.Any(), userID, oppID).Return(bookmark, tt.repoErr)

			got, err := svc.Bookmark(context.Background(), userID, oppID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookmark, got)
			assert.Equal(t, uint64(1), cm.Invalidations.Load())
		})
	}
}

func TestBookmarkService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockBookmarkWriter(ctrl)
	cache := NewMockUserListingInvalidator(ctrl)
	svc := NewBookmarkService(NewMockBookmarkReader(ctrl), writer, cache, nil)

	userID, oppID := uuid.New(), uuid.New()

	writer.EXPECT().Delete(gomock.Any(), userID, oppID).Return(nil)
	cache.EXPECT().BumpUserGeneration(gomock.Any(), userID).Return(nil)
	assert.NoError(t, svc.Remove(context.Background(), userID, oppID))

	writer.EXPECT().Delete(gomock.Any(), userID, oppID).Return(errors.New("db down"))
	assert.Error(t, svc.Remove(context.Background(), userID, oppID))
}

func TestBookmarkService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockBookmarkReader(ctrl)
	svc := NewBookmarkService(reader, NewMockBookmarkWriter(ctrl), NewMockUserListingInvalidator(ctrl), nil)

	userID := uuid.New()
	rows := []models.BookmarkedOpportunity{{ID: uuid.New(), Title: "A", IsApplied: true}}

	reader.EXPECT().ListByUser(gomock.Any(), userID).Return(rows, nil)

	items, err := svc.ListMine(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, rows, items)
}
