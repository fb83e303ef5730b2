package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// BookmarkWriteRepository handles bookmark write operations
type BookmarkWriteRepository struct {
	db *sqlx.DB
}

func NewBookmarkWriteRepository(db *sqlx.DB) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db}
}

// Create inserts a bookmark. Returns ErrAlreadyExists for a duplicate and
// ErrReferenceNotFound if the opportunity does not exist.
func (r *BookmarkWriteRepository) Create(ctx context.Context, id, userID, opportunityID uuid.UUID) (*models.Bookmark, error) {
	const query = `
		INSERT INTO bookmarks (id, user_id, opportunity_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, opportunity_id, created_at
	`
	args := []any{id, userID, opportunityID}

	var bookmark models.Bookmark
	err := r.db.GetContext(ctx, &bookmark, query, args...)

	logQuery(query, args, bookmark.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &bookmark, nil
}

// Delete removes the user's bookmark on the opportunity, if any.
func (r *BookmarkWriteRepository) Delete(ctx context.Context, userID, opportunityID uuid.UUID) error {
	const query = `DELETE FROM bookmarks WHERE user_id = $1 AND opportunity_id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, opportunityID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, opportunityID}, rowsAffected, err)

	return err
}

// BookmarkReadRepository handles bookmark read operations
type BookmarkReadRepository struct {
	db *sqlx.DB
}

func NewBookmarkReadRepository(db *sqlx.DB) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db}
}

// ListByUser returns the user's bookmarked opportunities, most recently bookmarked first.
func (r *BookmarkReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedOpportunity, error) {
	const query = `
		SELECT o.id, o.title, o.description, o.organization, o.organization_logo,
		       o.category, o.type, o.deadline, o.apply_link, o.expires_at,
		       b.created_at AS bookmarked_at,
		       (a.id IS NOT NULL) AS is_applied
		FROM bookmarks b
		JOIN opportunities o ON o.id = b.opportunity_id
		LEFT JOIN applications a
		  ON a.opportunity_id = o.id AND a.user_id = $1
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
	`

	items := []models.BookmarkedOpportunity{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logQuery(query, []any{userID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}
