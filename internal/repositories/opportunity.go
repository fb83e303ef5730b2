package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

const opportunityColumns = `o.id, o.title, o.description, o.category, o.status, o.deadline, o.organization,
	o.organization_logo, o.apply_link, o.type, o.eligibility, o.created_by, o.created_at, o.expires_at`

// OpportunityWriteRepository handles opportunity write operations
type OpportunityWriteRepository struct {
	db *sqlx.DB
}

func NewOpportunityWriteRepository(db *sqlx.DB) *OpportunityWriteRepository {
	return &OpportunityWriteRepository{db: db}
}

// Create inserts a new opportunity and returns the stored row.
func (r *OpportunityWriteRepository) Create(ctx context.Context, id, createdBy uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error) {
	query := `
		WITH o AS (
			INSERT INTO opportunities (
				id, title, description, category, status, deadline, organization,
				organization_logo, apply_link, type, eligibility, created_by, created_at, expires_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), $13)
			RETURNING *
		)
		SELECT ` + opportunityColumns + ` FROM o
	`
	args := []any{
		id, in.Title, in.Description, in.Category, in.Status, in.Deadline, in.Organization,
		in.OrganizationLogo, in.ApplyLink, in.Type, in.Eligibility, createdBy, in.ExpiresAt,
	}

	var opp models.Opportunity
	err := r.db.GetContext(ctx, &opp, query, args...)

	logQuery(query, args, opp.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &opp, nil
}

// Update overwrites every writable field; optional fields absent from in become NULL.
func (r *OpportunityWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error) {
	query := `
		WITH o AS (
			UPDATE opportunities
			SET title = $1,
			    description = $2,
			    category = $3,
			    status = $4,
			    deadline = $5,
			    organization = $6,
			    organization_logo = $7,
			    apply_link = $8,
			    type = $9,
			    eligibility = $10,
			    expires_at = $11
			WHERE id = $12
			RETURNING *
		)
		SELECT ` + opportunityColumns + ` FROM o
	`
	args := []any{
		in.Title, in.Description, in.Category, in.Status, in.Deadline, in.Organization,
		in.OrganizationLogo, in.ApplyLink, in.Type, in.Eligibility, in.ExpiresAt, id,
	}

	var opp models.Opportunity
	err := r.db.GetContext(ctx, &opp, query, args...)

	logQuery(query, args, opp.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &opp, nil
}

// Delete removes an opportunity. Returns ErrNotFound if nothing was deleted.
func (r *OpportunityWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM opportunities WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// OpportunityReadRepository handles opportunity read operations
type OpportunityReadRepository struct {
	db *sqlx.DB
}

func NewOpportunityReadRepository(db *sqlx.DB) *OpportunityReadRepository {
	return &OpportunityReadRepository{db: db}
}

// GetByID returns an opportunity regardless of status, or ErrNotFound.
func (r *OpportunityReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities o WHERE o.id = $1`

	var opp models.Opportunity
	err := r.db.GetContext(ctx, &opp, query, id)

	logQuery(query, []any{id}, opp.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &opp, nil
}

// CountActive counts active opportunities matching the query filters.
func (r *OpportunityReadRepository) CountActive(ctx context.Context, q models.ListingQuery) (int, error) {
	where, args := listingFilter(q, nil)
	query := `SELECT COUNT(*) FROM opportunities o WHERE ` + where

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)

	logQuery(query, args, count, err)

	return count, err
}

// ListActive returns one page of active opportunities matching the query
// filters, newest first, annotated with the requester's bookmark and
// application state.
func (r *OpportunityReadRepository) ListActive(ctx context.Context, q models.ListingQuery) ([]models.OpportunityListItem, error) {
	where, args := listingFilter(q, []any{q.UserID})
	args = append(args, q.PageSize, q.Offset())
	query := fmt.Sprintf(`
		SELECT %s,
		       (b.id IS NOT NULL) AS is_bookmarked,
		       (a.id IS NOT NULL) AS is_applied
		FROM opportunities o
		LEFT JOIN bookmarks b
		  ON b.opportunity_id = o.id AND b.user_id = $1
		LEFT JOIN applications a
		  ON a.opportunity_id = o.id AND a.user_id = $1
		WHERE %s
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $%d OFFSET $%d
	`, opportunityColumns, where, len(args)-1, len(args))

	items := []models.OpportunityListItem{}
	err := r.db.SelectContext(ctx, &items, query, args...)

	logQuery(query, args, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// listingFilter builds the WHERE clause shared by the count and data
// queries, appending its parameters after the ones already in args.
func listingFilter(q models.ListingQuery, args []any) (string, []any) {
	var sb strings.Builder

	args = append(args, models.OpportunityActive)
	fmt.Fprintf(&sb, "o.status = $%d", len(args))

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		fmt.Fprintf(&sb, " AND (o.title ILIKE $%d OR o.organization ILIKE $%d)", len(args), len(args))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		fmt.Fprintf(&sb, " AND o.category = $%d", len(args))
	}

	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
