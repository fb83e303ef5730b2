package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// ApplicationWriteRepository handles application write operations
type ApplicationWriteRepository struct {
	db *sqlx.DB
}

func NewApplicationWriteRepository(db *sqlx.DB) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db}
}

// Create inserts an APPLIED application in one statement, guarded by the
// opportunity being ACTIVE. Returns ErrNotFound if the opportunity is absent
// or not active, ErrAlreadyExists if the user already applied.
func (r *ApplicationWriteRepository) Create(ctx context.Context, id, userID, opportunityID uuid.UUID) (*models.Application, error) {
	const query = `
		INSERT INTO applications (id, user_id, opportunity_id, status, applied_at)
		SELECT $1::uuid, $2::uuid, o.id, $4::text, NOW()
		FROM opportunities o
		WHERE o.id = $3 AND o.status = $5
		RETURNING id, user_id, opportunity_id, status, applied_at
	`
	args := []any{id, userID, opportunityID, models.ApplicationApplied, models.OpportunityActive}

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, args...)

	logQuery(query, args, app.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// UpdateStatus changes the status of an application owned by userID.
// Returns ErrNotFound when no application matches both ids.
func (r *ApplicationWriteRepository) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	const query = `
		UPDATE applications
		SET status = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, opportunity_id, status, applied_at
	`
	args := []any{status, id, userID}

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, args...)

	logQuery(query, args, app.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// ApplicationReadRepository handles application read operations
type ApplicationReadRepository struct {
	db *sqlx.DB
}

func NewApplicationReadRepository(db *sqlx.DB) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db}
}

// ListByUser returns the user's applications with opportunity summaries, most recent first.
func (r *ApplicationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicationSummary, error) {
	const query = `
		SELECT a.id, a.status, a.applied_at,
		       o.id AS opportunity_id, o.title, o.organization, o.category, o.deadline
		FROM applications a
		JOIN opportunities o ON o.id = a.opportunity_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC, a.id DESC
	`

	items := []models.ApplicationSummary{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logQuery(query, []any{userID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}
