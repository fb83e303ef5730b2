package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var opportunityRowColumns = []string{
	"id", "title", "description", "category", "status", "deadline", "organization",
	"organization_logo", "apply_link", "type", "eligibility", "created_by", "created_at", "expires_at",
}

func opportunityRow(id uuid.UUID, title string, createdAt time.Time) []driver.Value {
	return []driver.Value{
		id.String(), title, "desc", "JOB", "ACTIVE", createdAt.Add(24 * time.Hour), "Acme",
		nil, nil, nil, nil, uuid.New().String(), createdAt, nil,
	}
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"unique", &pgconn.PgError{Code: pgUniqueViolation}, ErrAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, ErrReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, escapeLike(`50% off_now \o/`))
	assert.Equal(t, "golang", escapeLike("golang"))
}

func TestListingFilter(t *testing.T) {
	userID := uuid.New()

	t.Run("no filters", func(t *testing.T) {
		where, args := listingFilter(models.ListingQuery{}, nil)
		assert.Equal(t, "o.status = $1", where)
		assert.Equal(t, []any{models.OpportunityActive}, args)
	})

	t.Run("search and category after user id", func(t *testing.T) {
		q := models.ListingQuery{Search: "go_dev", Category: models.CategoryJob}
		where, args := listingFilter(q, []any{userID})
		assert.Equal(t,
			"o.status = $2 AND (o.title ILIKE $3 OR o.organization ILIKE $3) AND o.category = $4",
			where)
		assert.Equal(t, []any{userID, models.OpportunityActive, `%go\_dev%`, models.CategoryJob}, args)
	})
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "college", "created_at"}).
			AddRow(id.String(), "Alice", "alice@example.com", "hash", "STUDENT", nil, time.Now())
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.UserID)
		assert.Equal(t, models.RoleStudent, user.Role)
		assert.Nil(t, user.College)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
	}

	t.Run("inserted", func(t *testing.T) {
		created := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(user.UserID, "Bob", "bob@example.com", "hash", models.RoleAdmin, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

		require.NoError(t, repo.Save(ctx, user))
		assert.Equal(t, created, user.CreatedAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

		err := repo.Save(ctx, user)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpportunityWriteRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOpportunityWriteRepository(db)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC()

	in := models.OpportunityInput{
		Title:        "Backend Intern",
		Description:  "Go services",
		Category:     models.CategoryInternship,
		Status:       models.OpportunityActive,
		Deadline:     now.Add(48 * time.Hour),
		Organization: "Acme",
	}

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO opportunities`).
			WillReturnRows(sqlmock.NewRows(opportunityRowColumns).AddRow(opportunityRow(id, in.Title, now)...))

		opp, err := repo.Create(ctx, id, uuid.New(), in)
		require.NoError(t, err)
		assert.Equal(t, id, opp.ID)
		assert.Equal(t, "Backend Intern", opp.Title)
	})

	t.Run("update missing", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE opportunities`).
			WillReturnError(sql.ErrNoRows)

		opp, err := repo.Update(ctx, id, in)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, opp)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM opportunities WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM opportunities WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpportunityReadRepository_Listing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOpportunityReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	q := models.ListingQuery{
		UserID:   userID,
		Search:   "intern",
		Category: models.CategoryInternship,
		Page:     2,
		PageSize: 5,
	}

	t.Run("count", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM opportunities o WHERE o.status = \$1 AND`).
			WithArgs(models.OpportunityActive, "%intern%", models.CategoryInternship).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountActive(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("page", func(t *testing.T) {
		first, second := uuid.New(), uuid.New()
		columns := append(append([]string{}, opportunityRowColumns...), "is_bookmarked", "is_applied")
		rows := sqlmock.NewRows(columns).
			AddRow(append(opportunityRow(first, "Newer", now), true, false)...).
			AddRow(append(opportunityRow(second, "Older", now.Add(-time.Hour)), false, true)...)

		mock.ExpectQuery(`(?s)LEFT JOIN bookmarks b.*LEFT JOIN applications a.*ORDER BY o.created_at DESC, o.id DESC\s+LIMIT \$5 OFFSET \$6`).
			WithArgs(userID, models.OpportunityActive, "%intern%", models.CategoryInternship, 5, 5).
			WillReturnRows(rows)

		items, err := repo.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first, items[0].ID)
		assert.True(t, items[0].IsBookmarked)
		assert.False(t, items[0].IsApplied)
		assert.Equal(t, second, items[1].ID)
		assert.True(t, items[1].IsApplied)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(sql.ErrConnDone)

		_, err := repo.CountActive(ctx, q)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationWriteRepository(db)
	ctx := context.Background()
	id, userID, oppID := uuid.New(), uuid.New(), uuid.New()

	t.Run("applied", func(t *testing.T) {
		mock.ExpectQuery(`(?s)INSERT INTO applications .* SELECT .* FROM opportunities o\s+WHERE o.id = \$3 AND o.status = \$5`).
			WithArgs(id, userID, oppID, models.ApplicationApplied, models.OpportunityActive).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "opportunity_id", "status", "applied_at"}).
				AddRow(id.String(), userID.String(), oppID.String(), "APPLIED", time.Now()))

		app, err := repo.Create(ctx, id, userID, oppID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationApplied, app.Status)
		assert.Equal(t, oppID, app.OpportunityID)
	})

	t.Run("opportunity not active", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO applications`).WillReturnError(sql.ErrNoRows)

		_, err := repo.Create(ctx, id, userID, oppID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO applications`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := repo.Create(ctx, id, userID, oppID)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationWriteRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationWriteRepository(db)
	ctx := context.Background()
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`UPDATE applications\s+SET status = \$1\s+WHERE id = \$2 AND user_id = \$3`).
		WithArgs(models.ApplicationWithdrawn, id, userID).
		WillReturnError(sql.ErrNoRows)

	app, err := repo.UpdateStatus(ctx, id, userID, models.ApplicationWithdrawn)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, app)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty list is not nil", func(t *testing.T) {
		mock.ExpectQuery(`FROM applications a\s+JOIN opportunities o`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "applied_at", "opportunity_id", "title", "organization", "category", "deadline"}))

		items, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepositories(t *testing.T) {
	db, mock := newMockDB(t)
	writer := NewBookmarkWriteRepository(db)
	reader := NewBookmarkReadRepository(db)
	ctx := context.Background()
	id, userID, oppID := uuid.New(), uuid.New(), uuid.New()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO bookmarks`).
			WithArgs(id, userID, oppID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "opportunity_id", "created_at"}).
				AddRow(id.String(), userID.String(), oppID.String(), time.Now()))

		b, err := writer.Create(ctx, id, userID, oppID)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO bookmarks`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := writer.Create(ctx, id, userID, oppID)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown opportunity", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO bookmarks`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err := writer.Create(ctx, id, userID, oppID)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("delete absent is not an error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM bookmarks WHERE user_id = \$1 AND opportunity_id = \$2`).
			WithArgs(userID, oppID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, writer.Delete(ctx, userID, oppID))
	})

	t.Run("list", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "title", "description", "organization", "organization_logo", "category", "type",
			"deadline", "apply_link", "expires_at", "bookmarked_at", "is_applied",
		}).AddRow(oppID.String(), "Title", "Desc", "Acme", nil, "JOB", nil, time.Now(), nil, nil, time.Now(), true)
		mock.ExpectQuery(`FROM bookmarks b\s+JOIN opportunities o`).
			WithArgs(userID).
			WillReturnRows(rows)

		items, err := reader.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].IsApplied)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
