package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/migrations"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(dsn))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, ctx context.Context, repo *UserWriteRepository, email string, role models.Role) *models.UserDB {
	t.Helper()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, repo.Save(ctx, user))
	return user
}

func seedOpportunity(t *testing.T, ctx context.Context, repo *OpportunityWriteRepository, adminID uuid.UUID, in models.OpportunityInput) *models.Opportunity {
	t.Helper()

	opp, err := repo.Create(ctx, uuid.New(), adminID, in)
	require.NoError(t, err)
	return opp
}

func opportunityInput(title, org string, category models.Category, status models.OpportunityStatus) models.OpportunityInput {
	return models.OpportunityInput{
		Title:        title,
		Description:  title + " description",
		Category:     category,
		Status:       status,
		Deadline:     time.Now().Add(72 * time.Hour).UTC(),
		Organization: org,
	}
}

func TestPostgresRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userWriter := NewUserWriteRepository(db)
	userReader := NewUserReadRepository(db)
	oppWriter := NewOpportunityWriteRepository(db)
	oppReader := NewOpportunityReadRepository(db)
	appWriter := NewApplicationWriteRepository(db)
	appReader := NewApplicationReadRepository(db)
	bmWriter := NewBookmarkWriteRepository(db)
	bmReader := NewBookmarkReadRepository(db)

	admin := seedUser(t, ctx, userWriter, "admin@example.com", models.RoleAdmin)
	student := seedUser(t, ctx, userWriter, "student@example.com", models.RoleStudent)

	t.Run("users", func(t *testing.T) {
		got, err := userReader.GetByEmail(ctx, "student@example.com")
		require.NoError(t, err)
		assert.Equal(t, student.UserID, got.UserID)
		assert.False(t, got.CreatedAt.IsZero())

		got, err = userReader.GetByID(ctx, admin.UserID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, got.Role)

		_, err = userReader.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)

		dup := &models.UserDB{UserID: uuid.New(), Name: "x", Email: "student@example.com", PasswordHash: "h", Role: models.RoleStudent}
		assert.ErrorIs(t, userWriter.Save(ctx, dup), ErrAlreadyExists)
	})

	goJob := seedOpportunity(t, ctx, oppWriter, admin.UserID, opportunityInput("Go Developer", "Acme", models.CategoryJob, models.OpportunityActive))
	time.Sleep(10 * time.Millisecond)
	intern := seedOpportunity(t, ctx, oppWriter, admin.UserID, opportunityInput("Backend Intern", "Globex", models.CategoryInternship, models.OpportunityActive))
	time.Sleep(10 * time.Millisecond)
	draft := seedOpportunity(t, ctx, oppWriter, admin.UserID, opportunityInput("Draft Hackathon", "Acme", models.CategoryHackathon, models.OpportunityDraft))
	time.Sleep(10 * time.Millisecond)
	literal := seedOpportunity(t, ctx, oppWriter, admin.UserID, opportunityInput("100% Remote_Role", "Initech", models.CategoryJob, models.OpportunityActive))

	t.Run("listing newest first without drafts", func(t *testing.T) {
		q := models.ListingQuery{UserID: student.UserID, Page: 1, PageSize: 10}

		count, err := oppReader.CountActive(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		items, err := oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, literal.ID, items[0].ID)
		assert.Equal(t, intern.ID, items[1].ID)
		assert.Equal(t, goJob.ID, items[2].ID)
	})

	t.Run("search is case insensitive across title and organization", func(t *testing.T) {
		q := models.ListingQuery{UserID: student.UserID, Search: "acme", Page: 1, PageSize: 10}
		items, err := oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, goJob.ID, items[0].ID)

		q.Search = "INTERN"
		items, err = oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, intern.ID, items[0].ID)
	})

	t.Run("search wildcards match literally", func(t *testing.T) {
		q := models.ListingQuery{UserID: student.UserID, Search: "0% R", Page: 1, PageSize: 10}
		items, err := oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, literal.ID, items[0].ID)

		q.Search = "_"
		count, err := oppReader.CountActive(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("category filter and pagination", func(t *testing.T) {
		q := models.ListingQuery{UserID: student.UserID, Category: models.CategoryJob, Page: 2, PageSize: 1}
		count, err := oppReader.CountActive(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		items, err := oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, goJob.ID, items[0].ID)

		q.Page = 5
		items, err = oppReader.ListActive(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("apply", func(t *testing.T) {
		app, err := appWriter.Create(ctx, uuid.New(), student.UserID, intern.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationApplied, app.Status)

		_, err = appWriter.Create(ctx, uuid.New(), student.UserID, intern.ID)
		assert.ErrorIs(t, err, ErrAlreadyExists)

		_, err = appWriter.Create(ctx, uuid.New(), student.UserID, draft.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = appWriter.Create(ctx, uuid.New(), student.UserID, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)

		apps, err := appReader.ListByUser(ctx, student.UserID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "Backend Intern", apps[0].Title)

		updated, err := appWriter.UpdateStatus(ctx, app.ID, student.UserID, models.ApplicationWithdrawn)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationWithdrawn, updated.Status)

		_, err = appWriter.UpdateStatus(ctx, app.ID, admin.UserID, models.ApplicationSelected)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("bookmark", func(t *testing.T) {
		_, err := bmWriter.Create(ctx, uuid.New(), student.UserID, intern.ID)
		require.NoError(t, err)

		_, err = bmWriter.Create(ctx, uuid.New(), student.UserID, intern.ID)
		assert.ErrorIs(t, err, ErrAlreadyExists)

		_, err = bmWriter.Create(ctx, uuid.New(), student.UserID, uuid.New())
		assert.ErrorIs(t, err, ErrReferenceNotFound)

		bookmarks, err := bmReader.ListByUser(ctx, student.UserID)
		require.NoError(t, err)
		require.Len(t, bookmarks, 1)
		assert.True(t, bookmarks[0].IsApplied)

		items, err := oppReader.ListActive(ctx, models.ListingQuery{UserID: student.UserID, Page: 1, PageSize: 10})
		require.NoError(t, err)
		for _, item := range items {
			assert.Equal(t, item.ID == intern.ID, item.IsBookmarked, item.Title)
			assert.Equal(t, item.ID == intern.ID, item.IsApplied, item.Title)
		}

		items, err = oppReader.ListActive(ctx, models.ListingQuery{UserID: admin.UserID, Page: 1, PageSize: 10})
		require.NoError(t, err)
		for _, item := range items {
			assert.False(t, item.IsBookmarked)
			assert.False(t, item.IsApplied)
		}

		require.NoError(t, bmWriter.Delete(ctx, student.UserID, intern.ID))
		require.NoError(t, bmWriter.Delete(ctx, student.UserID, intern.ID))

		bookmarks, err = bmReader.ListByUser(ctx, student.UserID)
		require.NoError(t, err)
		assert.Empty(t, bookmarks)
	})

	t.Run("update and delete", func(t *testing.T) {
		in := opportunityInput("Go Developer II", "Acme", models.CategoryJob, models.OpportunityClosed)
		updated, err := oppWriter.Update(ctx, goJob.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Go Developer II", updated.Title)
		assert.Equal(t, models.OpportunityClosed, updated.Status)
		assert.Equal(t, goJob.CreatedAt.Unix(), updated.CreatedAt.Unix())

		_, err = oppWriter.Update(ctx, uuid.New(), in)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := oppReader.GetByID(ctx, goJob.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OpportunityClosed, got.Status)

		require.NoError(t, oppWriter.Delete(ctx, intern.ID))
		assert.ErrorIs(t, oppWriter.Delete(ctx, intern.ID), ErrNotFound)

		apps, err := appReader.ListByUser(ctx, student.UserID)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}
