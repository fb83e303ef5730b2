package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

const userColumns = `id, name, email, password_hash, role, college, created_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email or ErrNotFound.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logQuery(query, []any{email}, user.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logQuery(query, []any{id}, user.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A duplicate email yields ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, college, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := r.db.GetContext(ctx, &user.CreatedAt, query,
		user.UserID, user.Name, user.Email, user.PasswordHash, user.Role, user.College)

	// The password hash is never logged.
	logQuery(query, []any{user.UserID, user.Name, user.Email, user.Role, user.College}, user.CreatedAt, err)

	return translateError(err)
}
