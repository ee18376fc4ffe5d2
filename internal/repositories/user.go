package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(ctx, query, []any{email}, nil, nil)
		return nil, nil
	}

	logQuery(ctx, query, []any{email}, user.UserID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id.
// A duplicate email is reported as ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`

	userID := uuid.New()
	res, err := r.db.ExecContext(ctx, query, userID, email, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{userID, email, "***"}, rowsAffected, err)

	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrAlreadyExists
		}
		return uuid.Nil, err
	}
	return userID, nil
}
