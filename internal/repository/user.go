package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanagement/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The insert-if-absent closes the race where two
// concurrent creates for the same userId both pass a read-side check.
func (r *UserRepository) Create(ctx context.Context, userID, name string) (*model.User, error) {
	user := &model.User{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (user_id, name, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		user.UserID, user.Name, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrDuplicateUser
	}
	return user, nil
}

// GetByID returns a single user or ErrUserNotFound.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, name, created_at FROM users WHERE user_id = $1`,
		userID,
	).Scan(&u.UserID, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
