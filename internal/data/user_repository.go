package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/paani/remedial-learning-app/internal/model"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (username, password_hash, role, full_name)
VALUES ($1, $2, $3, $4)
RETURNING username, password_hash, role, full_name, created_at
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query,
		input.Username,
		input.PasswordHash,
		input.Role,
		input.FullName,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (*model.User, error) {
	query := `
SELECT username, password_hash, role, full_name, created_at
FROM users
WHERE username = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, username)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}
