package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/paani/remedial-learning-app/internal/model"
)

type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, input *model.RepositoryCreateSessionInput) (*model.Session, error) {
	query := `
INSERT INTO sessions (session_id, username, role, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING session_id, username, role, created_at, expires_at
`
	var session model.Session
	err := pgxscan.Get(ctx, r.db, &session, query,
		input.SessionId,
		input.Username,
		input.Role,
		input.CreatedAt,
		input.ExpiresAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &session, nil
}

func (r *SessionRepository) GetSession(ctx context.Context, sessionId string) (*model.Session, error) {
	query := `
SELECT session_id, username, role, created_at, expires_at
FROM sessions
WHERE session_id = $1
`
	var session model.Session
	err := pgxscan.Get(ctx, r.db, &session, query, sessionId)
	if err != nil {
		return nil, handleError(err)
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionId string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionId)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, handleError(err)
	}
	return tag.RowsAffected(), nil
}
