package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

type FeedbackRepository struct {
	db Querier
}

func NewFeedbackRepository(db Querier) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error) {
	query := `
INSERT INTO feedback (feedback_id, progress_id, teacher, student_id, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING feedback_id, seq, progress_id AS target_id, teacher, student_id, body, created_at
`
	return r.create(ctx, query, input)
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, progressId uuid.UUID) ([]*model.Feedback, error) {
	query := `
SELECT feedback_id, seq, progress_id AS target_id, teacher, student_id, body, created_at
FROM feedback
WHERE progress_id = $1
ORDER BY created_at DESC, seq DESC
`
	return r.list(ctx, query, progressId)
}

func (r *FeedbackRepository) CreateDailyFeedback(ctx context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error) {
	query := `
INSERT INTO daily_feedback (daily_feedback_id, daily_progress_id, teacher, student_id, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING daily_feedback_id AS feedback_id, seq, daily_progress_id AS target_id, teacher, student_id, body, created_at
`
	return r.create(ctx, query, input)
}

func (r *FeedbackRepository) ListDailyFeedback(ctx context.Context, dailyProgressId uuid.UUID) ([]*model.Feedback, error) {
	query := `
SELECT daily_feedback_id AS feedback_id, seq, daily_progress_id AS target_id, teacher, student_id, body, created_at
FROM daily_feedback
WHERE daily_progress_id = $1
ORDER BY created_at DESC, seq DESC
`
	return r.list(ctx, query, dailyProgressId)
}

func (r *FeedbackRepository) create(ctx context.Context, query string, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error) {
	var fb model.Feedback
	err := pgxscan.Get(ctx, r.db, &fb, query,
		input.FeedbackId,
		input.TargetId,
		input.Teacher,
		input.StudentId,
		input.Body,
		input.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &fb, nil
}

func (r *FeedbackRepository) list(ctx context.Context, query string, targetId uuid.UUID) ([]*model.Feedback, error) {
	var rows []*model.Feedback
	err := pgxscan.Select(ctx, r.db, &rows, query, targetId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}
