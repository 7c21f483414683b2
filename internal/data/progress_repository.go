package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

type ProgressRepository struct {
	db Querier
}

func NewProgressRepository(db Querier) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// UpsertProgress replaces the row for (student_id, material_id) while keeping
// its progress_id.
func (r *ProgressRepository) UpsertProgress(ctx context.Context, input *model.RepositoryUpsertProgressInput) (*model.Progress, error) {
	query := `
INSERT INTO progress (progress_id, student_id, material_id, parent, completed, completed_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (student_id, material_id) DO UPDATE SET
	parent = EXCLUDED.parent,
	completed = EXCLUDED.completed,
	completed_at = EXCLUDED.completed_at,
	updated_at = EXCLUDED.updated_at
RETURNING progress_id, student_id, material_id, parent, completed, completed_at, updated_at
`
	var progress model.Progress
	err := pgxscan.Get(ctx, r.db, &progress, query,
		input.ProgressId,
		input.StudentId,
		input.MaterialId,
		input.Parent,
		input.Completed,
		input.CompletedAt,
		input.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &progress, nil
}

func (r *ProgressRepository) GetProgress(ctx context.Context, studentId string, materialId uuid.UUID) (*model.Progress, error) {
	query := `
SELECT progress_id, student_id, material_id, parent, completed, completed_at, updated_at
FROM progress
WHERE student_id = $1 AND material_id = $2
`
	var progress model.Progress
	err := pgxscan.Get(ctx, r.db, &progress, query, studentId, materialId)
	if err != nil {
		return nil, handleError(err)
	}
	return &progress, nil
}

func (r *ProgressRepository) GetProgressById(ctx context.Context, progressId uuid.UUID) (*model.Progress, error) {
	query := `
SELECT progress_id, student_id, material_id, parent, completed, completed_at, updated_at
FROM progress
WHERE progress_id = $1
`
	var progress model.Progress
	err := pgxscan.Get(ctx, r.db, &progress, query, progressId)
	if err != nil {
		return nil, handleError(err)
	}
	return &progress, nil
}

func (r *ProgressRepository) ListStudentProgress(ctx context.Context, studentId string, completedOnly bool) ([]*model.ProgressEntry, error) {
	query, args := buildListStudentProgressQuery(studentId, completedOnly)

	var rows []*model.ProgressEntry
	err := pgxscan.Select(ctx, r.db, &rows, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}
