package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

type DailyProgressRepository struct {
	db Querier
}

func NewDailyProgressRepository(db Querier) *DailyProgressRepository {
	return &DailyProgressRepository{db: db}
}

// UpsertDailyProgress keys rows on (material_id, student_id, day_number); a
// repeated save for the same day updates the existing row in place.
func (r *DailyProgressRepository) UpsertDailyProgress(ctx context.Context, input *model.RepositoryUpsertDailyProgressInput) (*model.DailyProgress, error) {
	query := `
INSERT INTO daily_progress (
	daily_progress_id, material_id, student_id, parent,
	day_number, completed, comment, completed_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (material_id, student_id, day_number) DO UPDATE SET
	parent = EXCLUDED.parent,
	completed = EXCLUDED.completed,
	comment = EXCLUDED.comment,
	completed_at = EXCLUDED.completed_at,
	updated_at = EXCLUDED.updated_at
RETURNING
	daily_progress_id, material_id, student_id, parent,
	day_number, completed, comment, completed_at, updated_at
`
	var dp model.DailyProgress
	err := pgxscan.Get(ctx, r.db, &dp, query,
		input.DailyProgressId,
		input.MaterialId,
		input.StudentId,
		input.Parent,
		input.DayNumber,
		input.Completed,
		input.Comment,
		input.CompletedAt,
		input.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &dp, nil
}

func (r *DailyProgressRepository) GetDailyProgressById(ctx context.Context, dailyProgressId uuid.UUID) (*model.DailyProgress, error) {
	query := `
SELECT
	daily_progress_id, material_id, student_id, parent,
	day_number, completed, comment, completed_at, updated_at
FROM daily_progress
WHERE daily_progress_id = $1
`
	var dp model.DailyProgress
	err := pgxscan.Get(ctx, r.db, &dp, query, dailyProgressId)
	if err != nil {
		return nil, handleError(err)
	}
	return &dp, nil
}

func (r *DailyProgressRepository) ListDailyProgress(ctx context.Context, materialId uuid.UUID, studentId string) ([]*model.DailyProgress, error) {
	query := `
SELECT
	daily_progress_id, material_id, student_id, parent,
	day_number, completed, comment, completed_at, updated_at
FROM daily_progress
WHERE material_id = $1 AND student_id = $2
ORDER BY day_number
`
	var rows []*model.DailyProgress
	err := pgxscan.Select(ctx, r.db, &rows, query, materialId, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}

func (r *DailyProgressRepository) ListDailySummary(ctx context.Context, studentId string) ([]*model.DailySummaryRow, error) {
	query := `
SELECT
	m.material_id, m.title, m.competency, m.duration_days, m.uploaded_at,
	dp.daily_progress_id, dp.parent, dp.day_number, dp.completed,
	dp.comment, dp.completed_at, dp.updated_at
FROM daily_progress dp
JOIN materials m ON m.material_id = dp.material_id
WHERE dp.student_id = $1
ORDER BY m.uploaded_at DESC, m.material_id, dp.day_number
`
	var rows []*model.DailySummaryRow
	err := pgxscan.Select(ctx, r.db, &rows, query, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}
