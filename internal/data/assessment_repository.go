package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/paani/remedial-learning-app/internal/model"
)

type AssessmentRepository struct {
	db Querier
}

func NewAssessmentRepository(db Querier) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) CreateAssessment(ctx context.Context, input *model.RepositoryCreateAssessmentInput) (*model.Assessment, error) {
	query := `
INSERT INTO assessments (assessment_id, student_id, teacher, competencies, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING assessment_id, seq, student_id, teacher, competencies, notes, created_at
`
	var assessment model.Assessment
	err := pgxscan.Get(ctx, r.db, &assessment, query,
		input.AssessmentId,
		input.StudentId,
		input.Teacher,
		input.Competencies,
		input.Notes,
		input.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &assessment, nil
}

// GetLatestAssessment breaks created_at ties by insertion sequence.
func (r *AssessmentRepository) GetLatestAssessment(ctx context.Context, studentId string) (*model.Assessment, error) {
	query := `
SELECT assessment_id, seq, student_id, teacher, competencies, notes, created_at
FROM assessments
WHERE student_id = $1
ORDER BY created_at DESC, seq DESC
LIMIT 1
`
	var assessment model.Assessment
	err := pgxscan.Get(ctx, r.db, &assessment, query, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return &assessment, nil
}
