package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

type MaterialRepository struct {
	db Querier
}

func NewMaterialRepository(db Querier) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) CreateMaterial(ctx context.Context, input *model.RepositoryCreateMaterialInput) (*model.Material, error) {
	query := `
INSERT INTO materials (
	material_id, student_id, teacher, competency, title,
	description, file_data, filename, duration_days, uploaded_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING
	material_id, student_id, teacher, competency, title,
	description, filename, duration_days, uploaded_at
`
	var material model.Material
	err := pgxscan.Get(ctx, r.db, &material, query,
		input.MaterialId,
		input.StudentId,
		input.Teacher,
		input.Competency,
		input.Title,
		input.Description,
		input.FileData,
		input.Filename,
		input.DurationDays,
		input.UploadedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &material, nil
}

func (r *MaterialRepository) GetMaterial(ctx context.Context, materialId uuid.UUID) (*model.Material, error) {
	query := `
SELECT
	material_id, student_id, teacher, competency, title,
	description, filename, duration_days, uploaded_at
FROM materials
WHERE material_id = $1
`
	var material model.Material
	err := pgxscan.Get(ctx, r.db, &material, query, materialId)
	if err != nil {
		return nil, handleError(err)
	}
	return &material, nil
}

func (r *MaterialRepository) GetMaterialFile(ctx context.Context, materialId uuid.UUID) (*model.MaterialFile, error) {
	query := `
SELECT material_id, student_id, filename, file_data
FROM materials
WHERE material_id = $1
`
	var file model.MaterialFile
	err := pgxscan.Get(ctx, r.db, &file, query, materialId)
	if err != nil {
		return nil, handleError(err)
	}
	return &file, nil
}

func (r *MaterialRepository) ListMaterials(ctx context.Context, studentId string) ([]*model.Material, error) {
	query := `
SELECT
	material_id, student_id, teacher, competency, title,
	description, filename, duration_days, uploaded_at
FROM materials
WHERE student_id = $1
ORDER BY uploaded_at DESC, material_id DESC
`
	var rows []*model.Material
	err := pgxscan.Select(ctx, r.db, &rows, query, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}
