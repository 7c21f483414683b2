package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/paani/remedial-learning-app/internal/model"
)

type StudentRepository struct {
	db Querier
}

func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) CreateStudent(ctx context.Context, input *model.RepositoryCreateStudentInput) (*model.Student, error) {
	query := `
INSERT INTO students (student_id, name, grade, teacher, parent)
VALUES ($1, $2, $3, $4, $5)
RETURNING student_id, name, grade, teacher, parent, created_at
`
	var student model.Student
	err := pgxscan.Get(ctx, r.db, &student, query,
		input.StudentId,
		input.Name,
		input.Grade,
		input.Teacher,
		input.Parent,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &student, nil
}

func (r *StudentRepository) GetStudent(ctx context.Context, studentId string) (*model.Student, error) {
	query := `
SELECT student_id, name, grade, teacher, parent, created_at
FROM students
WHERE student_id = $1
`
	var student model.Student
	err := pgxscan.Get(ctx, r.db, &student, query, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return &student, nil
}

func (r *StudentRepository) ListStudents(ctx context.Context, teacher string, parent string) ([]*model.Student, error) {
	query, args := buildListStudentsQuery(teacher, parent)

	var rows []*model.Student
	err := pgxscan.Select(ctx, r.db, &rows, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}
