package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/catalogue"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/validation"
)

type AssessmentService struct {
	students    StudentRepository
	assessments AssessmentRepository
	catalogue   *catalogue.Catalogue
}

func NewAssessmentService(
	students StudentRepository,
	assessments AssessmentRepository,
	catalogue *catalogue.Catalogue,
) *AssessmentService {
	return &AssessmentService{
		students:    students,
		assessments: assessments,
		catalogue:   catalogue,
	}
}

// RecordAssessment appends a snapshot; earlier assessments are never changed.
func (s *AssessmentService) RecordAssessment(ctx context.Context, actor model.Identity, input *model.RecordAssessmentInput) (*model.Assessment, error) {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student, err := loadStudent(ctx, s.students, input.StudentId)
	if err != nil {
		return nil, err
	}
	if err := ensureTeacherOf(actor, student); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	scores := make(model.Scores, len(input.Scores))
	for name, score := range input.Scores {
		scores[name] = score
	}

	return s.assessments.CreateAssessment(ctx, &model.RepositoryCreateAssessmentInput{
		AssessmentId: id,
		StudentId:    student.StudentId,
		Teacher:      actor.Username,
		Competencies: scores,
		Notes:        input.Notes,
		CreatedAt:    NowFunc(),
	})
}

func (s *AssessmentService) LatestAssessment(ctx context.Context, actor model.Identity, studentId string) (*model.Assessment, error) {
	if err := ensureAuthenticated(actor); err != nil {
		return nil, err
	}

	student, err := loadStudent(ctx, s.students, studentId)
	if err != nil {
		return nil, err
	}
	if err := ensureStudentAccess(actor, student); err != nil {
		return nil, err
	}

	return s.assessments.GetLatestAssessment(ctx, studentId)
}

func (s *AssessmentService) Competencies(grade string) ([]string, error) {
	return s.catalogue.For(grade)
}
