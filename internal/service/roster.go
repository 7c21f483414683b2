package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paani/remedial-learning-app/internal/catalogue"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/validation"
)

type RosterService struct {
	users    UserRepository
	students StudentRepository
}

func NewRosterService(users UserRepository, students StudentRepository) *RosterService {
	return &RosterService{users: users, students: students}
}

func (s *RosterService) AddStudent(ctx context.Context, actor model.Identity, input *model.AddStudentInput) (*model.Student, error) {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return nil, err
	}
	if actor.Username != input.Teacher {
		return nil, fmt.Errorf("cannot enrol students for another teacher: %w", errdefs.ErrPermissionDenied)
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !catalogue.ValidGrade(input.Grade) {
		return nil, fmt.Errorf("grade %q: %w", input.Grade, errdefs.ErrValidation)
	}

	if err := s.ensureUserHasRole(ctx, input.Teacher, model.RoleTeacher); err != nil {
		return nil, err
	}
	if err := s.ensureUserHasRole(ctx, input.Parent, model.RoleParent); err != nil {
		return nil, err
	}

	student, err := s.students.CreateStudent(ctx, &model.RepositoryCreateStudentInput{
		StudentId: input.StudentId,
		Name:      input.Name,
		Grade:     input.Grade,
		Teacher:   input.Teacher,
		Parent:    input.Parent,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", input.StudentId, errdefs.ErrDuplicateStudent)
		}
		return nil, err
	}

	return student, nil
}

// ListStudentsFor returns the students the actor is teacher or parent of, by id.
func (s *RosterService) ListStudentsFor(ctx context.Context, actor model.Identity) ([]*model.Student, error) {
	if err := ensureAuthenticated(actor); err != nil {
		return nil, err
	}

	var (
		students []*model.Student
		err      error
	)
	switch actor.Role {
	case model.RoleTeacher:
		students, err = s.students.ListStudents(ctx, actor.Username, "")
	case model.RoleParent:
		students, err = s.students.ListStudents(ctx, "", actor.Username)
	}
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*model.Student{}
	}

	return students, nil
}

func (s *RosterService) GetStudent(ctx context.Context, actor model.Identity, studentId string) (*model.Student, error) {
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

	return student, nil
}

func (s *RosterService) ensureUserHasRole(ctx context.Context, username string, role model.Role) error {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return fmt.Errorf("%s %q is not registered: %w", role, username, errdefs.ErrValidation)
		}
		return err
	}
	if user.Role != role {
		return fmt.Errorf("%q is registered as %s, not %s: %w", username, user.Role, role, errdefs.ErrValidation)
	}
	return nil
}
