package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
)

var NowFunc = time.Now // mockable

func ensureAuthenticated(actor model.Identity) error {
	if actor.Username == "" || !actor.Role.IsValid() {
		return errdefs.ErrAuthentication
	}
	return nil
}

func ensureRole(actor model.Identity, role model.Role) error {
	if err := ensureAuthenticated(actor); err != nil {
		return err
	}
	if actor.Role != role {
		return fmt.Errorf("requires role %s: %w", role, errdefs.ErrPermissionDenied)
	}
	return nil
}

func ensureTeacherOf(actor model.Identity, student *model.Student) error {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return err
	}
	if student.Teacher != actor.Username {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

func ensureParentOf(actor model.Identity, student *model.Student) error {
	if err := ensureRole(actor, model.RoleParent); err != nil {
		return err
	}
	if student.Parent != actor.Username {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

// ensureStudentAccess admits the teacher or the parent of record.
func ensureStudentAccess(actor model.Identity, student *model.Student) error {
	if err := ensureAuthenticated(actor); err != nil {
		return err
	}
	switch actor.Role {
	case model.RoleTeacher:
		if student.Teacher == actor.Username {
			return nil
		}
	case model.RoleParent:
		if student.Parent == actor.Username {
			return nil
		}
	}
	return errdefs.ErrPermissionDenied
}

func loadStudent(ctx context.Context, students StudentRepository, studentId string) (*model.Student, error) {
	student, err := students.GetStudent(ctx, studentId)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, fmt.Errorf("student %s: %w", studentId, errdefs.ErrNotFound)
		}
		return nil, err
	}
	return student, nil
}
