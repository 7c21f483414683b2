package service_test

import (
	"context"
	"testing"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/service"
	"github.com/paani/remedial-learning-app/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	teacherT1 = model.Identity{Username: "t1", Role: model.RoleTeacher}
	teacherT2 = model.Identity{Username: "t2", Role: model.RoleTeacher}
	parentP1  = model.Identity{Username: "p1", Role: model.RoleParent}
	parentP2  = model.Identity{Username: "p2", Role: model.RoleParent}

	studentS1 = &model.Student{StudentId: "s1", Name: "Ravi", Grade: "5", Teacher: "t1", Parent: "p1"}
)

func setupRoster(t *testing.T) (*service.RosterService, *mocks.MockUserRepository, *mocks.MockStudentRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	students := mocks.NewMockStudentRepository(ctrl)
	return service.NewRosterService(users, students), users, students
}

// ── AddStudent ──────────────────────────────────────────────────────

func TestAddStudent(t *testing.T) {
	validInput := func() *model.AddStudentInput {
		return &model.AddStudentInput{StudentId: "s1", Name: "Ravi", Grade: "5", Teacher: "t1", Parent: "p1"}
	}
	expectUsers := func(users *mocks.MockUserRepository) {
		users.EXPECT().GetUser(gomock.Any(), "t1").Return(&model.User{Username: "t1", Role: model.RoleTeacher}, nil)
		users.EXPECT().GetUser(gomock.Any(), "p1").Return(&model.User{Username: "p1", Role: model.RoleParent}, nil)
	}

	t.Run("Success", func(t *testing.T) {
		svc, users, students := setupRoster(t)
		expectUsers(users)
		students.EXPECT().CreateStudent(gomock.Any(), &model.RepositoryCreateStudentInput{
			StudentId: "s1", Name: "Ravi", Grade: "5", Teacher: "t1", Parent: "p1",
		}).Return(studentS1, nil)

		student, err := svc.AddStudent(context.Background(), teacherT1, validInput())
		require.NoError(t, err)
		assert.Equal(t, "s1", student.StudentId)
	})

	t.Run("ParentCannotEnrol", func(t *testing.T) {
		svc, _, _ := setupRoster(t)

		_, err := svc.AddStudent(context.Background(), parentP1, validInput())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("AnotherTeacher", func(t *testing.T) {
		svc, _, _ := setupRoster(t)

		_, err := svc.AddStudent(context.Background(), teacherT2, validInput())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("Anonymous", func(t *testing.T) {
		svc, _, _ := setupRoster(t)

		_, err := svc.AddStudent(context.Background(), model.Identity{}, validInput())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	for _, grade := range []string{"0", "13", "05", "five", ""} {
		t.Run("InvalidGrade_"+grade, func(t *testing.T) {
			svc, _, _ := setupRoster(t)
			input := validInput()
			input.Grade = grade

			_, err := svc.AddStudent(context.Background(), teacherT1, input)
			assert.ErrorIs(t, err, errdefs.ErrValidation)
		})
	}

	t.Run("ParentNotRegistered", func(t *testing.T) {
		svc, users, _ := setupRoster(t)
		users.EXPECT().GetUser(gomock.Any(), "t1").Return(&model.User{Username: "t1", Role: model.RoleTeacher}, nil)
		users.EXPECT().GetUser(gomock.Any(), "p1").Return(nil, errdefs.ErrNotFound)

		_, err := svc.AddStudent(context.Background(), teacherT1, validInput())
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("ParentHasTeacherRole", func(t *testing.T) {
		svc, users, _ := setupRoster(t)
		users.EXPECT().GetUser(gomock.Any(), "t1").Return(&model.User{Username: "t1", Role: model.RoleTeacher}, nil)
		users.EXPECT().GetUser(gomock.Any(), "p1").Return(&model.User{Username: "p1", Role: model.RoleTeacher}, nil)

		_, err := svc.AddStudent(context.Background(), teacherT1, validInput())
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("DuplicateId", func(t *testing.T) {
		svc, users, students := setupRoster(t)
		expectUsers(users)
		students.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.AddStudent(context.Background(), teacherT1, validInput())
		assert.ErrorIs(t, err, errdefs.ErrDuplicateStudent)
	})
}

// ── Listing and lookup ──────────────────────────────────────────────

func TestListStudentsFor(t *testing.T) {
	t.Run("Teacher", func(t *testing.T) {
		svc, _, students := setupRoster(t)
		students.EXPECT().ListStudents(gomock.Any(), "t1", "").Return([]*model.Student{studentS1}, nil)

		list, err := svc.ListStudentsFor(context.Background(), teacherT1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("ParentWithNoStudents", func(t *testing.T) {
		svc, _, students := setupRoster(t)
		students.EXPECT().ListStudents(gomock.Any(), "", "p2").Return(nil, nil)

		list, err := svc.ListStudentsFor(context.Background(), parentP2)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestGetStudent(t *testing.T) {
	t.Run("ParentOfRecord", func(t *testing.T) {
		svc, _, students := setupRoster(t)
		students.EXPECT().GetStudent(gomock.Any(), "s1").Return(studentS1, nil)

		student, err := svc.GetStudent(context.Background(), parentP1, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", student.Name)
	})

	t.Run("Stranger", func(t *testing.T) {
		svc, _, students := setupRoster(t)
		students.EXPECT().GetStudent(gomock.Any(), "s1").Return(studentS1, nil)

		_, err := svc.GetStudent(context.Background(), parentP2, "s1")
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, students := setupRoster(t)
		students.EXPECT().GetStudent(gomock.Any(), "zz").Return(nil, errdefs.ErrNotFound)

		_, err := svc.GetStudent(context.Background(), teacherT1, "zz")
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}
