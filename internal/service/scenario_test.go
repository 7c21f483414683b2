package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/paani/remedial-learning-app/internal/catalogue"
	"github.com/paani/remedial-learning-app/internal/data/memory"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/password"
	"github.com/paani/remedial-learning-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type app struct {
	identity    *service.IdentityService
	roster      *service.RosterService
	assessments *service.AssessmentService
	tracker     *service.TrackerService
}

func newApp() *app {
	store := memory.NewStore()
	return &app{
		identity:    service.NewIdentityService(store, store, password.NewBcryptHasher(bcrypt.MinCost), nil, 0, 7),
		roster:      service.NewRosterService(store, store),
		assessments: service.NewAssessmentService(store, store, catalogue.Default()),
		tracker:     service.NewTrackerService(store, store, store, store, store),
	}
}

func (a *app) register(t *testing.T, username string, role model.Role) model.Identity {
	t.Helper()
	_, err := a.identity.Register(context.Background(), &model.RegisterInput{
		Username:        username,
		Password:        "pw-" + username,
		ConfirmPassword: "pw-" + username,
		Role:            role,
		FullName:        "Name of " + username,
	})
	require.NoError(t, err)
	return model.Identity{Username: username, Role: role}
}

// withStudent registers t1 and p1 and enrols s1 in grade 5.
func (a *app) withStudent(t *testing.T) (model.Identity, model.Identity) {
	t.Helper()
	t1 := a.register(t, "t1", model.RoleTeacher)
	p1 := a.register(t, "p1", model.RoleParent)
	_, err := a.roster.AddStudent(context.Background(), t1, &model.AddStudentInput{
		StudentId: "s1", Name: "Ravi", Grade: "5", Teacher: "t1", Parent: "p1",
	})
	require.NoError(t, err)
	return t1, p1
}

func (a *app) upload(t *testing.T, teacher model.Identity, title string, days int) *model.Material {
	t.Helper()
	m, err := a.tracker.UploadMaterial(context.Background(), teacher, &model.UploadMaterialInput{
		StudentId:    "s1",
		Competency:   "Reading",
		Title:        title,
		Payload:      []byte("%PDF-1.4 " + title),
		Filename:     title + ".pdf",
		DurationDays: days,
	})
	require.NoError(t, err)
	return m
}

func TestScenarioDailyProgressWithFeedback(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	t1, p1 := a.withStudent(t)
	material := a.upload(t, t1, "phonics", 3)

	day, err := a.tracker.SetDailyProgress(ctx, p1, &model.SetDailyProgressInput{
		MaterialId: material.MaterialId, StudentId: "s1", Day: 1, Completed: true, Comment: "done early",
	})
	require.NoError(t, err)
	require.NotNil(t, day.CompletedAt)

	_, err = a.tracker.RecordDailyFeedback(ctx, t1, &model.RecordFeedbackInput{
		TargetId: day.DailyProgressId, Body: "great job",
	})
	require.NoError(t, err)

	summary, err := a.tracker.DailyProgressSummary(ctx, p1, "s1")
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.Len(t, summary[0].Days, 1)
	assert.Equal(t, 1, summary[0].Days[0].DayNumber)
	assert.Equal(t, "done early", summary[0].Days[0].Comment)

	feedback, err := a.tracker.DailyFeedbackFor(ctx, p1, day.DailyProgressId)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "great job", feedback[0].Body)
	assert.Equal(t, "t1", feedback[0].Teacher)
}

func TestScenarioDailyProgressUpsertKeepsOneRowPerDay(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	t1, p1 := a.withStudent(t)
	material := a.upload(t, t1, "numbers", 3)

	first, err := a.tracker.SetDailyProgress(ctx, p1, &model.SetDailyProgressInput{
		MaterialId: material.MaterialId, StudentId: "s1", Day: 2, Completed: true, Comment: "first",
	})
	require.NoError(t, err)
	second, err := a.tracker.SetDailyProgress(ctx, p1, &model.SetDailyProgressInput{
		MaterialId: material.MaterialId, StudentId: "s1", Day: 2, Completed: false, Comment: "redo",
	})
	require.NoError(t, err)

	assert.Equal(t, first.DailyProgressId, second.DailyProgressId)
	assert.Nil(t, second.CompletedAt)

	days, err := a.tracker.DailyProgressFor(ctx, t1, material.MaterialId, "s1")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "redo", days[0].Comment)

	_, err = a.tracker.SetDailyProgress(ctx, p1, &model.SetDailyProgressInput{
		MaterialId: material.MaterialId, StudentId: "s1", Day: 4,
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestScenarioAggregateProgressIndependentOfDaily(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	t1, p1 := a.withStudent(t)
	material := a.upload(t, t1, "stories", 2)

	for day := 1; day <= 2; day++ {
		_, err := a.tracker.SetDailyProgress(ctx, p1, &model.SetDailyProgressInput{
			MaterialId: material.MaterialId, StudentId: "s1", Day: day, Completed: true,
		})
		require.NoError(t, err)
	}

	_, err := a.tracker.GetProgress(ctx, p1, "s1", material.MaterialId)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	first, err := a.tracker.SetProgress(ctx, p1, &model.SetProgressInput{
		StudentId: "s1", MaterialId: material.MaterialId, Completed: true,
	})
	require.NoError(t, err)
	again, err := a.tracker.SetProgress(ctx, p1, &model.SetProgressInput{
		StudentId: "s1", MaterialId: material.MaterialId, Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ProgressId, again.ProgressId)

	completed, err := a.tracker.CompletedActivities(ctx, t1, "s1")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "stories", completed[0].Title)

	_, err = a.tracker.RecordFeedback(ctx, t1, &model.RecordFeedbackInput{TargetId: first.ProgressId, Body: "nice"})
	require.NoError(t, err)
	feedback, err := a.tracker.FeedbackFor(ctx, p1, first.ProgressId)
	require.NoError(t, err)
	assert.Len(t, feedback, 1)
}

func TestScenarioLatestAssessmentTieBreak(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	t1, p1 := a.withStudent(t)
	freezeTime(t, fixedNow)

	for _, score := range []int{10, 20, 30} {
		_, err := a.assessments.RecordAssessment(ctx, t1, &model.RecordAssessmentInput{
			StudentId: "s1", Scores: model.Scores{"Reading": score},
		})
		require.NoError(t, err)
	}

	latest, err := a.assessments.LatestAssessment(ctx, p1, "s1")
	require.NoError(t, err)
	assert.Equal(t, 30, latest.Competencies["Reading"])
}

func TestScenarioRosterIntegrity(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	t1, p1 := a.withStudent(t)
	t2 := a.register(t, "t2", model.RoleTeacher)

	_, err := a.identity.Register(ctx, &model.RegisterInput{
		Username: "t1", Password: "x", ConfirmPassword: "x", Role: model.RoleParent, FullName: "Imposter",
	})
	assert.ErrorIs(t, err, errdefs.ErrDuplicateUser)
	role, err := a.identity.Authenticate(ctx, "t1", "pw-t1")
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, role)

	_, err = a.roster.AddStudent(ctx, t1, &model.AddStudentInput{
		StudentId: "s1", Name: "Other", Grade: "3", Teacher: "t1", Parent: "p1",
	})
	assert.ErrorIs(t, err, errdefs.ErrDuplicateStudent)
	student, err := a.roster.GetStudent(ctx, p1, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", student.Name)

	_, err = a.roster.AddStudent(ctx, t2, &model.AddStudentInput{
		StudentId: "s9", Name: "Mira", Grade: "2", Teacher: "t2", Parent: "t1",
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	mine, err := a.roster.ListStudentsFor(ctx, t2)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = a.roster.GetStudent(ctx, t2, "s1")
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestScenarioSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	a.register(t, "p1", model.RoleParent)
	freezeTime(t, fixedNow)

	session, err := a.identity.Login(ctx, &model.LoginInput{Username: "p1", Password: "pw-p1"})
	require.NoError(t, err)

	got, err := a.identity.ValidateSession(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, model.RoleParent, got.Role)

	short, err := a.identity.CreateSession(ctx, "p1", model.RoleParent, 1)
	require.NoError(t, err)

	// a day later the short session is gone, the default one survives
	freezeTime(t, fixedNow.Add(24*time.Hour))
	_, err = a.identity.ValidateSession(ctx, short.SessionId)
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	_, err = a.identity.ValidateSession(ctx, session.SessionId)
	require.NoError(t, err)

	purged, err := a.identity.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, a.identity.DestroySession(ctx, session.SessionId))
	require.NoError(t, a.identity.DestroySession(ctx, session.SessionId))
	_, err = a.identity.ValidateSession(ctx, session.SessionId)
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
}

func TestScenarioRegisterMultibytePassword(t *testing.T) {
	ctx := context.Background()
	a := newApp()

	fits := strings.Repeat("é", 36)
	_, err := a.identity.Register(ctx, &model.RegisterInput{
		Username:        "t1",
		Password:        fits,
		ConfirmPassword: fits,
		Role:            model.RoleTeacher,
		FullName:        "Teacher One",
	})
	require.NoError(t, err)

	role, err := a.identity.Authenticate(ctx, "t1", fits)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, role)

	tooLong := strings.Repeat("é", 40)
	_, err = a.identity.Register(ctx, &model.RegisterInput{
		Username:        "t2",
		Password:        tooLong,
		ConfirmPassword: tooLong,
		Role:            model.RoleTeacher,
		FullName:        "Teacher Two",
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	_, err = a.identity.GetUser(ctx, "t2")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}
