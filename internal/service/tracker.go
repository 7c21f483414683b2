package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/validation"
)

var allowedExtensions = map[string]bool{
	".pdf": true,
}

type TrackerService struct {
	students  StudentRepository
	materials MaterialRepository
	progress  ProgressRepository
	daily     DailyProgressRepository
	feedback  FeedbackRepository
}

func NewTrackerService(
	students StudentRepository,
	materials MaterialRepository,
	progress ProgressRepository,
	daily DailyProgressRepository,
	feedback FeedbackRepository,
) *TrackerService {
	return &TrackerService{
		students:  students,
		materials: materials,
		progress:  progress,
		daily:     daily,
		feedback:  feedback,
	}
}

func (s *TrackerService) UploadMaterial(ctx context.Context, actor model.Identity, input *model.UploadMaterialInput) (*model.Material, error) {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	extension := strings.ToLower(path.Ext(input.Filename))
	if !allowedExtensions[extension] {
		return nil, fmt.Errorf("file extension %q not allowed: %w", extension, errdefs.ErrValidation)
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

	return s.materials.CreateMaterial(ctx, &model.RepositoryCreateMaterialInput{
		MaterialId:   id,
		StudentId:    student.StudentId,
		Teacher:      actor.Username,
		Competency:   input.Competency,
		Title:        input.Title,
		Description:  input.Description,
		FileData:     input.Payload,
		Filename:     input.Filename,
		DurationDays: input.DurationDays,
		UploadedAt:   NowFunc(),
	})
}

func (s *TrackerService) ListMaterials(ctx context.Context, actor model.Identity, studentId string) ([]*model.Material, error) {
	if _, err := s.accessibleStudent(ctx, actor, studentId); err != nil {
		return nil, err
	}

	materials, err := s.materials.ListMaterials(ctx, studentId)
	if err != nil {
		return nil, err
	}
	if materials == nil {
		materials = []*model.Material{}
	}
	return materials, nil
}

func (s *TrackerService) GetMaterialFile(ctx context.Context, actor model.Identity, materialId uuid.UUID) (*model.MaterialFile, error) {
	if err := ensureAuthenticated(actor); err != nil {
		return nil, err
	}

	file, err := s.materials.GetMaterialFile(ctx, materialId)
	if err != nil {
		return nil, err
	}
	if _, err := s.accessibleStudent(ctx, actor, file.StudentId); err != nil {
		return nil, err
	}

	return file, nil
}

// SetProgress replaces the parent's record for one material. It does not
// touch the per-day track.
func (s *TrackerService) SetProgress(ctx context.Context, actor model.Identity, input *model.SetProgressInput) (*model.Progress, error) {
	if err := ensureRole(actor, model.RoleParent); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student, err := loadStudent(ctx, s.students, input.StudentId)
	if err != nil {
		return nil, err
	}
	if err := ensureParentOf(actor, student); err != nil {
		return nil, err
	}
	if _, err := s.studentMaterial(ctx, student.StudentId, input.MaterialId); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := NowFunc()

	return s.progress.UpsertProgress(ctx, &model.RepositoryUpsertProgressInput{
		ProgressId:  id,
		StudentId:   student.StudentId,
		MaterialId:  input.MaterialId,
		Parent:      actor.Username,
		Completed:   input.Completed,
		CompletedAt: completedAt(input.Completed, now),
		UpdatedAt:   now,
	})
}

func (s *TrackerService) GetProgress(ctx context.Context, actor model.Identity, studentId string, materialId uuid.UUID) (*model.Progress, error) {
	if _, err := s.accessibleStudent(ctx, actor, studentId); err != nil {
		return nil, err
	}
	return s.progress.GetProgress(ctx, studentId, materialId)
}

func (s *TrackerService) ListStudentProgress(ctx context.Context, actor model.Identity, studentId string) ([]*model.ProgressEntry, error) {
	return s.listProgress(ctx, actor, studentId, false)
}

func (s *TrackerService) CompletedActivities(ctx context.Context, actor model.Identity, studentId string) ([]*model.ProgressEntry, error) {
	return s.listProgress(ctx, actor, studentId, true)
}

func (s *TrackerService) listProgress(ctx context.Context, actor model.Identity, studentId string, completedOnly bool) ([]*model.ProgressEntry, error) {
	if _, err := s.accessibleStudent(ctx, actor, studentId); err != nil {
		return nil, err
	}

	entries, err := s.progress.ListStudentProgress(ctx, studentId, completedOnly)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.ProgressEntry{}
	}
	return entries, nil
}

func (s *TrackerService) SetDailyProgress(ctx context.Context, actor model.Identity, input *model.SetDailyProgressInput) (*model.DailyProgress, error) {
	if err := ensureRole(actor, model.RoleParent); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student, err := loadStudent(ctx, s.students, input.StudentId)
	if err != nil {
		return nil, err
	}
	if err := ensureParentOf(actor, student); err != nil {
		return nil, err
	}
	material, err := s.studentMaterial(ctx, student.StudentId, input.MaterialId)
	if err != nil {
		return nil, err
	}
	if input.Day < 1 || input.Day > material.DurationDays {
		return nil, fmt.Errorf("day %d outside 1..%d: %w", input.Day, material.DurationDays, errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := NowFunc()

	return s.daily.UpsertDailyProgress(ctx, &model.RepositoryUpsertDailyProgressInput{
		DailyProgressId: id,
		MaterialId:      material.MaterialId,
		StudentId:       student.StudentId,
		Parent:          actor.Username,
		DayNumber:       input.Day,
		Completed:       input.Completed,
		Comment:         input.Comment,
		CompletedAt:     completedAt(input.Completed, now),
		UpdatedAt:       now,
	})
}

// DailyProgressFor returns one row per reported day, ordered by day.
func (s *TrackerService) DailyProgressFor(ctx context.Context, actor model.Identity, materialId uuid.UUID, studentId string) ([]*model.DailyProgress, error) {
	if _, err := s.accessibleStudent(ctx, actor, studentId); err != nil {
		return nil, err
	}

	days, err := s.daily.ListDailyProgress(ctx, materialId, studentId)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []*model.DailyProgress{}
	}
	return days, nil
}

// DailyProgressSummary groups daily rows by material, newest upload first.
// Materials without any reported day are left out.
func (s *TrackerService) DailyProgressSummary(ctx context.Context, actor model.Identity, studentId string) ([]*model.MaterialDailySummary, error) {
	if _, err := s.accessibleStudent(ctx, actor, studentId); err != nil {
		return nil, err
	}

	rows, err := s.daily.ListDailySummary(ctx, studentId)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.MaterialDailySummary, 0)
	var current *model.MaterialDailySummary
	for _, row := range rows {
		if current == nil || current.MaterialId != row.MaterialId {
			current = &model.MaterialDailySummary{
				MaterialId:   row.MaterialId,
				Title:        row.Title,
				Competency:   row.Competency,
				DurationDays: row.DurationDays,
				UploadedAt:   row.UploadedAt,
			}
			summaries = append(summaries, current)
		}
		current.Days = append(current.Days, &model.DailyProgress{
			DailyProgressId: row.DailyProgressId,
			MaterialId:      row.MaterialId,
			StudentId:       studentId,
			Parent:          row.Parent,
			DayNumber:       row.DayNumber,
			Completed:       row.Completed,
			Comment:         row.Comment,
			CompletedAt:     row.CompletedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return summaries, nil
}

func (s *TrackerService) RecordFeedback(ctx context.Context, actor model.Identity, input *model.RecordFeedbackInput) (*model.Feedback, error) {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	progress, err := s.progress.GetProgressById(ctx, input.TargetId)
	if err != nil {
		return nil, err
	}

	return s.appendFeedback(ctx, actor, progress.StudentId, input, s.feedback.CreateFeedback)
}

func (s *TrackerService) RecordDailyFeedback(ctx context.Context, actor model.Identity, input *model.RecordFeedbackInput) (*model.Feedback, error) {
	if err := ensureRole(actor, model.RoleTeacher); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	day, err := s.daily.GetDailyProgressById(ctx, input.TargetId)
	if err != nil {
		return nil, err
	}

	return s.appendFeedback(ctx, actor, day.StudentId, input, s.feedback.CreateDailyFeedback)
}

// FeedbackFor lists feedback on an aggregate progress row, newest first.
func (s *TrackerService) FeedbackFor(ctx context.Context, actor model.Identity, progressId uuid.UUID) ([]*model.Feedback, error) {
	if err := ensureAuthenticated(actor); err != nil {
		return nil, err
	}

	progress, err := s.progress.GetProgressById(ctx, progressId)
	if err != nil {
		return nil, err
	}
	if _, err := s.accessibleStudent(ctx, actor, progress.StudentId); err != nil {
		return nil, err
	}

	return nonNilFeedback(s.feedback.ListFeedback(ctx, progressId))
}

func (s *TrackerService) DailyFeedbackFor(ctx context.Context, actor model.Identity, dailyProgressId uuid.UUID) ([]*model.Feedback, error) {
	if err := ensureAuthenticated(actor); err != nil {
		return nil, err
	}

	day, err := s.daily.GetDailyProgressById(ctx, dailyProgressId)
	if err != nil {
		return nil, err
	}
	if _, err := s.accessibleStudent(ctx, actor, day.StudentId); err != nil {
		return nil, err
	}

	return nonNilFeedback(s.feedback.ListDailyFeedback(ctx, dailyProgressId))
}

type createFeedbackFunc func(ctx context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error)

func (s *TrackerService) appendFeedback(
	ctx context.Context,
	actor model.Identity,
	studentId string,
	input *model.RecordFeedbackInput,
	create createFeedbackFunc,
) (*model.Feedback, error) {
	student, err := loadStudent(ctx, s.students, studentId)
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

	return create(ctx, &model.RepositoryCreateFeedbackInput{
		FeedbackId: id,
		TargetId:   input.TargetId,
		Teacher:    actor.Username,
		StudentId:  student.StudentId,
		Body:       input.Body,
		CreatedAt:  NowFunc(),
	})
}

func (s *TrackerService) accessibleStudent(ctx context.Context, actor model.Identity, studentId string) (*model.Student, error) {
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

func (s *TrackerService) studentMaterial(ctx context.Context, studentId string, materialId uuid.UUID) (*model.Material, error) {
	material, err := s.materials.GetMaterial(ctx, materialId)
	if err != nil {
		return nil, err
	}
	if material.StudentId != studentId {
		return nil, fmt.Errorf("material %s is not assigned to %s: %w", materialId, studentId, errdefs.ErrValidation)
	}
	return material, nil
}

func completedAt(completed bool, now time.Time) *time.Time {
	if !completed {
		return nil
	}
	return &now
}

func nonNilFeedback(list []*model.Feedback, err error) ([]*model.Feedback, error) {
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*model.Feedback{}
	}
	return list, nil
}
