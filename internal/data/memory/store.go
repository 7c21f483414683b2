// Package memory is a process-local store implementing every repository
// interface of the service package. One RWMutex serialises writers.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
)

type progressKey struct {
	studentId  string
	materialId uuid.UUID
}

type dailyKey struct {
	materialId uuid.UUID
	studentId  string
	day        int
}

type materialRow struct {
	material model.Material
	data     []byte
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	seq int64

	users         map[string]model.User
	sessions      map[string]model.Session
	students      map[string]model.Student
	assessments   []model.Assessment
	materials     map[uuid.UUID]materialRow
	progress      map[progressKey]model.Progress
	dailyProgress map[dailyKey]model.DailyProgress
	feedback      []model.Feedback
	dailyFeedback []model.Feedback
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		users:         make(map[string]model.User),
		sessions:      make(map[string]model.Session),
		students:      make(map[string]model.Student),
		materials:     make(map[uuid.UUID]materialRow),
		progress:      make(map[progressKey]model.Progress),
		dailyProgress: make(map[dailyKey]model.DailyProgress),
	}
}

func constraintError(format string, args ...any) error {
	return fmt.Errorf("constraint violated: %s: %w", fmt.Sprintf(format, args...), errdefs.ErrValidation)
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Store) CreateUser(_ context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[input.Username]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	user := model.User{
		Username:     input.Username,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		FullName:     input.FullName,
		CreatedAt:    s.now(),
	}
	s.users[user.Username] = user
	return &user, nil
}

func (s *Store) GetUser(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &user, nil
}

func (s *Store) CreateSession(_ context.Context, input *model.RepositoryCreateSessionInput) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[input.SessionId]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	if _, ok := s.users[input.Username]; !ok {
		return nil, constraintError("unknown user %q", input.Username)
	}
	if !input.ExpiresAt.After(input.CreatedAt) {
		return nil, constraintError("session expires before it is created")
	}
	session := model.Session{
		SessionId: input.SessionId,
		Username:  input.Username,
		Role:      input.Role,
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	}
	s.sessions[session.SessionId] = session
	return &session, nil
}

func (s *Store) GetSession(_ context.Context, sessionId string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionId]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &session, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionId)
	return nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) CreateStudent(_ context.Context, input *model.RepositoryCreateStudentInput) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[input.StudentId]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	if _, ok := s.users[input.Teacher]; !ok {
		return nil, constraintError("unknown teacher %q", input.Teacher)
	}
	if _, ok := s.users[input.Parent]; !ok {
		return nil, constraintError("unknown parent %q", input.Parent)
	}
	student := model.Student{
		StudentId: input.StudentId,
		Name:      input.Name,
		Grade:     input.Grade,
		Teacher:   input.Teacher,
		Parent:    input.Parent,
		CreatedAt: s.now(),
	}
	s.students[student.StudentId] = student
	return &student, nil
}

func (s *Store) GetStudent(_ context.Context, studentId string) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[studentId]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &student, nil
}

func (s *Store) ListStudents(_ context.Context, teacher string, parent string) ([]*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Student
	for _, student := range s.students {
		if teacher != "" && student.Teacher != teacher {
			continue
		}
		if parent != "" && student.Parent != parent {
			continue
		}
		st := student
		out = append(out, &st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentId < out[j].StudentId })
	return out, nil
}

func (s *Store) CreateAssessment(_ context.Context, input *model.RepositoryCreateAssessmentInput) (*model.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.assessments {
		if a.AssessmentId == input.AssessmentId {
			return nil, errdefs.ErrAlreadyExists
		}
	}
	if _, ok := s.students[input.StudentId]; !ok {
		return nil, constraintError("unknown student %q", input.StudentId)
	}
	a := model.Assessment{
		AssessmentId: input.AssessmentId,
		Seq:          s.nextSeq(),
		StudentId:    input.StudentId,
		Teacher:      input.Teacher,
		Competencies: maps.Clone(input.Competencies),
		Notes:        input.Notes,
		CreatedAt:    input.CreatedAt,
	}
	s.assessments = append(s.assessments, a)
	return copyAssessment(a), nil
}

func (s *Store) GetLatestAssessment(_ context.Context, studentId string) (*model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.Assessment
	for i := range s.assessments {
		a := &s.assessments[i]
		if a.StudentId != studentId {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) ||
			(a.CreatedAt.Equal(latest.CreatedAt) && a.Seq > latest.Seq) {
			latest = a
		}
	}
	if latest == nil {
		return nil, errdefs.ErrNotFound
	}
	return copyAssessment(*latest), nil
}

func copyAssessment(a model.Assessment) *model.Assessment {
	a.Competencies = maps.Clone(a.Competencies)
	return &a
}

func (s *Store) CreateMaterial(_ context.Context, input *model.RepositoryCreateMaterialInput) (*model.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[input.MaterialId]; ok {
		return nil, errdefs.ErrAlreadyExists
	}
	if _, ok := s.students[input.StudentId]; !ok {
		return nil, constraintError("unknown student %q", input.StudentId)
	}
	if input.DurationDays < 1 || input.DurationDays > 30 {
		return nil, constraintError("duration_days %d", input.DurationDays)
	}
	m := model.Material{
		MaterialId:   input.MaterialId,
		StudentId:    input.StudentId,
		Teacher:      input.Teacher,
		Competency:   input.Competency,
		Title:        input.Title,
		Description:  input.Description,
		Filename:     input.Filename,
		DurationDays: input.DurationDays,
		UploadedAt:   input.UploadedAt,
	}
	s.materials[m.MaterialId] = materialRow{material: m, data: slices.Clone(input.FileData)}
	return &m, nil
}

func (s *Store) GetMaterial(_ context.Context, materialId uuid.UUID) (*model.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.materials[materialId]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	m := row.material
	return &m, nil
}

func (s *Store) GetMaterialFile(_ context.Context, materialId uuid.UUID) (*model.MaterialFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.materials[materialId]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &model.MaterialFile{
		MaterialId: row.material.MaterialId,
		StudentId:  row.material.StudentId,
		Filename:   row.material.Filename,
		FileData:   slices.Clone(row.data),
	}, nil
}

func (s *Store) ListMaterials(_ context.Context, studentId string) ([]*model.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Material
	for _, row := range s.materials {
		if row.material.StudentId == studentId {
			m := row.material
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}
		return bytes.Compare(out[i].MaterialId[:], out[j].MaterialId[:]) > 0
	})
	return out, nil
}

func (s *Store) UpsertProgress(_ context.Context, input *model.RepositoryUpsertProgressInput) (*model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[input.StudentId]; !ok {
		return nil, constraintError("unknown student %q", input.StudentId)
	}
	if _, ok := s.materials[input.MaterialId]; !ok {
		return nil, constraintError("unknown material %s", input.MaterialId)
	}

	key := progressKey{studentId: input.StudentId, materialId: input.MaterialId}
	id := input.ProgressId
	if existing, ok := s.progress[key]; ok {
		id = existing.ProgressId
	}
	p := model.Progress{
		ProgressId:  id,
		StudentId:   input.StudentId,
		MaterialId:  input.MaterialId,
		Parent:      input.Parent,
		Completed:   input.Completed,
		CompletedAt: copyTime(input.CompletedAt),
		UpdatedAt:   input.UpdatedAt,
	}
	s.progress[key] = p
	return copyProgress(p), nil
}

func (s *Store) GetProgress(_ context.Context, studentId string, materialId uuid.UUID) (*model.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[progressKey{studentId: studentId, materialId: materialId}]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return copyProgress(p), nil
}

func (s *Store) GetProgressById(_ context.Context, progressId uuid.UUID) (*model.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.progress {
		if p.ProgressId == progressId {
			return copyProgress(p), nil
		}
	}
	return nil, errdefs.ErrNotFound
}

func (s *Store) ListStudentProgress(_ context.Context, studentId string, completedOnly bool) ([]*model.ProgressEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		e          *model.ProgressEntry
		uploadedAt time.Time
	}
	var rows []entry
	for _, p := range s.progress {
		if p.StudentId != studentId || (completedOnly && !p.Completed) {
			continue
		}
		m := s.materials[p.MaterialId].material
		rows = append(rows, entry{
			e: &model.ProgressEntry{
				ProgressId:  p.ProgressId,
				MaterialId:  p.MaterialId,
				Completed:   p.Completed,
				CompletedAt: copyTime(p.CompletedAt),
				Title:       m.Title,
				Competency:  m.Competency,
			},
			uploadedAt: m.UploadedAt,
		})
	}
	// completed_at DESC NULLS LAST, then newest material first
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.e.CompletedAt != nil && b.e.CompletedAt == nil:
			return true
		case a.e.CompletedAt == nil && b.e.CompletedAt != nil:
			return false
		case a.e.CompletedAt != nil && !a.e.CompletedAt.Equal(*b.e.CompletedAt):
			return a.e.CompletedAt.After(*b.e.CompletedAt)
		}
		return a.uploadedAt.After(b.uploadedAt)
	})

	out := make([]*model.ProgressEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.e)
	}
	return out, nil
}

func copyProgress(p model.Progress) *model.Progress {
	p.CompletedAt = copyTime(p.CompletedAt)
	return &p
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (s *Store) UpsertDailyProgress(_ context.Context, input *model.RepositoryUpsertDailyProgressInput) (*model.DailyProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[input.StudentId]; !ok {
		return nil, constraintError("unknown student %q", input.StudentId)
	}
	if _, ok := s.materials[input.MaterialId]; !ok {
		return nil, constraintError("unknown material %s", input.MaterialId)
	}
	if input.DayNumber < 1 {
		return nil, constraintError("day_number %d", input.DayNumber)
	}

	key := dailyKey{materialId: input.MaterialId, studentId: input.StudentId, day: input.DayNumber}
	id := input.DailyProgressId
	if existing, ok := s.dailyProgress[key]; ok {
		id = existing.DailyProgressId
	}
	dp := model.DailyProgress{
		DailyProgressId: id,
		MaterialId:      input.MaterialId,
		StudentId:       input.StudentId,
		Parent:          input.Parent,
		DayNumber:       input.DayNumber,
		Completed:       input.Completed,
		Comment:         input.Comment,
		CompletedAt:     copyTime(input.CompletedAt),
		UpdatedAt:       input.UpdatedAt,
	}
	s.dailyProgress[key] = dp
	return copyDaily(dp), nil
}

func (s *Store) GetDailyProgressById(_ context.Context, dailyProgressId uuid.UUID) (*model.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, dp := range s.dailyProgress {
		if dp.DailyProgressId == dailyProgressId {
			return copyDaily(dp), nil
		}
	}
	return nil, errdefs.ErrNotFound
}

func (s *Store) ListDailyProgress(_ context.Context, materialId uuid.UUID, studentId string) ([]*model.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.DailyProgress
	for _, dp := range s.dailyProgress {
		if dp.MaterialId == materialId && dp.StudentId == studentId {
			out = append(out, copyDaily(dp))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayNumber < out[j].DayNumber })
	return out, nil
}

func (s *Store) ListDailySummary(_ context.Context, studentId string) ([]*model.DailySummaryRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.DailySummaryRow
	for _, dp := range s.dailyProgress {
		if dp.StudentId != studentId {
			continue
		}
		m := s.materials[dp.MaterialId].material
		out = append(out, &model.DailySummaryRow{
			MaterialId:      m.MaterialId,
			Title:           m.Title,
			Competency:      m.Competency,
			DurationDays:    m.DurationDays,
			UploadedAt:      m.UploadedAt,
			DailyProgressId: dp.DailyProgressId,
			Parent:          dp.Parent,
			DayNumber:       dp.DayNumber,
			Completed:       dp.Completed,
			Comment:         dp.Comment,
			CompletedAt:     copyTime(dp.CompletedAt),
			UpdatedAt:       dp.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.UploadedAt.Equal(b.UploadedAt) {
			return a.UploadedAt.After(b.UploadedAt)
		}
		if a.MaterialId != b.MaterialId {
			return bytes.Compare(a.MaterialId[:], b.MaterialId[:]) < 0
		}
		return a.DayNumber < b.DayNumber
	})
	return out, nil
}

func copyDaily(dp model.DailyProgress) *model.DailyProgress {
	dp.CompletedAt = copyTime(dp.CompletedAt)
	return &dp
}

func (s *Store) CreateFeedback(_ context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.progress {
		if p.ProgressId == input.TargetId {
			found = true
			break
		}
	}
	if !found {
		return nil, constraintError("unknown progress %s", input.TargetId)
	}
	fb := s.newFeedback(input)
	s.feedback = append(s.feedback, fb)
	return &fb, nil
}

func (s *Store) ListFeedback(_ context.Context, progressId uuid.UUID) ([]*model.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.feedback, progressId), nil
}

func (s *Store) CreateDailyFeedback(_ context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, dp := range s.dailyProgress {
		if dp.DailyProgressId == input.TargetId {
			found = true
			break
		}
	}
	if !found {
		return nil, constraintError("unknown daily progress %s", input.TargetId)
	}
	fb := s.newFeedback(input)
	s.dailyFeedback = append(s.dailyFeedback, fb)
	return &fb, nil
}

func (s *Store) ListDailyFeedback(_ context.Context, dailyProgressId uuid.UUID) ([]*model.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.dailyFeedback, dailyProgressId), nil
}

func (s *Store) newFeedback(input *model.RepositoryCreateFeedbackInput) model.Feedback {
	return model.Feedback{
		FeedbackId: input.FeedbackId,
		Seq:        s.nextSeq(),
		TargetId:   input.TargetId,
		Teacher:    input.Teacher,
		StudentId:  input.StudentId,
		Body:       input.Body,
		CreatedAt:  input.CreatedAt,
	}
}

func newestFirst(all []model.Feedback, target uuid.UUID) []*model.Feedback {
	var out []*model.Feedback
	for _, fb := range all {
		if fb.TargetId == target {
			f := fb
			out = append(out, &f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out
}
