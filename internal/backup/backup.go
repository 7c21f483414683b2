// Package backup dumps every relation except sessions into one JSON file.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/data"
	"github.com/paani/remedial-learning-app/internal/model"
)

const fileLayout = "backup_20060102_150405.json"

type UserRow struct {
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"password_hash"`
	Role         model.Role `db:"role" json:"role"`
	FullName     string     `db:"full_name" json:"full_name"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type AssessmentRow struct {
	AssessmentId uuid.UUID    `db:"assessment_id" json:"assessment_id"`
	Seq          int64        `db:"seq" json:"seq"`
	StudentId    string       `db:"student_id" json:"student_id"`
	Teacher      string       `db:"teacher" json:"teacher"`
	Competencies model.Scores `db:"competencies" json:"competencies"`
	Notes        string       `db:"notes" json:"notes"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

type MaterialRow struct {
	MaterialId   uuid.UUID `db:"material_id" json:"material_id"`
	StudentId    string    `db:"student_id" json:"student_id"`
	Teacher      string    `db:"teacher" json:"teacher"`
	Competency   string    `db:"competency" json:"competency"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	FileData     []byte    `db:"file_data" json:"file_data"`
	Filename     string    `db:"filename" json:"filename"`
	DurationDays int       `db:"duration_days" json:"duration_days"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

type FeedbackRow struct {
	FeedbackId uuid.UUID `db:"feedback_id" json:"feedback_id"`
	Seq        int64     `db:"seq" json:"seq"`
	TargetId   uuid.UUID `db:"target_id" json:"target_id"`
	Teacher    string    `db:"teacher" json:"teacher"`
	StudentId  string    `db:"student_id" json:"student_id"`
	Body       string    `db:"body" json:"body"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Snapshot struct {
	TakenAt       time.Time              `json:"taken_at"`
	Users         []*UserRow             `json:"users"`
	Students      []*model.Student       `json:"students"`
	Assessments   []*AssessmentRow       `json:"assessments"`
	Materials     []*MaterialRow         `json:"materials"`
	Progress      []*model.Progress      `json:"progress"`
	Feedback      []*FeedbackRow         `json:"feedback"`
	DailyProgress []*model.DailyProgress `json:"daily_progress"`
	DailyFeedback []*FeedbackRow         `json:"daily_feedback"`
}

type Exporter struct {
	db  data.Querier
	now func() time.Time
}

func NewExporter(db data.Querier) *Exporter {
	return &Exporter{db: db, now: time.Now}
}

func (e *Exporter) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: e.now().UTC()}

	steps := []struct {
		table string
		run   func() error
	}{
		{"users", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Users, `
SELECT username, password_hash, role, full_name, created_at FROM users ORDER BY username`)
		}},
		{"students", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Students, `
SELECT student_id, name, grade, teacher, parent, created_at FROM students ORDER BY student_id`)
		}},
		{"assessments", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Assessments, `
SELECT assessment_id, seq, student_id, teacher, competencies, notes, created_at FROM assessments ORDER BY seq`)
		}},
		{"materials", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Materials, `
SELECT material_id, student_id, teacher, competency, title, description, file_data, filename, duration_days, uploaded_at
FROM materials ORDER BY uploaded_at, material_id`)
		}},
		{"progress", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Progress, `
SELECT progress_id, student_id, material_id, parent, completed, completed_at, updated_at
FROM progress ORDER BY updated_at, progress_id`)
		}},
		{"feedback", func() error {
			return pgxscan.Select(ctx, e.db, &snap.Feedback, `
SELECT feedback_id, seq, progress_id AS target_id, teacher, student_id, body, created_at FROM feedback ORDER BY seq`)
		}},
		{"daily_progress", func() error {
			return pgxscan.Select(ctx, e.db, &snap.DailyProgress, `
SELECT daily_progress_id, material_id, student_id, parent, day_number, completed, comment, completed_at, updated_at
FROM daily_progress ORDER BY material_id, student_id, day_number`)
		}},
		{"daily_feedback", func() error {
			return pgxscan.Select(ctx, e.db, &snap.DailyFeedback, `
SELECT daily_feedback_id AS feedback_id, seq, daily_progress_id AS target_id, teacher, student_id, body, created_at
FROM daily_feedback ORDER BY seq`)
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("backup %s: %w", step.table, err)
		}
	}
	return snap, nil
}

// WriteFile stores a snapshot in dir and returns the file path.
func (e *Exporter) WriteFile(ctx context.Context, dir string) (string, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	path := filepath.Join(dir, snap.TakenAt.Format(fileLayout))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
