package model

import (
	"time"

	"github.com/google/uuid"
)

type RepositoryCreateUserInput struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         Role   `db:"role"`
	FullName     string `db:"full_name"`
}

type RepositoryCreateSessionInput struct {
	SessionId string    `db:"session_id"`
	Username  string    `db:"username"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type RepositoryCreateStudentInput struct {
	StudentId string `db:"student_id"`
	Name      string `db:"name"`
	Grade     string `db:"grade"`
	Teacher   string `db:"teacher"`
	Parent    string `db:"parent"`
}

type RepositoryCreateAssessmentInput struct {
	AssessmentId uuid.UUID `db:"assessment_id"`
	StudentId    string    `db:"student_id"`
	Teacher      string    `db:"teacher"`
	Competencies Scores    `db:"competencies"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}

type RepositoryCreateMaterialInput struct {
	MaterialId   uuid.UUID `db:"material_id"`
	StudentId    string    `db:"student_id"`
	Teacher      string    `db:"teacher"`
	Competency   string    `db:"competency"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	FileData     []byte    `db:"file_data"`
	Filename     string    `db:"filename"`
	DurationDays int       `db:"duration_days"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

type RepositoryUpsertProgressInput struct {
	ProgressId  uuid.UUID  `db:"progress_id"`
	StudentId   string     `db:"student_id"`
	MaterialId  uuid.UUID  `db:"material_id"`
	Parent      string     `db:"parent"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type RepositoryUpsertDailyProgressInput struct {
	DailyProgressId uuid.UUID  `db:"daily_progress_id"`
	MaterialId      uuid.UUID  `db:"material_id"`
	StudentId       string     `db:"student_id"`
	Parent          string     `db:"parent"`
	DayNumber       int        `db:"day_number"`
	Completed       bool       `db:"completed"`
	Comment         string     `db:"comment"`
	CompletedAt     *time.Time `db:"completed_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type RepositoryCreateFeedbackInput struct {
	FeedbackId uuid.UUID `db:"feedback_id"`
	TargetId   uuid.UUID `db:"target_id"`
	Teacher    string    `db:"teacher"`
	StudentId  string    `db:"student_id"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}
