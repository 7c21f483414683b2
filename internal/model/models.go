package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleTeacher || r == RoleParent
}

// Identity is the caller of a core operation. It is always passed explicitly.
type Identity struct {
	Username string
	Role     Role
}

type User struct {
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	FullName     string    `db:"full_name" json:"full_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type UserPublic struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

type Session struct {
	SessionId string    `db:"session_id" json:"session_id"`
	Username  string    `db:"username" json:"username"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

func (s *Session) Identity() Identity {
	return Identity{Username: s.Username, Role: s.Role}
}

func (s *Session) ActiveAt(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

type Student struct {
	StudentId string    `db:"student_id" json:"student_id"`
	Name      string    `db:"name" json:"name"`
	Grade     string    `db:"grade" json:"grade"`
	Teacher   string    `db:"teacher" json:"teacher"`
	Parent    string    `db:"parent" json:"parent"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Scores maps competency name to a score in [0, 100].
type Scores map[string]int

type Assessment struct {
	AssessmentId uuid.UUID `db:"assessment_id" json:"assessment_id"`
	Seq          int64     `db:"seq" json:"-"`
	StudentId    string    `db:"student_id" json:"student_id"`
	Teacher      string    `db:"teacher" json:"teacher"`
	Competencies Scores    `db:"competencies" json:"competencies"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Material struct {
	MaterialId   uuid.UUID `db:"material_id" json:"material_id"`
	StudentId    string    `db:"student_id" json:"student_id"`
	Teacher      string    `db:"teacher" json:"teacher"`
	Competency   string    `db:"competency" json:"competency"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Filename     string    `db:"filename" json:"filename"`
	DurationDays int       `db:"duration_days" json:"duration_days"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

type MaterialFile struct {
	MaterialId uuid.UUID `db:"material_id"`
	StudentId  string    `db:"student_id"`
	Filename   string    `db:"filename"`
	FileData   []byte    `db:"file_data"`
}

type Progress struct {
	ProgressId  uuid.UUID  `db:"progress_id" json:"progress_id"`
	StudentId   string     `db:"student_id" json:"student_id"`
	MaterialId  uuid.UUID  `db:"material_id" json:"material_id"`
	Parent      string     `db:"parent" json:"parent"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// ProgressEntry is a progress row joined with the material it tracks.
type ProgressEntry struct {
	ProgressId  uuid.UUID  `db:"progress_id" json:"progress_id"`
	MaterialId  uuid.UUID  `db:"material_id" json:"material_id"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	Title       string     `db:"title" json:"title"`
	Competency  string     `db:"competency" json:"competency"`
}

type DailyProgress struct {
	DailyProgressId uuid.UUID  `db:"daily_progress_id" json:"daily_progress_id"`
	MaterialId      uuid.UUID  `db:"material_id" json:"material_id"`
	StudentId       string     `db:"student_id" json:"student_id"`
	Parent          string     `db:"parent" json:"parent"`
	DayNumber       int        `db:"day_number" json:"day_number"`
	Completed       bool       `db:"completed" json:"completed"`
	Comment         string     `db:"comment" json:"comment"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

type Feedback struct {
	FeedbackId uuid.UUID `db:"feedback_id" json:"feedback_id"`
	Seq        int64     `db:"seq" json:"-"`
	TargetId   uuid.UUID `db:"target_id" json:"target_id"`
	Teacher    string    `db:"teacher" json:"teacher"`
	StudentId  string    `db:"student_id" json:"student_id"`
	Body       string    `db:"body" json:"body"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DailySummaryRow is one daily progress row with its material metadata.
type DailySummaryRow struct {
	MaterialId      uuid.UUID  `db:"material_id"`
	Title           string     `db:"title"`
	Competency      string     `db:"competency"`
	DurationDays    int        `db:"duration_days"`
	UploadedAt      time.Time  `db:"uploaded_at"`
	DailyProgressId uuid.UUID  `db:"daily_progress_id"`
	Parent          string     `db:"parent"`
	DayNumber       int        `db:"day_number"`
	Completed       bool       `db:"completed"`
	Comment         string     `db:"comment"`
	CompletedAt     *time.Time `db:"completed_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type MaterialDailySummary struct {
	MaterialId   uuid.UUID        `json:"material_id"`
	Title        string           `json:"title"`
	Competency   string           `json:"competency"`
	DurationDays int              `json:"duration_days"`
	UploadedAt   time.Time        `json:"uploaded_at"`
	Days         []*DailyProgress `json:"days"`
}
