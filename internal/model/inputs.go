package model

import "github.com/google/uuid"

type RegisterInput struct {
	Username        string `json:"username" validate:"notblank,max=64"`
	Password        string `json:"password" validate:"notblank,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"notblank,eqfield=Password"`
	Role            Role   `json:"role" validate:"oneof=teacher parent"`
	FullName        string `json:"full_name" validate:"notblank,max=200"`
}

type LoginInput struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	// Role is the role the caller claims; empty accepts the stored one.
	Role Role `json:"role" validate:"omitempty,oneof=teacher parent"`
}

type AddStudentInput struct {
	StudentId string `json:"student_id" validate:"notblank,max=64"`
	Name      string `json:"name" validate:"notblank,max=200"`
	Grade     string `json:"grade" validate:"notblank"`
	Teacher   string `json:"teacher" validate:"notblank"`
	Parent    string `json:"parent" validate:"notblank"`
}

type RecordAssessmentInput struct {
	StudentId string `json:"student_id" validate:"notblank"`
	Scores    Scores `json:"competencies" validate:"min=1,dive,keys,notblank,endkeys,min=0,max=100"`
	Notes     string `json:"notes"`
}

type UploadMaterialInput struct {
	StudentId    string `json:"student_id" validate:"notblank"`
	Competency   string `json:"competency" validate:"notblank"`
	Title        string `json:"title" validate:"notblank,max=200"`
	Description  string `json:"description"`
	Payload      []byte `json:"-" validate:"min=1"`
	Filename     string `json:"filename" validate:"notblank"`
	DurationDays int    `json:"duration_days" validate:"min=1,max=30"`
}

type SetProgressInput struct {
	StudentId  string    `json:"student_id" validate:"notblank"`
	MaterialId uuid.UUID `json:"material_id" validate:"required"`
	Completed  bool      `json:"completed"`
}

type SetDailyProgressInput struct {
	MaterialId uuid.UUID `json:"material_id" validate:"required"`
	StudentId  string    `json:"student_id" validate:"notblank"`
	Day        int       `json:"day_number" validate:"min=1"`
	Completed  bool      `json:"completed"`
	Comment    string    `json:"comment" validate:"max=2000"`
}

type RecordFeedbackInput struct {
	TargetId uuid.UUID `json:"target_id" validate:"required"`
	Body     string    `json:"body" validate:"notblank,max=4000"`
}
