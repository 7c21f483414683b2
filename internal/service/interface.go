package service

//go:generate mockgen -source=interface.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, input *model.RepositoryCreateSessionInput) (*model.Session, error)
	GetSession(ctx context.Context, sessionId string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionId string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type StudentRepository interface {
	CreateStudent(ctx context.Context, input *model.RepositoryCreateStudentInput) (*model.Student, error)
	GetStudent(ctx context.Context, studentId string) (*model.Student, error)
	// ListStudents Leave teacher or parent empty to ignore that filter
	ListStudents(ctx context.Context, teacher string, parent string) ([]*model.Student, error)
}

type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, input *model.RepositoryCreateAssessmentInput) (*model.Assessment, error)
	GetLatestAssessment(ctx context.Context, studentId string) (*model.Assessment, error)
}

type MaterialRepository interface {
	CreateMaterial(ctx context.Context, input *model.RepositoryCreateMaterialInput) (*model.Material, error)
	GetMaterial(ctx context.Context, materialId uuid.UUID) (*model.Material, error)
	GetMaterialFile(ctx context.Context, materialId uuid.UUID) (*model.MaterialFile, error)
	ListMaterials(ctx context.Context, studentId string) ([]*model.Material, error)
}

type ProgressRepository interface {
	UpsertProgress(ctx context.Context, input *model.RepositoryUpsertProgressInput) (*model.Progress, error)
	GetProgress(ctx context.Context, studentId string, materialId uuid.UUID) (*model.Progress, error)
	GetProgressById(ctx context.Context, progressId uuid.UUID) (*model.Progress, error)
	ListStudentProgress(ctx context.Context, studentId string, completedOnly bool) ([]*model.ProgressEntry, error)
}

type DailyProgressRepository interface {
	UpsertDailyProgress(ctx context.Context, input *model.RepositoryUpsertDailyProgressInput) (*model.DailyProgress, error)
	GetDailyProgressById(ctx context.Context, dailyProgressId uuid.UUID) (*model.DailyProgress, error)
	ListDailyProgress(ctx context.Context, materialId uuid.UUID, studentId string) ([]*model.DailyProgress, error)
	ListDailySummary(ctx context.Context, studentId string) ([]*model.DailySummaryRow, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error)
	ListFeedback(ctx context.Context, progressId uuid.UUID) ([]*model.Feedback, error)
	CreateDailyFeedback(ctx context.Context, input *model.RepositoryCreateFeedbackInput) (*model.Feedback, error)
	ListDailyFeedback(ctx context.Context, dailyProgressId uuid.UUID) ([]*model.Feedback, error)
}

type SessionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash string, plain string) bool
}
