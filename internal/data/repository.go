package data

import "github.com/paani/remedial-learning-app/internal/service"

var (
	_ service.UserRepository          = (*UserRepository)(nil)
	_ service.SessionRepository       = (*SessionRepository)(nil)
	_ service.StudentRepository       = (*StudentRepository)(nil)
	_ service.AssessmentRepository    = (*AssessmentRepository)(nil)
	_ service.MaterialRepository      = (*MaterialRepository)(nil)
	_ service.ProgressRepository      = (*ProgressRepository)(nil)
	_ service.DailyProgressRepository = (*DailyProgressRepository)(nil)
	_ service.FeedbackRepository      = (*FeedbackRepository)(nil)
)
