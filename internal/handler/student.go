package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paani/remedial-learning-app/internal/model"
)

type RosterService interface {
	AddStudent(ctx context.Context, actor model.Identity, input *model.AddStudentInput) (*model.Student, error)
	ListStudentsFor(ctx context.Context, actor model.Identity) ([]*model.Student, error)
	GetStudent(ctx context.Context, actor model.Identity, studentId string) (*model.Student, error)
}

type AssessmentService interface {
	RecordAssessment(ctx context.Context, actor model.Identity, input *model.RecordAssessmentInput) (*model.Assessment, error)
	LatestAssessment(ctx context.Context, actor model.Identity, studentId string) (*model.Assessment, error)
	Competencies(grade string) ([]string, error)
}

type StudentHandler struct {
	roster      RosterService
	assessments AssessmentService
}

func NewStudentHandler(roster RosterService, assessments AssessmentService) *StudentHandler {
	return &StudentHandler{roster: roster, assessments: assessments}
}

func (h *StudentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/competencies", h.Competencies)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/students", h.ListStudents)
		r.Post("/students", h.AddStudent)
		r.Get("/students/{id}", h.GetStudent)
		r.Post("/students/{id}/assessments", h.RecordAssessment)
		r.Get("/students/{id}/assessments/latest", h.LatestAssessment)
	})
}

func (h *StudentHandler) Competencies(w http.ResponseWriter, r *http.Request) {
	list, err := h.assessments.Competencies(r.URL.Query().Get("grade"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"competencies": list})
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.roster.ListStudentsFor(r.Context(), actorFrom(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	var input model.AddStudentInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if input.Teacher == "" {
		input.Teacher = actor.Username
	}

	student, err := h.roster.AddStudent(r.Context(), actor, &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	student, err := h.roster.GetStudent(r.Context(), actorFrom(r), studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) RecordAssessment(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var input model.RecordAssessmentInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}
	input.StudentId = studentId

	assessment, err := h.assessments.RecordAssessment(r.Context(), actorFrom(r), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, assessment)
}

func (h *StudentHandler) LatestAssessment(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	assessment, err := h.assessments.LatestAssessment(r.Context(), actorFrom(r), studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}
