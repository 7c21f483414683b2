package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
)

const uploadFormField = "file"

type TrackerService interface {
	UploadMaterial(ctx context.Context, actor model.Identity, input *model.UploadMaterialInput) (*model.Material, error)
	ListMaterials(ctx context.Context, actor model.Identity, studentId string) ([]*model.Material, error)
	GetMaterialFile(ctx context.Context, actor model.Identity, materialId uuid.UUID) (*model.MaterialFile, error)
	SetProgress(ctx context.Context, actor model.Identity, input *model.SetProgressInput) (*model.Progress, error)
	GetProgress(ctx context.Context, actor model.Identity, studentId string, materialId uuid.UUID) (*model.Progress, error)
	ListStudentProgress(ctx context.Context, actor model.Identity, studentId string) ([]*model.ProgressEntry, error)
	CompletedActivities(ctx context.Context, actor model.Identity, studentId string) ([]*model.ProgressEntry, error)
	SetDailyProgress(ctx context.Context, actor model.Identity, input *model.SetDailyProgressInput) (*model.DailyProgress, error)
	DailyProgressFor(ctx context.Context, actor model.Identity, materialId uuid.UUID, studentId string) ([]*model.DailyProgress, error)
	DailyProgressSummary(ctx context.Context, actor model.Identity, studentId string) ([]*model.MaterialDailySummary, error)
	RecordFeedback(ctx context.Context, actor model.Identity, input *model.RecordFeedbackInput) (*model.Feedback, error)
	RecordDailyFeedback(ctx context.Context, actor model.Identity, input *model.RecordFeedbackInput) (*model.Feedback, error)
	FeedbackFor(ctx context.Context, actor model.Identity, progressId uuid.UUID) ([]*model.Feedback, error)
	DailyFeedbackFor(ctx context.Context, actor model.Identity, dailyProgressId uuid.UUID) ([]*model.Feedback, error)
}

type MaterialHandler struct {
	tracker        TrackerService
	maxUploadBytes int64
}

func NewMaterialHandler(tracker TrackerService, maxUploadBytes int64) *MaterialHandler {
	return &MaterialHandler{tracker: tracker, maxUploadBytes: maxUploadBytes}
}

func (h *MaterialHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/students/{id}/materials", h.UploadMaterial)
		r.Get("/students/{id}/materials", h.ListMaterials)
		r.Get("/materials/{id}/file", h.DownloadMaterial)

		r.Put("/students/{id}/materials/{material_id}/progress", h.SetProgress)
		r.Get("/students/{id}/materials/{material_id}/progress", h.GetProgress)
		r.Get("/students/{id}/progress", h.ListProgress)
		r.Get("/students/{id}/completed", h.CompletedActivities)

		r.Put("/students/{id}/materials/{material_id}/days/{day}", h.SetDailyProgress)
		r.Get("/students/{id}/materials/{material_id}/days", h.ListDailyProgress)
		r.Get("/students/{id}/daily-summary", h.DailySummary)

		r.Post("/progress/{id}/feedback", h.RecordFeedback)
		r.Get("/progress/{id}/feedback", h.ListFeedback)
		r.Post("/daily-progress/{id}/feedback", h.RecordDailyFeedback)
		r.Get("/daily-progress/{id}/feedback", h.ListDailyFeedback)
	})
}

// UploadMaterial takes a multipart form: the PDF under "file" plus
// competency, title, description and duration_days fields.
func (h *MaterialHandler) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorJSON(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeServiceError(w, r, fmt.Errorf("%w: invalid multipart form", ErrBadRequest))
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: missing file", ErrBadRequest))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: cannot read file", ErrBadRequest))
		return
	}

	days, err := strconv.Atoi(r.FormValue("duration_days"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: duration_days must be an integer", ErrBadRequest))
		return
	}

	material, err := h.tracker.UploadMaterial(r.Context(), actorFrom(r), &model.UploadMaterialInput{
		StudentId:    studentId,
		Competency:   r.FormValue("competency"),
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Payload:      payload,
		Filename:     header.Filename,
		DurationDays: days,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	materials, err := h.tracker.ListMaterials(r.Context(), actorFrom(r), studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *MaterialHandler) DownloadMaterial(w http.ResponseWriter, r *http.Request) {
	materialId, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	file, err := h.tracker.GetMaterialFile(r.Context(), actorFrom(r), materialId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.FileData)))
	w.WriteHeader(http.StatusOK)
	w.Write(file.FileData)
}

type progressBody struct {
	Completed bool `json:"completed"`
}

func (h *MaterialHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	studentId, materialId, err := studentMaterialParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var body progressBody
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}

	progress, err := h.tracker.SetProgress(r.Context(), actorFrom(r), &model.SetProgressInput{
		StudentId:  studentId,
		MaterialId: materialId,
		Completed:  body.Completed,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *MaterialHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	studentId, materialId, err := studentMaterialParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	progress, err := h.tracker.GetProgress(r.Context(), actorFrom(r), studentId, materialId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *MaterialHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	h.listEntries(w, r, h.tracker.ListStudentProgress)
}

func (h *MaterialHandler) CompletedActivities(w http.ResponseWriter, r *http.Request) {
	h.listEntries(w, r, h.tracker.CompletedActivities)
}

func (h *MaterialHandler) listEntries(
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, model.Identity, string) ([]*model.ProgressEntry, error),
) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	entries, err := list(r.Context(), actorFrom(r), studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type dailyProgressBody struct {
	Completed bool   `json:"completed"`
	Comment   string `json:"comment"`
}

func (h *MaterialHandler) SetDailyProgress(w http.ResponseWriter, r *http.Request) {
	studentId, materialId, err := studentMaterialParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	day, err := parseIntParam(r, "day")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var body dailyProgressBody
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}

	dp, err := h.tracker.SetDailyProgress(r.Context(), actorFrom(r), &model.SetDailyProgressInput{
		MaterialId: materialId,
		StudentId:  studentId,
		Day:        day,
		Completed:  body.Completed,
		Comment:    body.Comment,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dp)
}

func (h *MaterialHandler) ListDailyProgress(w http.ResponseWriter, r *http.Request) {
	studentId, materialId, err := studentMaterialParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	days, err := h.tracker.DailyProgressFor(r.Context(), actorFrom(r), materialId, studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *MaterialHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	summary, err := h.tracker.DailyProgressSummary(r.Context(), actorFrom(r), studentId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type feedbackBody struct {
	Body string `json:"body"`
}

func (h *MaterialHandler) RecordFeedback(w http.ResponseWriter, r *http.Request) {
	h.recordFeedback(w, r, h.tracker.RecordFeedback)
}

func (h *MaterialHandler) RecordDailyFeedback(w http.ResponseWriter, r *http.Request) {
	h.recordFeedback(w, r, h.tracker.RecordDailyFeedback)
}

func (h *MaterialHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	h.listFeedback(w, r, h.tracker.FeedbackFor)
}

func (h *MaterialHandler) ListDailyFeedback(w http.ResponseWriter, r *http.Request) {
	h.listFeedback(w, r, h.tracker.DailyFeedbackFor)
}

func (h *MaterialHandler) recordFeedback(
	w http.ResponseWriter,
	r *http.Request,
	record func(context.Context, model.Identity, *model.RecordFeedbackInput) (*model.Feedback, error),
) {
	targetId, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var body feedbackBody
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, err)
		return
	}

	fb, err := record(r.Context(), actorFrom(r), &model.RecordFeedbackInput{TargetId: targetId, Body: body.Body})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *MaterialHandler) listFeedback(
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, model.Identity, uuid.UUID) ([]*model.Feedback, error),
) {
	targetId, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	feedback, err := list(r.Context(), actorFrom(r), targetId)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

func studentMaterialParams(r *http.Request) (string, uuid.UUID, error) {
	studentId, err := parsePathParam(r, "id")
	if err != nil {
		return "", uuid.Nil, err
	}
	materialId, err := parseUUIDParam(r, "material_id")
	if err != nil {
		return "", uuid.Nil, err
	}
	return studentId, materialId, nil
}
