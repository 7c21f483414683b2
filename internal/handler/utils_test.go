package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/validation"
	"github.com/paani/remedial-learning-app/pkg/ctxdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ─────────────────────────────────────────────────────────

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ── mapErr ──────────────────────────────────────────────────────────

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRequest", ErrBadRequest, http.StatusBadRequest},
		{"Validation", fmt.Errorf("day 9: %w", errdefs.ErrValidation), http.StatusBadRequest},
		{"ValidationError", validation.Struct(&model.LoginInput{}), http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"DuplicateUser", errdefs.ErrDuplicateUser, http.StatusConflict},
		{"DuplicateStudent", errdefs.ErrDuplicateStudent, http.StatusConflict},
		{"UnknownError", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

// ── writeErrorJSON / writeServiceError ──────────────────────────────

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "test error", body["error"])
}

func TestWriteServiceErrorHidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/students", nil)

	writeServiceError(w, r, errors.New("repository error: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

// ── request parsing ─────────────────────────────────────────────────

func TestParsePathParam(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "s1")
		val, err := parsePathParam(r, "id")
		require.NoError(t, err)
		assert.Equal(t, "s1", val)
	})

	t.Run("Missing", func(t *testing.T) {
		r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "other", "x")
		_, err := parsePathParam(r, "id")
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestParseUUIDParam(t *testing.T) {
	r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid")
	_, err := parseUUIDParam(r, "id")
	assert.ErrorIs(t, err, ErrBadRequest)

	r = withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "0195a1b2-0000-7000-8000-000000000001")
	id, err := parseUUIDParam(r, "id")
	require.NoError(t, err)
	assert.Equal(t, "0195a1b2-0000-7000-8000-000000000001", id.String())
}

func TestParseIntParam(t *testing.T) {
	r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "day", "two")
	_, err := parseIntParam(r, "day")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDecodeJSON(t *testing.T) {
	var input model.LoginInput
	err := decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &input)
	assert.ErrorIs(t, err, ErrBadRequest)

	err = decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"t1"}`)), &input)
	require.NoError(t, err)
	assert.Equal(t, "t1", input.Username)
}

func TestActorFrom(t *testing.T) {
	ctx := ctxdata.WithUsername(context.Background(), "p1")
	ctx = ctxdata.WithUserRole(ctx, "parent")
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	assert.Equal(t, model.Identity{Username: "p1", Role: model.RoleParent}, actorFrom(r))
	assert.Equal(t, model.Identity{}, actorFrom(httptest.NewRequest(http.MethodGet, "/", nil)))
}
