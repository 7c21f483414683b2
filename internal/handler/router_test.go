package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paani/remedial-learning-app/internal/catalogue"
	"github.com/paani/remedial-learning-app/internal/data/memory"
	"github.com/paani/remedial-learning-app/internal/metrics"
	"github.com/paani/remedial-learning-app/internal/password"
	"github.com/paani/remedial-learning-app/internal/service"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	store := memory.NewStore()
	reg := prometheus.NewRegistry()
	router := NewRouter(RouterConfig{
		Logger:         logging.NewNop(),
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		Identity:       service.NewIdentityService(store, store, password.NewBcryptHasher(bcrypt.MinCost), nil, 0, 7),
		Roster:         service.NewRosterService(store, store),
		Assessments:    service.NewAssessmentService(store, store, catalogue.Default()),
		Tracker:        service.NewTrackerService(store, store, store, store, store),
		MaxUploadBytes: 1 << 20,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv}
}

func (s *testServer) do(method, path, token string, body io.Reader, contentType string) *http.Response {
	s.t.Helper()
	req, err := http.NewRequest(method, s.srv.URL+path, body)
	require.NoError(s.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	s.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) json(method, path, token string, payload any) *http.Response {
	s.t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(s.t, err)
	return s.do(method, path, token, bytes.NewReader(data), "application/json")
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *testServer) login(username string, password string) string {
	s.t.Helper()
	resp := s.json(http.MethodPost, "/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
	return decode[map[string]any](s.t, resp)["session_id"].(string)
}

func (s *testServer) register(username string, role string) {
	s.t.Helper()
	resp := s.json(http.MethodPost, "/auth/register", "", map[string]string{
		"username":         username,
		"password":         "pw",
		"confirm_password": "pw",
		"role":             role,
		"full_name":        "Name " + username,
	})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)
}

func (s *testServer) uploadPDF(token string, filename string, days string) *http.Response {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(s.t, mw.WriteField("competency", "Reading"))
	require.NoError(s.t, mw.WriteField("title", "Phonics"))
	require.NoError(s.t, mw.WriteField("duration_days", days))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(s.t, err)
	_, err = fw.Write([]byte("%PDF-1.4 phonics"))
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	return s.do(http.MethodPost, "/students/s1/materials", token, &buf, mw.FormDataContentType())
}

func TestRouterEndToEnd(t *testing.T) {
	s := newTestServer(t)
	s.register("t1", "teacher")
	s.register("p1", "parent")
	teacher := s.login("t1", "pw")
	parent := s.login("p1", "pw")

	resp := s.json(http.MethodPost, "/students", teacher, map[string]string{
		"student_id": "s1", "name": "Ravi", "grade": "5", "parent": "p1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.uploadPDF(teacher, "phonics.pdf", "3")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	materialId := decode[map[string]any](t, resp)["material_id"].(string)

	resp = s.json(http.MethodPut, "/students/s1/materials/"+materialId+"/days/1", parent, map[string]any{
		"completed": true, "comment": "done early",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dayId := decode[map[string]any](t, resp)["daily_progress_id"].(string)

	resp = s.json(http.MethodPost, "/daily-progress/"+dayId+"/feedback", teacher, map[string]string{"body": "great job"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(http.MethodGet, "/students/s1/daily-summary", parent, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[[]map[string]any](t, resp)
	require.Len(t, summary, 1)
	assert.Len(t, summary[0]["days"], 1)

	resp = s.do(http.MethodGet, "/daily-progress/"+dayId+"/feedback", parent, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	feedback := decode[[]map[string]any](t, resp)
	require.Len(t, feedback, 1)
	assert.Equal(t, "great job", feedback[0]["body"])

	resp = s.do(http.MethodGet, "/materials/"+materialId+"/file?session="+parent, "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "phonics.pdf")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 phonics", string(data))
}

func TestRouterErrors(t *testing.T) {
	s := newTestServer(t)
	s.register("t1", "teacher")
	s.register("p1", "parent")
	teacher := s.login("t1", "pw")

	t.Run("DuplicateRegistration", func(t *testing.T) {
		resp := s.json(http.MethodPost, "/auth/register", "", map[string]string{
			"username": "t1", "password": "x", "confirm_password": "x", "role": "parent", "full_name": "Other",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		resp := s.json(http.MethodPost, "/auth/login", "", map[string]string{"username": "t1", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		resp := s.do(http.MethodPost, "/auth/login", "", strings.NewReader("{"), "application/json")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NoSession", func(t *testing.T) {
		resp := s.do(http.MethodGet, "/students", "", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		resp := s.do(http.MethodGet, "/students/ghost", teacher, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ParentCannotEnrol", func(t *testing.T) {
		parent := s.login("p1", "pw")
		resp := s.json(http.MethodPost, "/students", parent, map[string]string{
			"student_id": "s2", "name": "Mira", "grade": "2", "teacher": "t1", "parent": "p1",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("NonPDFUpload", func(t *testing.T) {
		resp := s.uploadPDF(teacher, "notes.docx", "3")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UploadForUnknownStudent", func(t *testing.T) {
		resp := s.uploadPDF(teacher, "notes.pdf", "3")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("UnknownGrade", func(t *testing.T) {
		resp := s.do(http.MethodGet, "/competencies?grade=13", "", nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Logout", func(t *testing.T) {
		token := s.login("t1", "pw")
		resp := s.do(http.MethodPost, "/auth/logout", token, nil, "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = s.do(http.MethodGet, "/students", token, nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodGet, "/metrics", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "remedial_http_requests_total")
}
