package backup

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/model"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var takenAt = time.Date(2025, 3, 10, 14, 5, 9, 0, time.UTC)

func newExporter(t *testing.T) (*Exporter, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockPool.ExpectationsWereMet())
		mockPool.Close()
	})
	e := NewExporter(mockPool)
	e.now = func() time.Time { return takenAt }
	return e, mockPool
}

func expectAllTables(mockPool pgxmock.PgxPoolIface) uuid.UUID {
	materialId := uuid.MustParse("0195a1b2-0000-7000-8000-000000000001")
	now := takenAt.Add(-time.Hour)

	mockPool.ExpectQuery("FROM users").WillReturnRows(
		pgxmock.NewRows([]string{"username", "password_hash", "role", "full_name", "created_at"}).
			AddRow("t1", "digest", model.RoleTeacher, "Teacher One", now))
	mockPool.ExpectQuery("FROM students").WillReturnRows(
		pgxmock.NewRows([]string{"student_id", "name", "grade", "teacher", "parent", "created_at"}).
			AddRow("s1", "Ravi", "5", "t1", "p1", now))
	mockPool.ExpectQuery("FROM assessments").WillReturnRows(
		pgxmock.NewRows([]string{"assessment_id", "seq", "student_id", "teacher", "competencies", "notes", "created_at"}))
	mockPool.ExpectQuery("FROM materials").WillReturnRows(
		pgxmock.NewRows([]string{
			"material_id", "student_id", "teacher", "competency", "title", "description",
			"file_data", "filename", "duration_days", "uploaded_at",
		}).AddRow(materialId, "s1", "t1", "Reading", "Phonics", "", []byte("%PDF"), "p.pdf", 3, now))
	mockPool.ExpectQuery("FROM progress").WillReturnRows(
		pgxmock.NewRows([]string{"progress_id", "student_id", "material_id", "parent", "completed", "completed_at", "updated_at"}))
	mockPool.ExpectQuery("FROM feedback").WillReturnRows(
		pgxmock.NewRows([]string{"feedback_id", "seq", "target_id", "teacher", "student_id", "body", "created_at"}))
	mockPool.ExpectQuery("FROM daily_progress").WillReturnRows(
		pgxmock.NewRows([]string{
			"daily_progress_id", "material_id", "student_id", "parent",
			"day_number", "completed", "comment", "completed_at", "updated_at",
		}))
	mockPool.ExpectQuery("FROM daily_feedback").WillReturnRows(
		pgxmock.NewRows([]string{"feedback_id", "seq", "target_id", "teacher", "student_id", "body", "created_at"}))

	return materialId
}

func TestWriteFile(t *testing.T) {
	e, mockPool := newExporter(t)
	materialId := expectAllTables(mockPool)
	dir := filepath.Join(t.TempDir(), "backups")

	path, err := e.WriteFile(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup_20250310_140509.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "sessions")

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "digest", snap.Users[0].PasswordHash)
	require.Len(t, snap.Materials, 1)
	assert.Equal(t, materialId, snap.Materials[0].MaterialId)
	assert.Equal(t, []byte("%PDF"), snap.Materials[0].FileData)
	assert.Empty(t, snap.Assessments)
}

func TestSnapshotStopsOnQueryError(t *testing.T) {
	e, mockPool := newExporter(t)
	boom := errors.New("boom")

	mockPool.ExpectQuery("FROM users").WillReturnError(boom)

	_, err := e.Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "backup users")
}
