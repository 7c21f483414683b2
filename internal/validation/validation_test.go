package validation

import (
	"testing"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Valid(t *testing.T) {
	err := Struct(&model.RegisterInput{
		Username:        "t1",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            model.RoleTeacher,
		FullName:        "Teacher One",
	})
	assert.NoError(t, err)
}

func TestStruct_ReportsFields(t *testing.T) {
	err := Struct(&model.RegisterInput{
		Username:        "   ",
		Password:        "secret",
		ConfirmPassword: "other",
		Role:            "admin",
		FullName:        "Someone",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	rules := map[string]string{}
	for _, f := range verr.Fields {
		rules[f.Field] = f.Rule
	}
	assert.Equal(t, "notblank", rules["username"])
	assert.Equal(t, "eqfield", rules["confirm_password"])
	assert.Equal(t, "oneof", rules["role"])
	assert.NotContains(t, rules, "full_name")
}

func TestStruct_ScoreRange(t *testing.T) {
	tests := []struct {
		name   string
		scores model.Scores
		ok     bool
	}{
		{"Bounds", model.Scores{"Reading": 0, "Writing": 100}, true},
		{"AboveMax", model.Scores{"Reading": 101}, false},
		{"Negative", model.Scores{"Reading": -1}, false},
		{"Empty", model.Scores{}, false},
		{"BlankName", model.Scores{" ": 50}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(&model.RecordAssessmentInput{StudentId: "s1", Scores: tc.scores})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errdefs.ErrValidation)
			}
		})
	}
}

func TestStruct_DurationBounds(t *testing.T) {
	base := model.UploadMaterialInput{
		StudentId:  "s1",
		Competency: "Reading",
		Title:      "Worksheet",
		Payload:    []byte("%PDF-1.4"),
		Filename:   "w.pdf",
	}

	for _, days := range []int{1, 30} {
		in := base
		in.DurationDays = days
		assert.NoError(t, Struct(&in), "days=%d", days)
	}
	for _, days := range []int{0, 31, -5} {
		in := base
		in.DurationDays = days
		assert.ErrorIs(t, Struct(&in), errdefs.ErrValidation, "days=%d", days)
	}
}
