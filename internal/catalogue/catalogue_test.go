package catalogue

import (
	"testing"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	first, err := c.For("1")
	require.NoError(t, err)
	assert.Len(t, first, 18)
	assert.Equal(t, "English - Listening & Auditory - Sound discrimination", first[0])

	fifth, err := c.For("5")
	require.NoError(t, err)
	assert.Len(t, fifth, 10)
	assert.Contains(t, fifth, "Reading Comprehension")
}

func TestFor_ReturnsCopy(t *testing.T) {
	c := Default()
	list, err := c.For("7")
	require.NoError(t, err)
	list[0] = "changed"

	again, err := c.For("7")
	require.NoError(t, err)
	assert.Equal(t, "Reading Comprehension", again[0])
}

func TestFor_UnknownGrade(t *testing.T) {
	c := Default()
	for _, g := range []string{"0", "13", "", "01", "K"} {
		_, err := c.For(g)
		assert.ErrorIs(t, err, errdefs.ErrValidation, "grade %q", g)
	}
}

func TestParse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c, err := Parse([]byte("default: [A, B]\ngrades:\n  \"3\": [C]\n"))
		require.NoError(t, err)
		got, err := c.For("3")
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, got)
	})

	t.Run("NoDefault", func(t *testing.T) {
		_, err := Parse([]byte("grades: {}\n"))
		assert.Error(t, err)
	})

	t.Run("BadGrade", func(t *testing.T) {
		_, err := Parse([]byte("default: [A]\ngrades:\n  \"99\": [B]\n"))
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte("default: [A"))
		assert.Error(t, err)
	})
}

func TestGrades(t *testing.T) {
	g := Grades()
	assert.Len(t, g, 12)
	assert.Equal(t, "1", g[0])
	assert.Equal(t, "12", g[11])
}
