package password

import (
	"strings"
	"testing"

	"github.com/paani/remedial-learning-app/internal/errdefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Compare(hash, "s3cret"))
	assert.False(t, h.Compare(hash, "S3cret"))
	assert.False(t, h.Compare("not-a-digest", "s3cret"))
}

func TestBcryptHasher_SaltsEachDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestBcryptHasher_MultibyteLengthLimit(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	atLimit := strings.Repeat("é", 36)
	hash, err := h.Hash(atLimit)
	require.NoError(t, err)
	assert.True(t, h.Compare(hash, atLimit))

	_, err = h.Hash(strings.Repeat("é", 37))
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}
