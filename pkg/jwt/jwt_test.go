package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)
	id := uuid.New()

	token, err := m.GenerateToken(id, "admin@example.com", "Admin", "v1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "v1", claims.TokenVersion)
}

func TestValidateRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.GenerateToken(uuid.New(), "a@b.c", "A", "v1")
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.GenerateToken(uuid.New(), "a@b.c", "A", "v1")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
