package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.GenerateAccessToken("3a6c6d2e-8f1a-4d3b-9a2f-111213141516", "alice")
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "3a6c6d2e-8f1a-4d3b-9a2f-111213141516", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 60).GenerateAccessToken("id", "alice")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 60).VerifyToken(token)
	assert.Error(t, err)
}
