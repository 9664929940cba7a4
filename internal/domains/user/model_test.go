package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDTODropsCredentialMaterial(t *testing.T) {
	name := "Alice"
	u := User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: PasswordPlaceholder,
		DisplayName:  &name,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	dto := u.ToDTO()

	data, err := json.Marshal(dto)
	require.NoError(t, err)

	assert.NotContains(t, string(data), PasswordPlaceholder)
	assert.NotContains(t, string(data), "password")

	assert.Equal(t, u.ID, dto.ID)
	assert.Equal(t, u.Username, dto.Username)
	assert.Equal(t, u.Email, dto.Email)
	assert.Equal(t, u.DisplayName, dto.DisplayName)
}

func TestEntityJSONHidesHashAsSecondLineOfDefense(t *testing.T) {
	u := User{
		ID:           uuid.New(),
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: PasswordPlaceholder,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), PasswordPlaceholder)
}

func TestUpdateRequestValidation(t *testing.T) {
	bad := "not a url"
	assert.Error(t, UpdateUserRequest{AvatarURL: &bad}.Validate())

	good := "https://example.com/a.png"
	assert.NoError(t, UpdateUserRequest{AvatarURL: &good}.Validate())

	// All-unset request is valid: it means "change nothing".
	assert.NoError(t, UpdateUserRequest{}.Validate())
}
