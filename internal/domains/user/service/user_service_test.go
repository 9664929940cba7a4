package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leearn-backend/internal/domains/user"
)

// fakeRepository mirrors the store's contract in memory: unique indexes on
// username and email, coalesce updates, delete-by-id reporting.
type fakeRepository struct {
	users map[uuid.UUID]user.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[uuid.UUID]user.User)}
}

func (r *fakeRepository) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.ErrUsernameAlreadyExists
		}
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeRepository) List(_ context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *fakeRepository) Update(_ context.Context, id uuid.UUID, req user.UpdateUserRequest) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if req.DisplayName != nil {
		u.DisplayName = req.DisplayName
	}
	if req.Bio != nil {
		u.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		u.AvatarURL = req.AvatarURL
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func validCreateRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "long-enough-password",
		DisplayName: strPtr("Alice"),
		Bio:         strPtr("learner"),
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.DisplayName, got.DisplayName)
	assert.Equal(t, created.Bio, got.Bio)
}

func TestCreateSubstitutesPlaceholderCredential(t *testing.T) {
	repo := newFakeRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	// The raw password never reaches the store; the projection has no
	// credential field at all.
	assert.Equal(t, user.PasswordPlaceholder, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "long-enough-password")
}

func TestCreateDuplicateUsernameConflicts(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestCreateInvalidRequestRejected(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	req := validCreateRequest()
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateAllFieldsUnsetIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Backdate the stored row so the updated_at refresh is observable.
	stored := repo.users[created.ID]
	stored.UpdatedAt = stored.UpdatedAt.Add(-time.Hour)
	repo.users[created.ID] = stored

	updated, err := svc.Update(context.Background(), created.ID, user.UpdateUserRequest{})
	require.NoError(t, err)

	// Payload fields are untouched; updated_at is refreshed even when
	// nothing changed, because the statement still ran.
	assert.Equal(t, created.DisplayName, updated.DisplayName)
	assert.Equal(t, created.Bio, updated.Bio)
	assert.Equal(t, created.AvatarURL, updated.AvatarURL)
	assert.True(t, updated.UpdatedAt.After(stored.UpdatedAt))
}

func TestUpdateOnlyBioLeavesOtherFields(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, user.UpdateUserRequest{
		Bio: strPtr("new bio"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new bio", *updated.Bio)
	assert.Equal(t, created.DisplayName, updated.DisplayName)
	assert.Equal(t, created.AvatarURL, updated.AvatarURL)
}

func TestUpdateMissingUserReturnsNotFound(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	_, err := svc.Update(context.Background(), uuid.New(), user.UpdateUserRequest{
		Bio: strPtr("anything"),
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteMissingUserReturnsFalseNotError(t *testing.T) {
	svc := NewUserService(newFakeRepository())

	deleted, err := svc.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListNewestFirst(t *testing.T) {
	repo := newFakeRepository()
	svc := NewUserService(repo)

	base := time.Now().UTC()
	for i, name := range []string{"first", "second", "third"} {
		repo.users[uuid.New()] = user.User{
			ID:        uuid.New(),
			Username:  name,
			Email:     name + "@example.com",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
	}

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "first", users[2].Username)
}
