package service

import (
	"bytes"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leearn-backend/internal/domains/friendship"
)

type pairKey struct {
	user1 uuid.UUID
	user2 uuid.UUID
}

// fakeRepository enforces the unique constraint on the canonical pair, the
// way the store does.
type fakeRepository struct {
	rows map[pairKey]friendship.Friendship
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[pairKey]friendship.Friendship)}
}

func (r *fakeRepository) Create(_ context.Context, f *friendship.Friendship) error {
	key := pairKey{f.User1ID, f.User2ID}
	if _, exists := r.rows[key]; exists {
		return friendship.ErrFriendshipExists
	}
	r.rows[key] = *f
	return nil
}

func (r *fakeRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]friendship.Friendship, error) {
	out := make([]friendship.Friendship, 0)
	for _, f := range r.rows {
		if f.User1ID == userID || f.User2ID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewFriendshipService(newFakeRepository())

	created, err := svc.Create(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, friendship.StatusPending, created.Status)
}

func TestCreateCanonicalizesPair(t *testing.T) {
	svc := NewFriendshipService(newFakeRepository())

	a, b := uuid.New(), uuid.New()
	created, err := svc.Create(context.Background(), a, b)
	require.NoError(t, err)

	// Smaller uuid always lands in the first slot, whichever side asked.
	assert.True(t, bytes.Compare(created.User1ID[:], created.User2ID[:]) < 0)
}

func TestCreateReversedPairConflicts(t *testing.T) {
	svc := NewFriendshipService(newFakeRepository())

	a, b := uuid.New(), uuid.New()
	_, err := svc.Create(context.Background(), a, b)
	require.NoError(t, err)

	// (b, a) is the same unordered pair and must hit the same row.
	_, err = svc.Create(context.Background(), b, a)
	assert.ErrorIs(t, err, friendship.ErrFriendshipExists)
}

func TestCreateSelfFriendshipRejected(t *testing.T) {
	svc := NewFriendshipService(newFakeRepository())

	id := uuid.New()
	_, err := svc.Create(context.Background(), id, id)
	assert.ErrorIs(t, err, friendship.ErrSelfFriendship)
}

func TestListByUserSeesBothSidesNewestFirst(t *testing.T) {
	repo := newFakeRepository()
	svc := NewFriendshipService(repo)

	me := uuid.New()
	base := time.Now().UTC()

	older := friendship.Friendship{
		ID: uuid.New(), User1ID: me, User2ID: uuid.New(),
		Status: friendship.StatusAccepted, CreatedAt: base,
	}
	newer := friendship.Friendship{
		ID: uuid.New(), User1ID: uuid.New(), User2ID: me,
		Status: friendship.StatusPending, CreatedAt: base.Add(time.Second),
	}
	repo.rows[pairKey{older.User1ID, older.User2ID}] = older
	repo.rows[pairKey{newer.User1ID, newer.User2ID}] = newer

	friendships, err := svc.ListByUser(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, friendships, 2)

	assert.Equal(t, newer.ID, friendships[0].ID)
	assert.Equal(t, older.ID, friendships[1].ID)
}
