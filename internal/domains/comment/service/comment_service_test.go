package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leearn-backend/internal/domains/comment"
)

// fakeRepository stores comments in memory and lists them oldest first,
// mirroring the SQL contract.
type fakeRepository struct {
	comments []comment.Comment
	validIDs map[uuid.UUID]struct{}
}

func newFakeRepository(validContentIDs ...uuid.UUID) *fakeRepository {
	ids := make(map[uuid.UUID]struct{}, len(validContentIDs))
	for _, id := range validContentIDs {
		ids[id] = struct{}{}
	}
	return &fakeRepository{validIDs: ids}
}

func (r *fakeRepository) Create(_ context.Context, c *comment.Comment) error {
	if _, ok := r.validIDs[c.ContentID]; !ok {
		return comment.ErrContentNotFound
	}
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeRepository) ListByContent(_ context.Context, contentID uuid.UUID) ([]comment.Comment, error) {
	out := make([]comment.Comment, 0)
	for _, c := range r.comments {
		if c.ContentID == contentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func TestCreateAndListChronological(t *testing.T) {
	contentID := uuid.New()
	repo := newFakeRepository(contentID)
	svc := NewCommentService(repo)
	authorID := uuid.New()

	base := time.Now().UTC()
	for i, body := range []string{"first", "second", "third"} {
		repo.comments = append(repo.comments, comment.Comment{
			ID:        uuid.New(),
			ContentID: contentID,
			AuthorID:  authorID,
			Body:      body,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	comments, err := svc.ListByContent(context.Background(), contentID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	// Conversation order: oldest first, unlike every other list.
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "third", comments[2].Body)
}

func TestCreateRoundTrip(t *testing.T) {
	contentID := uuid.New()
	svc := NewCommentService(newFakeRepository(contentID))
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), contentID, comment.CreateCommentRequest{
		Body: "great post",
	}, authorID)
	require.NoError(t, err)

	assert.Equal(t, contentID, created.ContentID)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, "great post", created.Body)

	comments, err := svc.ListByContent(context.Background(), contentID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, created.ID, comments[0].ID)
}

func TestCreateDanglingContentSurfacesConstraint(t *testing.T) {
	svc := NewCommentService(newFakeRepository())

	_, err := svc.Create(context.Background(), uuid.New(), comment.CreateCommentRequest{
		Body: "orphan",
	}, uuid.New())
	assert.ErrorIs(t, err, comment.ErrContentNotFound)
}

func TestCreateEmptyBodyRejected(t *testing.T) {
	contentID := uuid.New()
	svc := NewCommentService(newFakeRepository(contentID))

	_, err := svc.Create(context.Background(), contentID, comment.CreateCommentRequest{}, uuid.New())
	assert.Error(t, err)
}
