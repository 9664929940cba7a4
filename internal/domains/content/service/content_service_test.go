package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leearn-backend/internal/domains/content"
)

type likeKey struct {
	contentID uuid.UUID
	userID    uuid.UUID
}

// fakeRepository mirrors the store's semantics in memory: likes are a set
// keyed by (content, user), and likes_count moves with the set.
type fakeRepository struct {
	contents map[uuid.UUID]content.Content
	likes    map[likeKey]struct{}
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		contents: make(map[uuid.UUID]content.Content),
		likes:    make(map[likeKey]struct{}),
	}
}

func (r *fakeRepository) Create(_ context.Context, c *content.Content) error {
	r.contents[c.ID] = *c
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*content.Content, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, content.ErrContentNotFound
	}
	return &c, nil
}

func (r *fakeRepository) List(_ context.Context) ([]content.Content, error) {
	contents := make([]content.Content, 0, len(r.contents))
	for _, c := range r.contents {
		contents = append(contents, c)
	}
	sort.Slice(contents, func(i, j int) bool {
		return contents[i].CreatedAt.After(contents[j].CreatedAt)
	})
	return contents, nil
}

func (r *fakeRepository) Update(_ context.Context, id uuid.UUID, req content.CreateContentRequest) (*content.Content, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, content.ErrContentNotFound
	}
	c.Title = req.Title
	c.Body = req.Body
	c.ContentType = req.ContentType
	c.Tags = req.Tags
	c.UpdatedAt = time.Now().UTC()
	r.contents[id] = c
	return &c, nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.contents[id]; !ok {
		return false, nil
	}
	delete(r.contents, id)
	return true, nil
}

func (r *fakeRepository) Like(_ context.Context, contentID, userID uuid.UUID) (bool, error) {
	c, ok := r.contents[contentID]
	if !ok {
		return false, content.ErrContentNotFound
	}
	key := likeKey{contentID, userID}
	if _, exists := r.likes[key]; exists {
		return false, nil
	}
	r.likes[key] = struct{}{}
	c.LikesCount++
	r.contents[contentID] = c
	return true, nil
}

func (r *fakeRepository) Unlike(_ context.Context, contentID, userID uuid.UUID) (bool, error) {
	key := likeKey{contentID, userID}
	if _, exists := r.likes[key]; !exists {
		return false, nil
	}
	delete(r.likes, key)
	c := r.contents[contentID]
	c.LikesCount--
	r.contents[contentID] = c
	return true, nil
}

func validCreateRequest() content.CreateContentRequest {
	return content.CreateContentRequest{
		Title:       "Intro to Go",
		Body:        "Concurrency is not parallelism.",
		ContentType: "article",
		Tags:        []string{"go", "basics"},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := NewContentService(newFakeRepository())
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, 0, created.LikesCount)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Tags, got.Tags)
}

func TestCreateNilTagsBecomeEmptyList(t *testing.T) {
	svc := NewContentService(newFakeRepository())

	req := validCreateRequest()
	req.Tags = nil
	created, err := svc.Create(context.Background(), req, uuid.New())
	require.NoError(t, err)

	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}

func TestLikeTwiceIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	svc := NewContentService(repo)
	userID := uuid.New()

	created, err := svc.Create(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	first, err := svc.Like(context.Background(), created.ID, userID)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := svc.Like(context.Background(), created.ID, userID)
	require.NoError(t, err)
	assert.False(t, second)

	// Exactly one like row, counter in sync with it.
	assert.Len(t, repo.likes, 1)
	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
}

func TestUnlikeNeverLikedReturnsFalse(t *testing.T) {
	svc := NewContentService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	removed, err := svc.Unlike(context.Background(), created.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
}

func TestLikeUnlikeKeepsCounterInSync(t *testing.T) {
	svc := NewContentService(newFakeRepository())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	_, err = svc.Like(context.Background(), created.ID, userID)
	require.NoError(t, err)

	removed, err := svc.Unlike(context.Background(), created.ID, userID)
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
}

func TestUpdateNilTagsBecomeEmptyList(t *testing.T) {
	repo := newFakeRepository()
	svc := NewContentService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	req := content.CreateContentRequest{
		Title:       "Revised",
		Body:        "New body",
		ContentType: "note",
		Tags:        nil,
	}
	// Validation accepts an omitted tags field, so the service must
	// normalize it before the NOT NULL column sees it.
	require.NoError(t, req.Validate())

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.NotNil(t, updated.Tags)
	assert.Empty(t, updated.Tags)

	stored := repo.contents[created.ID]
	assert.NotNil(t, stored.Tags)
	assert.Empty(t, stored.Tags)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	svc := NewContentService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest(), uuid.New())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, content.CreateContentRequest{
		Title:       "Revised",
		Body:        "New body",
		ContentType: "note",
		Tags:        []string{"revised"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Revised", updated.Title)
	assert.Equal(t, "note", updated.ContentType)
	assert.Equal(t, []string{"revised"}, updated.Tags)
}

func TestUpdateMissingContentReturnsNotFound(t *testing.T) {
	svc := NewContentService(newFakeRepository())

	_, err := svc.Update(context.Background(), uuid.New(), validCreateRequest())
	assert.ErrorIs(t, err, content.ErrContentNotFound)
}

func TestDeleteMissingContentReturnsFalseNotError(t *testing.T) {
	svc := NewContentService(newFakeRepository())

	deleted, err := svc.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListNewestFirst(t *testing.T) {
	repo := newFakeRepository()
	svc := NewContentService(repo)

	base := time.Now().UTC()
	for i, title := range []string{"oldest", "middle", "newest"} {
		id := uuid.New()
		repo.contents[id] = content.Content{
			ID:        id,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
	}

	contents, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, "newest", contents[0].Title)
	assert.Equal(t, "oldest", contents[2].Title)
}
