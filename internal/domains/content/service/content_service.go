package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leearn-backend/internal/domains/content"
)

// contentService implements content.Service.
type contentService struct {
	repo content.Repository
}

func NewContentService(repo content.Repository) content.Service {
	return &contentService{repo: repo}
}

// Create inserts a new content authored by authorID. The id comes from the
// auth middleware, never from the request body.
func (s *contentService) Create(ctx context.Context, req content.CreateContentRequest, authorID uuid.UUID) (*content.ContentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	newContent := &content.Content{
		ID:          uuid.New(),
		Title:       req.Title,
		Body:        req.Body,
		ContentType: req.ContentType,
		Tags:        tags,
		AuthorID:    authorID,
		LikesCount:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, newContent); err != nil {
		return nil, err
	}

	dto := newContent.ToDTO()
	return &dto, nil
}

func (s *contentService) GetByID(ctx context.Context, id uuid.UUID) (*content.ContentDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *contentService) List(ctx context.Context) ([]content.ContentDTO, error) {
	contents, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	dtos := make([]content.ContentDTO, 0, len(contents))
	for i := range contents {
		dtos = append(dtos, contents[i].ToDTO())
	}
	return dtos, nil
}

func (s *contentService) Update(ctx context.Context, id uuid.UUID, req content.CreateContentRequest) (*content.ContentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// An omitted tags field means "no tags", never NULL. The column is
	// NOT NULL, so a nil slice must not reach the store.
	if req.Tags == nil {
		req.Tags = []string{}
	}

	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *contentService) Like(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return s.repo.Like(ctx, contentID, userID)
}

func (s *contentService) Unlike(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return s.repo.Unlike(ctx, contentID, userID)
}
