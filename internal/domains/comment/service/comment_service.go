package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leearn-backend/internal/domains/comment"
)

// commentService implements comment.Service.
type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, contentID uuid.UUID, req comment.CreateCommentRequest, authorID uuid.UUID) (*comment.CommentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newComment := &comment.Comment{
		ID:        uuid.New(),
		ContentID: contentID,
		AuthorID:  authorID,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newComment); err != nil {
		return nil, err
	}

	dto := newComment.ToDTO()
	return &dto, nil
}

func (s *commentService) ListByContent(ctx context.Context, contentID uuid.UUID) ([]comment.CommentDTO, error) {
	comments, err := s.repo.ListByContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("list comments by content: %w", err)
	}

	dtos := make([]comment.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, comments[i].ToDTO())
	}
	return dtos, nil
}
