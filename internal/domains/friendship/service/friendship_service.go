package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leearn-backend/internal/domains/friendship"
)

// friendshipService implements friendship.Service.
type friendshipService struct {
	repo friendship.Repository
}

func NewFriendshipService(repo friendship.Repository) friendship.Service {
	return &friendshipService{repo: repo}
}

// canonicalPair orders the two ids so the smaller uuid always sits in the
// first slot. One row per unordered pair follows from this plus the store's
// unique constraint.
func canonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

func (s *friendshipService) Create(ctx context.Context, requesterID, targetID uuid.UUID) (*friendship.FriendshipDTO, error) {
	if requesterID == targetID {
		return nil, friendship.ErrSelfFriendship
	}

	user1, user2 := canonicalPair(requesterID, targetID)

	now := time.Now().UTC()
	newFriendship := &friendship.Friendship{
		ID:        uuid.New(),
		User1ID:   user1,
		User2ID:   user2,
		Status:    friendship.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newFriendship); err != nil {
		return nil, err
	}

	dto := newFriendship.ToDTO()
	return &dto, nil
}

func (s *friendshipService) ListByUser(ctx context.Context, userID uuid.UUID) ([]friendship.FriendshipDTO, error) {
	friendships, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships by user: %w", err)
	}

	dtos := make([]friendship.FriendshipDTO, 0, len(friendships))
	for i := range friendships {
		dtos = append(dtos, friendships[i].ToDTO())
	}
	return dtos, nil
}
