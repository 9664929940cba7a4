package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"leearn-backend/internal/domains/friendship"
)

// postgresRepository implements friendship.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) friendship.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, f *friendship.Friendship) error {
	query := `
		INSERT INTO friendships (id, user1_id, user2_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		f.ID,
		f.User1ID,
		f.User2ID,
		f.Status,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return friendship.ErrFriendshipExists
			case "23503":
				return friendship.ErrUserNotFound
			}
		}
		return fmt.Errorf("create friendship: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]friendship.Friendship, error) {
	query := `
		SELECT id, user1_id, user2_id, status, created_at, updated_at
		FROM friendships
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	defer rows.Close()

	friendships := make([]friendship.Friendship, 0)
	for rows.Next() {
		var f friendship.Friendship
		if err := rows.Scan(&f.ID, &f.User1ID, &f.User2ID, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan friendship row: %w", err)
		}
		friendships = append(friendships, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate friendships: %w", err)
	}

	return friendships, nil
}
