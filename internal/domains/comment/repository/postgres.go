package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"leearn-backend/internal/domains/comment"
)

// postgresRepository implements comment.Repository. No cache: comment lists
// change on every post and are always read fresh.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, content_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.ContentID,
		c.AuthorID,
		c.Body,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "content") {
				return comment.ErrContentNotFound
			}
			return comment.ErrAuthorNotFound
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListByContent(ctx context.Context, contentID uuid.UUID) ([]comment.Comment, error) {
	// Oldest first: conversation reading order.
	query := `
		SELECT id, content_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE content_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.ContentID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}
