package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"leearn-backend/internal/domains/content"
	"leearn-backend/pkg/cache"
)

const contentCacheTTL = 5 * time.Minute

// postgresRepository implements content.Repository. Likes and the
// likes_count column are kept in sync inside a single transaction, so the
// counter can never drift from the rows.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) content.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func contentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("content:%s", id.String())
}

const contentColumns = `id, title, body, content_type, tags, author_id, likes_count, created_at, updated_at`

func scanContent(row pgx.Row, c *content.Content) error {
	return row.Scan(
		&c.ID,
		&c.Title,
		&c.Body,
		&c.ContentType,
		&c.Tags,
		&c.AuthorID,
		&c.LikesCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, c *content.Content) error {
	query := `
		INSERT INTO contents (
			id, title, body, content_type, tags,
			author_id, likes_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Title,
		c.Body,
		c.ContentType,
		c.Tags,
		c.AuthorID,
		c.LikesCount,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return content.ErrAuthorNotFound
		}
		return fmt.Errorf("create content: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Content, error) {
	cacheKey := contentCacheKey(id)

	var c content.Content
	if found, err := r.cache.Get(ctx, cacheKey, &c); err == nil && found {
		return &c, nil
	}

	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	if err := scanContent(r.pool.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &c, contentCacheTTL)

	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]content.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	contents := make([]content.Content, 0)
	for rows.Next() {
		var c content.Content
		if err := scanContent(rows, &c); err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contents: %w", err)
	}

	return contents, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req content.CreateContentRequest) (*content.Content, error) {
	// Full replacement, by contract. No COALESCE here.
	query := `
		UPDATE contents
		SET title        = $2,
		    body         = $3,
		    content_type = $4,
		    tags         = $5,
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + contentColumns

	var c content.Content
	if err := scanContent(r.pool.QueryRow(ctx, query, id, req.Title, req.Body, req.ContentType, req.Tags), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		return nil, fmt.Errorf("update content: %w", err)
	}

	_ = r.cache.Delete(ctx, contentCacheKey(id))

	return &c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete content: %w", err)
	}

	_ = r.cache.Delete(ctx, contentCacheKey(id))

	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Like(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin like tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Atomic upsert-or-ignore: concurrent likes from the same user race on
	// the primary key, not on an application-level pre-check.
	tag, err := tx.Exec(ctx, `
		INSERT INTO content_likes (content_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (content_id, user_id) DO NOTHING
	`, contentID, userID)
	if err != nil {
		return false, mapLikeFKError(err, "insert like")
	}

	if tag.RowsAffected() == 0 {
		// Already liked; nothing changed, counter untouched.
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
		UPDATE contents SET likes_count = likes_count + 1 WHERE id = $1
	`, contentID); err != nil {
		return false, fmt.Errorf("increment likes_count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit like tx: %w", err)
	}

	_ = r.cache.Delete(ctx, contentCacheKey(contentID))

	return true, nil
}

func (r *postgresRepository) Unlike(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin unlike tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM content_likes WHERE content_id = $1 AND user_id = $2
	`, contentID, userID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
		UPDATE contents SET likes_count = likes_count - 1 WHERE id = $1
	`, contentID); err != nil {
		return false, fmt.Errorf("decrement likes_count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit unlike tx: %w", err)
	}

	_ = r.cache.Delete(ctx, contentCacheKey(contentID))

	return true, nil
}

func mapLikeFKError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "content") {
			return content.ErrContentNotFound
		}
		return content.ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
