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

	"leearn-backend/internal/domains/user"
	"leearn-backend/pkg/cache"
)

const userCacheTTL = 15 * time.Minute

// postgresRepository implements user.Repository against PostgreSQL with a
// cache-aside layer on single-entity reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

const userColumns = `id, username, email, password_hash, display_name, bio, avatar_url, created_at, updated_at`

func scanUser(row pgx.Row, u *user.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.DisplayName,
		&u.Bio,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash,
			display_name, bio, avatar_url,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.DisplayName,
		u.Bio,
		u.AvatarURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		// The unique indexes are the enforcement boundary for username and
		// email; 23505 is mapped back to a domain conflict error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return user.ErrUsernameAlreadyExists
			}
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailAlreadyExists
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	cacheKey := userCacheKey(id)

	var u user.User
	if found, err := r.cache.Get(ctx, cacheKey, &u); err == nil && found {
		return &u, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	if err := scanUser(r.pool.QueryRow(ctx, query, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	// Cache set failures never fail the read.
	_ = r.cache.Set(ctx, cacheKey, &u, userCacheTTL)

	return &u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var u user.User
	if err := scanUser(r.pool.QueryRow(ctx, query, username), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req user.UpdateUserRequest) (*user.User, error) {
	// COALESCE keeps the stored value for every field the request leaves
	// unset. The write and the read-back are a single statement.
	query := `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    bio          = COALESCE($3, bio),
		    avatar_url   = COALESCE($4, avatar_url),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var u user.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id, req.DisplayName, req.Bio, req.AvatarURL), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = r.cache.Delete(ctx, userCacheKey(id))

	return &u, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	_ = r.cache.Delete(ctx, userCacheKey(id))

	return tag.RowsAffected() > 0, nil
}
