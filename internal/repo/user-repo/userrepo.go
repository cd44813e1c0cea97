package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetOrCreate registers the platform user on first contact. The no-op upsert
// makes the RETURNING clause yield the row whether it existed or not.
func (r *Repository) GetOrCreate(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		INSERT INTO users (id, balance)
		VALUES ($1, 0)
		ON CONFLICT (id) DO UPDATE SET id = users.id
		RETURNING id, balance, created_at
	`
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Balance, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't get or create user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, balance, created_at
		FROM users
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Balance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// LockBalance reads the current balance under a row lock. Must run inside a
// transaction; the lock is held until commit or rollback.
func (r *Repository) LockBalance(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, balance, created_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Balance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user balance", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int64, balance int64) error {
	query := `
		UPDATE users
		SET balance = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return err
	}
	return nil
}
