package topuprepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
	"go.uber.org/zap"
)

const topupColumns = `id, user_id, amount, method, status, proof_file_id, created_at, decided_at, decided_by, notified_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, topup *domain.Topup) error {
	query := `
		INSERT INTO topups (id, user_id, amount, method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		topup.ID, topup.UserID, topup.Amount, topup.Method, topup.Status,
	).Scan(&topup.CreatedAt)
	if err != nil {
		zap.L().Error("can't save topup", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, topupID string) (*domain.Topup, error) {
	query := `
		SELECT ` + topupColumns + `
		FROM topups
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, topupID))
}

// GetForUpdate locks the top-up row for the duration of the surrounding
// transaction so the PENDING status check and the decision update are
// race-free.
func (r *Repository) GetForUpdate(ctx context.Context, topupID string) (*domain.Topup, error) {
	query := `
		SELECT ` + topupColumns + `
		FROM topups
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(r.db.QueryRow(ctx, query, topupID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Topup, error) {
	var t domain.Topup
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Method, &t.Status,
		&t.ProofFileID, &t.CreatedAt, &t.DecidedAt, &t.DecidedBy, &t.NotifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find topup", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) SetDecision(ctx context.Context, topupID string, status string, adminID int64, decidedAt time.Time) error {
	query := `
		UPDATE topups
		SET status = $1, decided_at = $2, decided_by = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, status, decidedAt, adminID, topupID)
	if err != nil {
		zap.L().Error("can't set topup decision", zap.Error(err))
		return err
	}
	return nil
}

// AttachProof stores the proof reference and reports whether a row was
// updated. The status guard means a decided top-up matches zero rows.
func (r *Repository) AttachProof(ctx context.Context, topupID string, fileID string) (bool, error) {
	query := `
		UPDATE topups
		SET proof_file_id = $1
		WHERE id = $2 AND status = 'PENDING'
	`
	tag, err := r.db.Exec(ctx, query, fileID, topupID)
	if err != nil {
		zap.L().Error("can't attach topup proof", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.Topup, error) {
	query := `
		SELECT ` + topupColumns + `
		FROM topups
		WHERE status = 'PENDING'
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list pending topups", zap.Error(err))
		return nil, err
	}
	return r.scanMany(rows)
}

// FindUnnotified returns decided top-ups whose decision has not yet been
// pushed to the chat gateway.
func (r *Repository) FindUnnotified(ctx context.Context, limit uint32) ([]domain.Topup, error) {
	query := `
		SELECT ` + topupColumns + `
		FROM topups
		WHERE status <> 'PENDING' AND notified_at IS NULL
		ORDER BY decided_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't find unnotified topups", zap.Error(err))
		return nil, err
	}
	return r.scanMany(rows)
}

func (r *Repository) MarkNotified(ctx context.Context, topupID string, notifiedAt time.Time) error {
	query := `
		UPDATE topups
		SET notified_at = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, notifiedAt, topupID)
	if err != nil {
		zap.L().Error("can't mark topup notified", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanMany(rows pgx.Rows) ([]domain.Topup, error) {
	defer rows.Close()

	var topups []domain.Topup
	for rows.Next() {
		var t domain.Topup
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Method, &t.Status,
			&t.ProofFileID, &t.CreatedAt, &t.DecidedAt, &t.DecidedBy, &t.NotifiedAt)
		if err != nil {
			zap.L().Error("can't scan topup row", zap.Error(err))
			return nil, err
		}
		topups = append(topups, t)
	}
	return topups, rows.Err()
}
