package stockrepo

import (
	"context"
	"time"

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

// Claim marks up to qty unsold items of the variant as sold under the given
// purchase token and returns their payloads, oldest items first. The count
// guard in the CTE makes the statement all-or-nothing: when fewer than qty
// unsold items exist, zero rows are touched. SKIP LOCKED keeps concurrent
// claims from ever selecting overlapping rows.
func (r *Repository) Claim(ctx context.Context, variantID int, qty int, token string, soldAt time.Time) ([]string, error) {
	query := `
		WITH picked AS (
			SELECT id
			FROM stock_items
			WHERE variant_id = $1 AND NOT is_sold
			ORDER BY id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE stock_items s
		SET is_sold = TRUE, sold_at = $3, purchase_token = $4
		FROM picked
		WHERE s.id = picked.id AND (SELECT COUNT(*) FROM picked) = $2
		RETURNING s.payload
	`
	rows, err := r.db.Query(ctx, query, variantID, qty, soldAt, token)
	if err != nil {
		zap.L().Error("can't claim stock items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payloads []string
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			zap.L().Error("can't scan claimed payload", zap.Error(err))
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("claim rows iteration failed", zap.Error(err))
		return nil, err
	}
	return payloads, nil
}

func (r *Repository) InsertStock(ctx context.Context, variantID int, payloads []string) (int, error) {
	query := `
		INSERT INTO stock_items (variant_id, payload)
		SELECT $1, unnest($2::text[])
	`
	tag, err := r.db.Exec(ctx, query, variantID, payloads)
	if err != nil {
		zap.L().Error("can't insert stock items", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) CountUnsold(ctx context.Context, variantID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_items
		WHERE variant_id = $1 AND NOT is_sold
	`
	var count int
	err := r.db.QueryRow(ctx, query, variantID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unsold stock", zap.Error(err))
		return 0, err
	}
	return count, nil
}
