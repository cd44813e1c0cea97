package purchaserepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) error {
	query := `
		INSERT INTO purchases (token, user_id, variant_id, qty, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		purchase.Token, purchase.UserID, purchase.VariantID,
		purchase.Qty, purchase.UnitPrice, purchase.TotalPrice,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkDelivered(ctx context.Context, token string, deliveredAt time.Time) error {
	query := `
		UPDATE purchases
		SET delivered = TRUE, delivered_at = $1
		WHERE token = $2
	`
	_, err := r.db.Exec(ctx, query, deliveredAt, token)
	if err != nil {
		zap.L().Error("can't mark purchase delivered", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	query := `
		SELECT id, token, user_id, variant_id, qty, unit_price, total_price, delivered, delivered_at, created_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.Token, &p.UserID, &p.VariantID, &p.Qty,
			&p.UnitPrice, &p.TotalPrice, &p.Delivered, &p.DeliveredAt, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
