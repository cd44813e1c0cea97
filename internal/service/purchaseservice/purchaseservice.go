package purchaseservice

import (
	"context"
	"errors"
	"time"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
	"github.com/jbaylon/stashbot/pkg/ident"
	"go.uber.org/zap"
)

type VariantRepo interface {
	GetVariant(ctx context.Context, variantID int) (*domain.Variant, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	MarkDelivered(ctx context.Context, token string, deliveredAt time.Time) error
	FindByUserID(ctx context.Context, userID int64) ([]domain.Purchase, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int64, amount int64) error
}

type Inventory interface {
	Claim(ctx context.Context, variantID int, qty int, token string) ([]string, error)
}

// maxQty caps a single purchase, which also keeps qty*price well inside
// int64 range.
const maxQty = 100

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrVariantNotFound = errors.New("variant not found")
	ErrVariantInactive = errors.New("variant inactive")
)

// Service orchestrates a purchase: balance debit, stock claim, purchase
// record, and delivery mark form one transaction. Money is never taken
// without stock and stock is never handed out without payment.
type Service struct {
	variantRepo  VariantRepo
	purchaseRepo PurchaseRepo
	ledger       Ledger
	inventory    Inventory
	idGen        ident.Generator
	txManager    pg.TXManager
}

func New(variantRepo VariantRepo, purchaseRepo PurchaseRepo, ledger Ledger, inventory Inventory, idGen ident.Generator, txManager pg.TXManager) *Service {
	return &Service{
		variantRepo:  variantRepo,
		purchaseRepo: purchaseRepo,
		ledger:       ledger,
		inventory:    inventory,
		idGen:        idGen,
		txManager:    txManager,
	}
}

func (s *Service) Purchase(ctx context.Context, userID int64, variantID int, qty int) (*domain.Purchase, []string, error) {
	if qty <= 0 || qty > maxQty {
		return nil, nil, ErrInvalidQuantity
	}

	variant, err := s.variantRepo.GetVariant(ctx, variantID)
	if err != nil {
		zap.L().Error("failed to look up variant", zap.Error(err))
		return nil, nil, err
	}
	if variant == nil {
		return nil, nil, ErrVariantNotFound
	}
	if !variant.IsActive {
		return nil, nil, ErrVariantInactive
	}

	purchase := &domain.Purchase{
		Token:      s.idGen.NewID(),
		UserID:     userID,
		VariantID:  variantID,
		Qty:        qty,
		UnitPrice:  variant.Price,
		TotalPrice: variant.Price * int64(qty),
	}

	var payloads []string
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledger.Debit(ctx, userID, purchase.TotalPrice); err != nil {
			return err
		}
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		claimed, err := s.inventory.Claim(ctx, variantID, qty, purchase.Token)
		if err != nil {
			return err
		}
		payloads = claimed

		deliveredAt := time.Now()
		if err := s.purchaseRepo.MarkDelivered(ctx, purchase.Token, deliveredAt); err != nil {
			return err
		}
		purchase.Delivered = true
		purchase.DeliveredAt = &deliveredAt
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("purchase completed",
		zap.String("token", purchase.Token),
		zap.Int64("userID", userID),
		zap.Int("variantID", variantID),
		zap.Int("qty", qty),
		zap.Int64("total", purchase.TotalPrice))
	return purchase, payloads, nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchase history", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
