package inventoryservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Repo interface {
	Claim(ctx context.Context, variantID int, qty int, token string, soldAt time.Time) ([]string, error)
	InsertStock(ctx context.Context, variantID int, payloads []string) (int, error)
	CountUnsold(ctx context.Context, variantID int) (int, error)
}

var (
	ErrOutOfStock = errors.New("out of stock")
	ErrNoPayloads = errors.New("no stock payloads supplied")
)

type Service struct {
	stockRepo Repo
}

func New(stockRepo Repo) *Service {
	return &Service{
		stockRepo: stockRepo,
	}
}

// Claim reserves exactly qty unsold items for the purchase token and returns
// their payloads. The repository statement touches either qty rows or none,
// so a short pool surfaces as ErrOutOfStock with nothing mutated.
func (s *Service) Claim(ctx context.Context, variantID int, qty int, token string) ([]string, error) {
	payloads, err := s.stockRepo.Claim(ctx, variantID, qty, token, time.Now())
	if err != nil {
		zap.L().Error("failed to claim stock", zap.Error(err))
		return nil, err
	}
	if len(payloads) != qty {
		return nil, ErrOutOfStock
	}
	return payloads, nil
}

// AddStock parses an admin upload, one payload per non-empty line, and
// inserts the items as unsold stock of the variant.
func (s *Service) AddStock(ctx context.Context, variantID int, raw string) (int, error) {
	var payloads []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		payloads = append(payloads, line)
	}
	if len(payloads) == 0 {
		return 0, ErrNoPayloads
	}

	added, err := s.stockRepo.InsertStock(ctx, variantID, payloads)
	if err != nil {
		zap.L().Error("failed to insert stock", zap.Error(err))
		return 0, err
	}
	zap.L().Info("stock added", zap.Int("variantID", variantID), zap.Int("count", added))
	return added, nil
}

func (s *Service) Available(ctx context.Context, variantID int) (int, error) {
	count, err := s.stockRepo.CountUnsold(ctx, variantID)
	if err != nil {
		zap.L().Error("failed to count unsold stock", zap.Error(err))
		return 0, err
	}
	return count, nil
}
