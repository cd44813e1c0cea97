package ledgerservice

import (
	"context"
	"errors"

	"github.com/jbaylon/stashbot/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	LockBalance(ctx context.Context, userID int64) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID int64, balance int64) error
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Service mutates user balances with read-modify-write under a row lock.
// Both operations expect to run inside the caller's transaction: the workflow
// wraps them in TXManager.Begin together with the rest of its writes, so a
// failed claim or a crash rolls the balance change back with everything else.
type Service struct {
	userRepo Repo
}

func New(userRepo Repo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Credit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	user, err := s.userRepo.LockBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock balance for credit", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.UpdateBalance(ctx, userID, user.Balance+amount); err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Debit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	user, err := s.userRepo.LockBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock balance for debit", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Balance < amount {
		return ErrInsufficientFunds
	}
	if err := s.userRepo.UpdateBalance(ctx, userID, user.Balance-amount); err != nil {
		zap.L().Error("failed to debit balance", zap.Error(err))
		return err
	}
	return nil
}
