package topupservice

import (
	"context"
	"errors"
	"time"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
	"github.com/jbaylon/stashbot/pkg/ident"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, topup *domain.Topup) error
	GetByID(ctx context.Context, topupID string) (*domain.Topup, error)
	GetForUpdate(ctx context.Context, topupID string) (*domain.Topup, error)
	SetDecision(ctx context.Context, topupID string, status string, adminID int64, decidedAt time.Time) error
	AttachProof(ctx context.Context, topupID string, fileID string) (bool, error)
	ListPending(ctx context.Context) ([]domain.Topup, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int64, amount int64) error
}

type AdminChecker interface {
	IsAdmin(userID int64) bool
}

var (
	ErrInvalidAmount  = errors.New("invalid topup amount")
	ErrInvalidMethod  = errors.New("unsupported payment method")
	ErrTopupNotFound  = errors.New("topup not found")
	ErrAlreadyDecided = errors.New("topup already decided")
	ErrForbidden      = errors.New("forbidden")
)

// Service drives the top-up state machine: PENDING -> APPROVED | REJECTED,
// both terminal. The balance credit happens in the same transaction as the
// APPROVED transition, so it occurs exactly once per top-up.
type Service struct {
	topupRepo Repo
	ledger    Ledger
	admins    AdminChecker
	idGen     ident.Generator
	txManager pg.TXManager
	presets   map[int64]struct{}
}

// New builds the workflow. presetAmounts restricts top-ups to fixed
// denominations; an empty slice allows any positive amount.
func New(topupRepo Repo, ledger Ledger, admins AdminChecker, idGen ident.Generator, txManager pg.TXManager, presetAmounts []int64) *Service {
	var presets map[int64]struct{}
	if len(presetAmounts) > 0 {
		presets = make(map[int64]struct{}, len(presetAmounts))
		for _, a := range presetAmounts {
			presets[a] = struct{}{}
		}
	}
	return &Service{
		topupRepo: topupRepo,
		ledger:    ledger,
		admins:    admins,
		idGen:     idGen,
		txManager: txManager,
		presets:   presets,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, amount int64, method string) (*domain.Topup, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if s.presets != nil {
		if _, ok := s.presets[amount]; !ok {
			return nil, ErrInvalidAmount
		}
	}
	if method != domain.MethodGCash && method != domain.MethodGoTyme {
		return nil, ErrInvalidMethod
	}

	topup := &domain.Topup{
		ID:     s.idGen.NewID(),
		UserID: userID,
		Amount: amount,
		Method: method,
		Status: domain.TopupPending,
	}
	if err := s.topupRepo.Create(ctx, topup); err != nil {
		zap.L().Error("failed to create topup", zap.Error(err))
		return nil, err
	}
	zap.L().Info("topup created",
		zap.String("topupID", topup.ID),
		zap.Int64("userID", userID),
		zap.Int64("amount", amount),
		zap.String("method", method))
	return topup, nil
}

// AttachProof stores the payment screenshot reference for admin review.
// Allowed only while the top-up is still pending.
func (s *Service) AttachProof(ctx context.Context, topupID string, fileID string) error {
	topup, err := s.topupRepo.GetByID(ctx, topupID)
	if err != nil {
		zap.L().Error("failed to get topup", zap.Error(err))
		return err
	}
	if topup == nil {
		return ErrTopupNotFound
	}
	if topup.Status != domain.TopupPending {
		return ErrAlreadyDecided
	}
	updated, err := s.topupRepo.AttachProof(ctx, topupID, fileID)
	if err != nil {
		zap.L().Error("failed to attach proof", zap.Error(err))
		return err
	}
	if !updated {
		// Decided between the status check and the update.
		return ErrAlreadyDecided
	}
	return nil
}

func (s *Service) Approve(ctx context.Context, topupID string, adminID int64) error {
	return s.decide(ctx, topupID, adminID, domain.TopupApproved)
}

func (s *Service) Reject(ctx context.Context, topupID string, adminID int64) error {
	return s.decide(ctx, topupID, adminID, domain.TopupRejected)
}

// decide locks the top-up row, verifies it is still pending, records the
// decision, and credits the ledger on approval — all inside one transaction,
// so a crash can never separate the status flip from the credit.
func (s *Service) decide(ctx context.Context, topupID string, adminID int64, status string) error {
	if !s.admins.IsAdmin(adminID) {
		return ErrForbidden
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		topup, err := s.topupRepo.GetForUpdate(ctx, topupID)
		if err != nil {
			return err
		}
		if topup == nil {
			return ErrTopupNotFound
		}
		if topup.Status != domain.TopupPending {
			return ErrAlreadyDecided
		}

		if err := s.topupRepo.SetDecision(ctx, topupID, status, adminID, time.Now()); err != nil {
			return err
		}
		if status == domain.TopupApproved {
			if err := s.ledger.Credit(ctx, topup.UserID, topup.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTopupNotFound) || errors.Is(err, ErrAlreadyDecided) {
			return err
		}
		zap.L().Error("failed to decide topup", zap.Error(err), zap.String("topupID", topupID))
		return err
	}

	zap.L().Info("topup decided",
		zap.String("topupID", topupID),
		zap.String("status", status),
		zap.Int64("adminID", adminID))
	return nil
}

func (s *Service) ListPending(ctx context.Context, adminID int64) ([]domain.Topup, error) {
	if !s.admins.IsAdmin(adminID) {
		return nil, ErrForbidden
	}
	topups, err := s.topupRepo.ListPending(ctx)
	if err != nil {
		zap.L().Error("failed to list pending topups", zap.Error(err))
		return nil, err
	}
	return topups, nil
}
