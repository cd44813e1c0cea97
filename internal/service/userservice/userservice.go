package userservice

import (
	"context"
	"errors"
	"time"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
}

var ErrUserNotFound = errors.New("user not found")

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
}

func New(userRepo Repo, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register is idempotent: repeated calls for the same platform user return
// the existing row untouched.
func (s *Service) Register(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int64) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Balance, nil
}

func (s *Service) GenerateToken(userID int64) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
