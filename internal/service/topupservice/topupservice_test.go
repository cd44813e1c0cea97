package topupservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
)

type staticIDGen struct{ id string }

func (g staticIDGen) NewID() string { return g.id }

func NewMock(t *testing.T, presets []int64) (*Service, *MockRepo, *MockLedger, *MockAdminChecker, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	topupRepo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	admins := NewMockAdminChecker(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(topupRepo, ledger, admins, staticIDGen{id: "t-new"}, txManager, presets)
	defer ctrl.Finish()
	return service, topupRepo, ledger, admins, txManager
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		presets       []int64
		amount        int64
		method        string
		prepareMock   func(topupRepo *MockRepo)
		expectedError error
	}{
		{
			name:    "Free-form amount accepted when no presets configured",
			presets: nil,
			amount:  575,
			method:  domain.MethodGCash,
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "Preset amount accepted",
			presets: []int64{100, 300, 500},
			amount:  300,
			method:  domain.MethodGoTyme,
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Off-preset amount rejected",
			presets:       []int64{100, 300, 500},
			amount:        250,
			method:        domain.MethodGCash,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Non-positive amount rejected",
			presets:       nil,
			amount:        0,
			method:        domain.MethodGCash,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Unknown method rejected",
			presets:       nil,
			amount:        500,
			method:        "paypal",
			expectedError: ErrInvalidMethod,
		},
		{
			name:    "Repository error",
			presets: nil,
			amount:  500,
			method:  domain.MethodGCash,
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, topupRepo, _, _, _ := NewMock(t, tt.presets)
			if tt.prepareMock != nil {
				tt.prepareMock(topupRepo)
			}

			topup, err := service.Create(context.Background(), 42, tt.amount, tt.method)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, topup)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "t-new", topup.ID)
				assert.Equal(t, int64(42), topup.UserID)
				assert.Equal(t, tt.amount, topup.Amount)
				assert.Equal(t, domain.TopupPending, topup.Status)
			}
		})
	}
}

func TestAttachProof(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(topupRepo *MockRepo)
		expectedError error
	}{
		{
			name: "Attaches proof to a pending topup",
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().GetByID(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", Status: domain.TopupPending}, nil)
				topupRepo.EXPECT().AttachProof(gomock.Any(), "t-1", "file-abc").Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Unknown topup",
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(nil, nil)
			},
			expectedError: ErrTopupNotFound,
		},
		{
			name: "Decided topup refuses proof",
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().GetByID(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", Status: domain.TopupApproved}, nil)
			},
			expectedError: ErrAlreadyDecided,
		},
		{
			name: "Decided while attaching",
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().GetByID(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", Status: domain.TopupPending}, nil)
				// The guarded UPDATE matched nothing: an admin decided the
				// top-up between the read and the write.
				topupRepo.EXPECT().AttachProof(gomock.Any(), "t-1", "file-abc").Return(false, nil)
			},
			expectedError: ErrAlreadyDecided,
		},
		{
			name: "Repository error",
			prepareMock: func(topupRepo *MockRepo) {
				topupRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, topupRepo, _, _, _ := NewMock(t, nil)
			if tt.prepareMock != nil {
				tt.prepareMock(topupRepo)
			}

			err := service.AttachProof(context.Background(), "t-1", "file-abc")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	passthroughTx := func(txManager *pg.MockTXManager) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
	}

	tests := []struct {
		name          string
		prepareMock   func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name: "Approval credits the user once",
			prepareMock: func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager) {
				admins.EXPECT().IsAdmin(int64(7)).Return(true)
				passthroughTx(txManager)
				topupRepo.EXPECT().GetForUpdate(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", UserID: 42, Amount: 500, Status: domain.TopupPending}, nil)
				topupRepo.EXPECT().SetDecision(gomock.Any(), "t-1", domain.TopupApproved, int64(7), gomock.Any()).Return(nil)
				ledger.EXPECT().Credit(gomock.Any(), int64(42), int64(500)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Second approval is refused without crediting",
			prepareMock: func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager) {
				admins.EXPECT().IsAdmin(int64(7)).Return(true)
				passthroughTx(txManager)
				decidedAt := time.Now()
				topupRepo.EXPECT().GetForUpdate(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", UserID: 42, Amount: 500, Status: domain.TopupApproved, DecidedAt: &decidedAt}, nil)
			},
			expectedError: ErrAlreadyDecided,
		},
		{
			name: "Non-admin is forbidden",
			prepareMock: func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager) {
				admins.EXPECT().IsAdmin(int64(7)).Return(false)
			},
			expectedError: ErrForbidden,
		},
		{
			name: "Unknown topup",
			prepareMock: func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager) {
				admins.EXPECT().IsAdmin(int64(7)).Return(true)
				passthroughTx(txManager)
				topupRepo.EXPECT().GetForUpdate(gomock.Any(), "t-1").Return(nil, nil)
			},
			expectedError: ErrTopupNotFound,
		},
		{
			name: "Credit failure aborts the decision",
			prepareMock: func(topupRepo *MockRepo, ledger *MockLedger, admins *MockAdminChecker, txManager *pg.MockTXManager) {
				admins.EXPECT().IsAdmin(int64(7)).Return(true)
				passthroughTx(txManager)
				topupRepo.EXPECT().GetForUpdate(gomock.Any(), "t-1").
					Return(&domain.Topup{ID: "t-1", UserID: 42, Amount: 500, Status: domain.TopupPending}, nil)
				topupRepo.EXPECT().SetDecision(gomock.Any(), "t-1", domain.TopupApproved, int64(7), gomock.Any()).Return(nil)
				ledger.EXPECT().Credit(gomock.Any(), int64(42), int64(500)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, topupRepo, ledger, admins, txManager := NewMock(t, nil)
			if tt.prepareMock != nil {
				tt.prepareMock(topupRepo, ledger, admins, txManager)
			}

			err := service.Approve(context.Background(), "t-1", 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, topupRepo, _, admins, txManager := NewMock(t, nil)

	admins.EXPECT().IsAdmin(int64(7)).Return(true)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
	topupRepo.EXPECT().GetForUpdate(gomock.Any(), "t-1").
		Return(&domain.Topup{ID: "t-1", UserID: 42, Amount: 500, Status: domain.TopupPending}, nil)
	topupRepo.EXPECT().SetDecision(gomock.Any(), "t-1", domain.TopupRejected, int64(7), gomock.Any()).Return(nil)

	// No ledger expectation: a rejection must never touch the balance.
	err := service.Reject(context.Background(), "t-1", 7)
	assert.NoError(t, err)
}

func TestListPending(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(topupRepo *MockRepo, admins *MockAdminChecker)
		expectedCount int
		expectedError error
	}{
		{
			name: "Admin sees the queue",
			prepareMock: func(topupRepo *MockRepo, admins *MockAdminChecker) {
				admins.EXPECT().IsAdmin(int64(7)).Return(true)
				topupRepo.EXPECT().ListPending(gomock.Any()).Return([]domain.Topup{
					{ID: "t-1", Status: domain.TopupPending},
					{ID: "t-2", Status: domain.TopupPending},
				}, nil)
			},
			expectedCount: 2,
			expectedError: nil,
		},
		{
			name: "Non-admin is forbidden",
			prepareMock: func(topupRepo *MockRepo, admins *MockAdminChecker) {
				admins.EXPECT().IsAdmin(int64(7)).Return(false)
			},
			expectedCount: 0,
			expectedError: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, topupRepo, _, admins, _ := NewMock(t, nil)
			if tt.prepareMock != nil {
				tt.prepareMock(topupRepo, admins)
			}

			topups, err := service.ListPending(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, topups, tt.expectedCount)
		})
	}
}
