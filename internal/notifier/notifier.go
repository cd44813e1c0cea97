// Package notifier pushes top-up decisions to the chat gateway so the
// frontend can message the user. Delivery is at-least-once: a top-up is only
// marked notified after the gateway acknowledged the webhook.
package notifier

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jbaylon/stashbot/internal/config"
	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var notifying sync.Map

// Event is the webhook body the gateway receives for every decided top-up.
type Event struct {
	TopupID string `json:"topup_id"`
	UserID  int64  `json:"user_id"`
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
	Status  string `json:"status"`
}

type TopupRepo interface {
	FindUnnotified(ctx context.Context, limit uint32) ([]domain.Topup, error)
	MarkNotified(ctx context.Context, topupID string, notifiedAt time.Time) error
}

type Service struct {
	url          string
	topupRepo    TopupRepo
	client       clients.HTTPClientI
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, topupRepo TopupRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.GatewayWebhook,
		topupRepo:    topupRepo,
		client:       client,
		limit:        100,
		workerPool:   NewWorkerPool(5),
		pollInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("topup notifier started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping notifier")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processTopups(ctx)
		}
	}
}

func (s *Service) processTopups(ctx context.Context) {
	topups, err := s.topupRepo.FindUnnotified(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch unnotified topups", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, topup := range topups {
		topup := topup

		if _, loaded := notifying.LoadOrStore(topup.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer notifying.Delete(topup.ID)
				return s.notify(ctx, topup)
			})
			if err != nil {
				notifying.Delete(topup.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching notifications", zap.Error(err))
	}
}

func (s *Service) notify(ctx context.Context, topup domain.Topup) error {
	event := Event{
		TopupID: topup.ID,
		UserID:  topup.UserID,
		Amount:  topup.Amount,
		Method:  topup.Method,
		Status:  topup.Status,
	}

	url := s.url + "/webhook/topup"
	var statusCode int
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err = s.client.PostJSON(ctx, url, event)
		if err == nil && statusCode < http.StatusInternalServerError {
			break
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	if err != nil {
		return fmt.Errorf("failed to notify gateway about topup %s after %d retries: %w", topup.ID, maxRetries, err)
	}
	if statusCode >= http.StatusInternalServerError {
		// Still unnotified: the next poll picks the row up again.
		return fmt.Errorf("gateway unavailable for topup notification %s: status %d", topup.ID, statusCode)
	}
	if statusCode != http.StatusOK {
		// A 4xx rejection is terminal. Take the row out of the poll set,
		// otherwise it would be re-posted on every tick and eventually crowd
		// out newer notifications.
		if markErr := s.topupRepo.MarkNotified(ctx, topup.ID, time.Now()); markErr != nil {
			return fmt.Errorf("failed to mark rejected topup %s notified: %w", topup.ID, markErr)
		}
		return fmt.Errorf("gateway rejected topup notification %s: status %d", topup.ID, statusCode)
	}

	if err := s.topupRepo.MarkNotified(ctx, topup.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark topup %s notified: %w", topup.ID, err)
	}

	zap.L().Info("topup decision pushed to gateway",
		zap.String("topupID", topup.ID),
		zap.String("status", topup.Status))
	return nil
}
