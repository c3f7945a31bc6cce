package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

// Scheduler periodically activates scheduled bookings. Each booking is
// processed in its own transaction, so one failure never blocks the rest.
type Scheduler struct {
	svc      *Service
	log      *zap.Logger
	interval time.Duration
}

func NewScheduler(svc *Service, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		svc:      svc,
		log:      log.Named("scheduler"),
		interval: interval,
	}
}

type ActivationStats struct {
	Processed int
	Activated int
	Cancelled int
	Errored   int
}

func (s *Scheduler) Run(ctx context.Context) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.log.Info("activation scheduler started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("activation scheduler stopped")
			return ctx.Err()
		case <-t.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce scans every scheduled booking and runs the activation transition.
// Per-booking faults are counted and logged, never propagated.
func (s *Scheduler) RunOnce(ctx context.Context) ActivationStats {
	var stats ActivationStats

	uids, err := s.svc.repo.ListScheduledUids(ctx)
	if err != nil {
		s.log.Error("list scheduled bookings", zap.Error(err))
		stats.Errored++
		return stats
	}
	stats.Processed = len(uids)
	s.log.Info("activation run", zap.Int("scheduled", len(uids)))

	for _, uid := range uids {
		b, err := s.svc.ActivateBooking(ctx, uid)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			// raced with a manual activation between the scan and the CAS
			continue
		case err != nil:
			stats.Errored++
			s.log.Error("activate booking", zap.String("booking_uid", uid), zap.Error(err))
		case b.Status == model.StatusCancelled:
			stats.Cancelled++
		default:
			stats.Activated++
		}
	}

	s.log.Info("activation run finished",
		zap.Int("processed", stats.Processed),
		zap.Int("activated", stats.Activated),
		zap.Int("cancelled", stats.Cancelled),
		zap.Int("errored", stats.Errored))
	return stats
}
