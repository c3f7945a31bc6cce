package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/model"
)

// IsAvailable reports whether quantity units of the item can be committed over
// the half-open window [start, end). Fail-closed: any uncertainty, storage
// error included, yields false and never an error.
func (s *Service) IsAvailable(ctx context.Context, itemID int64, start, end time.Time, quantity int, excludeBookingUid string) bool {
	if quantity <= 0 || !start.Before(end) {
		return false
	}
	item, err := s.repo.GetActiveItem(ctx, itemID)
	if err != nil {
		return false
	}
	return s.isAvailable(ctx, item, start, end, quantity, excludeBookingUid)
}

func (s *Service) isAvailable(ctx context.Context, item model.Item, start, end time.Time, quantity int, excludeBookingUid string) bool {
	if !item.IsActive {
		return false
	}
	// physical stock alone cannot satisfy the request
	if item.CurrentStock < quantity {
		return false
	}

	committed, err := s.repo.CommittedQuantity(ctx, item.ID, start.UTC(), end.UTC(), excludeBookingUid)
	if err != nil {
		s.log.Error("committed quantity", zap.Int64("item_id", item.ID), zap.Error(err))
		return false
	}

	effective := item.CurrentStock - committed
	s.log.Debug("availability check",
		zap.Int64("item_id", item.ID),
		zap.Int("stock", item.CurrentStock),
		zap.Int("committed", committed),
		zap.Int("effective", effective),
		zap.Int("requested", quantity))
	return effective >= quantity
}
