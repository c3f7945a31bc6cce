package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	now      func() time.Time
}

// NewService wires the booking state machine. producer may be nil, in which
// case lifecycle events are not published.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		now:      time.Now,
	}
}

// ScheduleBooking validates the requested window, gates it through the
// availability calculator and persists a pending_approval booking. Stock is
// not touched here: until activation the booking occupies capacity only
// through the committed-quantity aggregate.
func (s *Service) ScheduleBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	now := s.now().UTC()
	start, end := req.StartDate.UTC(), req.EndDate.UTC()

	if !start.After(now) {
		return model.Booking{}, errs.ErrPastStartDate
	}
	if !end.After(start) {
		return model.Booking{}, errs.ErrInvalidWindow
	}

	item, err := s.repo.GetActiveItem(ctx, req.ItemID)
	if err != nil {
		return model.Booking{}, err
	}

	if !s.isAvailable(ctx, item, start, end, req.Quantity, "") {
		return model.Booking{}, errs.ErrUnavailable
	}

	b := model.Booking{
		BookingUid:   uuid.NewString(),
		ItemID:       item.ID,
		Username:     req.Username,
		Quantity:     req.Quantity,
		BorrowedDate: start,
		DueDate:      end,
		Status:       model.StatusPendingApproval,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.BorrowingNotes != "" {
		b.BorrowingNotes = &req.BorrowingNotes
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(created)
	return created, nil
}

func (s *Service) ApproveBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	b, err := s.repo.UpdateBookingStatus(ctx, bookingUid, model.StatusPendingApproval, model.StatusScheduled)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

func (s *Service) RejectBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	b, err := s.repo.UpdateBookingStatus(ctx, bookingUid, model.StatusPendingApproval, model.StatusRejected)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

// ActivateBooking runs the scheduled->borrowed transition. A booking that
// fails its activation-time re-check comes back as cancelled with a nil
// error: that outcome is a committed state change, not a fault.
func (s *Service) ActivateBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	b, err := s.repo.ActivateBooking(ctx, bookingUid, s.now())
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

func (s *Service) ReturnBooking(ctx context.Context, bookingUid string, req model.ReturnBookingRequest, processor string) (model.Booking, error) {
	b, err := s.repo.ReturnBooking(ctx, bookingUid, req, processor, s.now())
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	return s.repo.GetBooking(ctx, bookingUid)
}

func (s *Service) ListBookings(ctx context.Context, f model.BookingFilter) (model.ListBookings, error) {
	return s.repo.ListBookings(ctx, f)
}

func (s *Service) publish(b model.Booking) {
	if s.producer == nil {
		return
	}
	ev := model.BookingEvent{
		BookingUid: b.BookingUid,
		ItemID:     b.ItemID,
		Username:   b.Username,
		Quantity:   b.Quantity,
		Status:     b.Status,
		OccurredAt: b.UpdatedAt,
	}
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshal booking event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookingEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		// best effort: the transition is already committed
		s.log.Error("publish booking event", zap.String("booking_uid", b.BookingUid), zap.Error(err))
	}
}
