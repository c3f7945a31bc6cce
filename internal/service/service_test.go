package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"

	repo_mocks "github.com/Astemirdum/lending-service/internal/repository/mocks"
)

var testNow = time.Date(2025, 9, 20, 12, 0, 0, 0, time.UTC)

func newTestService(repo *repo_mocks.MockRepository) *Service {
	svc := NewService(repo, nil, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestService_ScheduleBooking(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateBookingRequest)

	okReq := model.CreateBookingRequest{
		ItemID:    1,
		StartDate: testStart,
		EndDate:   testEnd,
		Quantity:  2,
		Username:  "alice",
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          model.CreateBookingRequest
		wantStatus   model.BookingStatus
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetActiveItem(gomock.Any(), req.ItemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), req.ItemID, testStart, testEnd, "").
					Return(0, nil)
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) (model.Booking, error) {
						require.NotEmpty(t, b.BookingUid)
						require.Equal(t, model.StatusPendingApproval, b.Status)
						require.Equal(t, req.Username, b.Username)
						require.Equal(t, req.Quantity, b.Quantity)
						require.True(t, b.BorrowedDate.Equal(testStart))
						require.True(t, b.DueDate.Equal(testEnd))
						b.ID = 1
						return b, nil
					})
			},
			req:        okReq,
			wantStatus: model.StatusPendingApproval,
		},
		{
			name:         "err. start date not in the future",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {},
			req: model.CreateBookingRequest{
				ItemID:    1,
				StartDate: testNow.Add(-time.Hour),
				EndDate:   testEnd,
				Quantity:  1,
				Username:  "alice",
			},
			wantErr: errs.ErrPastStartDate,
		},
		{
			name:         "err. start date equals now",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {},
			req: model.CreateBookingRequest{
				ItemID:    1,
				StartDate: testNow,
				EndDate:   testEnd,
				Quantity:  1,
				Username:  "alice",
			},
			wantErr: errs.ErrPastStartDate,
		},
		{
			name:         "err. end date not after start",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {},
			req: model.CreateBookingRequest{
				ItemID:    1,
				StartDate: testStart,
				EndDate:   testStart,
				Quantity:  1,
				Username:  "alice",
			},
			wantErr: errs.ErrInvalidWindow,
		},
		{
			name: "err. window already fully committed",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetActiveItem(gomock.Any(), req.ItemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), req.ItemID, testStart, testEnd, "").
					Return(4, nil)
			},
			req:     okReq,
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "err. item not found",
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateBookingRequest) {
				r.EXPECT().GetActiveItem(gomock.Any(), req.ItemID).Return(model.Item{}, errs.ErrNotFound)
			},
			req:     okReq,
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)

			svc := newTestService(repo)

			b, err := svc.ScheduleBooking(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, b.Status)
		})
	}
}

func TestService_ApproveRejectBooking(t *testing.T) {
	t.Parallel()
	const uid = "c9f3a7c6-2d55-4f4b-9b6a-0f6f3f1c2ab1"

	var tests = []struct {
		name string
		call func(svc *Service) (model.Booking, error)
		from model.BookingStatus
		to   model.BookingStatus
	}{
		{
			name: "approve moves pending to scheduled",
			call: func(svc *Service) (model.Booking, error) {
				return svc.ApproveBooking(context.Background(), uid)
			},
			from: model.StatusPendingApproval,
			to:   model.StatusScheduled,
		},
		{
			name: "reject moves pending to rejected",
			call: func(svc *Service) (model.Booking, error) {
				return svc.RejectBooking(context.Background(), uid)
			},
			from: model.StatusPendingApproval,
			to:   model.StatusRejected,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			repo.EXPECT().
				UpdateBookingStatus(gomock.Any(), uid, tt.from, tt.to).
				Return(model.Booking{BookingUid: uid, Status: tt.to}, nil)

			svc := newTestService(repo)

			b, err := tt.call(svc)
			require.NoError(t, err)
			require.Equal(t, tt.to, b.Status)
		})
	}

	t.Run("approve misses non pending booking", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().
			UpdateBookingStatus(gomock.Any(), uid, model.StatusPendingApproval, model.StatusScheduled).
			Return(model.Booking{}, errs.ErrNotFound)

		svc := newTestService(repo)

		_, err := svc.ApproveBooking(context.Background(), uid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
