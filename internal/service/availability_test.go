package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"

	repo_mocks "github.com/Astemirdum/lending-service/internal/repository/mocks"
)

var (
	testStart = time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 10, 8, 10, 0, 0, 0, time.UTC)
)

func activeItem(stock int) model.Item {
	return model.Item{
		ID:           1,
		Name:         "tripod",
		CategoryID:   1,
		CurrentStock: stock,
		IsActive:     true,
	}
}

func TestService_IsAvailable(t *testing.T) {
	t.Parallel()
	type input struct {
		itemID     int64
		start, end time.Time
		quantity   int
		excludeUid string
	}
	type mockBehavior func(r *repo_mocks.MockRepository, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		want         bool
	}{
		{
			name: "available. nothing committed",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), inp.itemID, inp.start, inp.end, inp.excludeUid).
					Return(0, nil)
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 2},
			want:  true,
		},
		{
			name: "available. exactly enough left",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), inp.itemID, inp.start, inp.end, inp.excludeUid).
					Return(3, nil)
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 2},
			want:  true,
		},
		{
			name: "unavailable. all stock committed over the window",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), inp.itemID, inp.start, inp.end, inp.excludeUid).
					Return(5, nil)
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 1},
			want:  false,
		},
		{
			name: "unavailable. stock below request before aggregation",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(2), nil)
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 3},
			want:  false,
		},
		{
			name: "available. own booking excluded from the aggregate",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), inp.itemID, inp.start, inp.end, "self-uid").
					Return(0, nil)
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 5, excludeUid: "self-uid"},
			want:  true,
		},
		{
			name: "unavailable. item missing or inactive",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(model.Item{}, errs.ErrNotFound)
			},
			input: input{itemID: 42, start: testStart, end: testEnd, quantity: 1},
			want:  false,
		},
		{
			name: "unavailable. storage error fails closed",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().GetActiveItem(gomock.Any(), inp.itemID).Return(activeItem(5), nil)
				r.EXPECT().
					CommittedQuantity(gomock.Any(), inp.itemID, inp.start, inp.end, inp.excludeUid).
					Return(0, errors.New("db internal"))
			},
			input: input{itemID: 1, start: testStart, end: testEnd, quantity: 1},
			want:  false,
		},
		{
			name:         "unavailable. non positive quantity",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			input:        input{itemID: 1, start: testStart, end: testEnd, quantity: 0},
			want:         false,
		},
		{
			name:         "unavailable. inverted window",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			input:        input{itemID: 1, start: testEnd, end: testStart, quantity: 1},
			want:         false,
		},
		{
			name:         "unavailable. empty window",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			input:        input{itemID: 1, start: testStart, end: testStart, quantity: 1},
			want:         false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.input)

			svc := NewService(repo, nil, zap.NewNop())

			got := svc.IsAvailable(context.Background(), tt.input.itemID, tt.input.start, tt.input.end, tt.input.quantity, tt.input.excludeUid)
			require.Equal(t, tt.want, got)
		})
	}
}
