package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	ScheduleBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	ApproveBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	RejectBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	ActivateBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	ReturnBooking(ctx context.Context, bookingUid string, req model.ReturnBookingRequest, processor string) (model.Booking, error)
	GetBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	ListBookings(ctx context.Context, f model.BookingFilter) (model.ListBookings, error)
	IsAvailable(ctx context.Context, itemID int64, start, end time.Time, quantity int, excludeBookingUid string) bool

	CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, itemID int64) (model.Item, error)
	ListItems(ctx context.Context, showAll bool, page, size int) (model.ListItems, error)
	UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error

	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, req model.UpdateCategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

var _ LendingService = (*service.Service)(nil)
