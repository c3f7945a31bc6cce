package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// bookings
	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	ListBookings(ctx context.Context, f model.BookingFilter) (model.ListBookings, error)
	ListScheduledUids(ctx context.Context) ([]string, error)
	UpdateBookingStatus(ctx context.Context, bookingUid string, from, to model.BookingStatus) (model.Booking, error)
	CommittedQuantity(ctx context.Context, itemID int64, start, end time.Time, excludeUid string) (int, error)
	ActivateBooking(ctx context.Context, bookingUid string, now time.Time) (model.Booking, error)
	ReturnBooking(ctx context.Context, bookingUid string, ret model.ReturnBookingRequest, processor string, now time.Time) (model.Booking, error)

	// items
	GetItem(ctx context.Context, itemID int64) (model.Item, error)
	GetActiveItem(ctx context.Context, itemID int64) (model.Item, error)
	ListItems(ctx context.Context, showAll bool, page, size int) (model.ListItems, error)
	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	UpdateItem(ctx context.Context, itemID int64, upd model.UpdateItemRequest, now time.Time) (model.Item, error)
	DeactivateItem(ctx context.Context, itemID int64, now time.Time) error

	// categories
	CreateCategory(ctx context.Context, cat model.Category) (model.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, upd model.UpdateCategoryRequest, now time.Time) (model.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	NextSequence(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookingTableName  = `bookings`
	itemTableName     = `items`
	categoryTableName = `categories`
	sequenceTableName = `sequence_counters`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// withTx runs fn inside a transaction: commit when fn returns nil, rollback otherwise.
func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

func (r *repository) NextSequence(ctx context.Context, name string) (int64, error) {
	q := `
	insert into sequence_counters (name, value) values ($1, 1)
	on conflict (name) do update set value = sequence_counters.value + 1
	returning value`

	var value int64
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&value); err != nil {
		return 0, errors.Wrapf(err, "next sequence %q", name)
	}
	return value, nil
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgErrCode(err, pgerrcode.UniqueViolation)
}

func isCheckViolation(err error) bool {
	return isPgErrCode(err, pgerrcode.CheckViolation)
}
