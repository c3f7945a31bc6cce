package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

// bookingColumns classifies a borrowed booking past its due date as overdue at
// read time; overdue is never persisted.
const bookingColumns = `id, booking_uid, item_id, username, quantity, borrowed_date, due_date,
	case when status = 'borrowed' and due_date < now() then 'overdue' else status end as status,
	returned_date, condition_on_return, return_processor, return_notes, borrowing_notes,
	created_at, updated_at`

func (r *repository) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	q, args, err := qb.Insert(bookingTableName).
		Columns("booking_uid", "item_id", "username", "quantity",
			"borrowed_date", "due_date", "status", "borrowing_notes", "created_at", "updated_at").
		Values(b.BookingUid, b.ItemID, b.Username, b.Quantity,
			b.BorrowedDate, b.DueDate, b.Status, b.BorrowingNotes, b.CreatedAt, b.UpdatedAt).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, err
	}
	return res, nil
}

func (r *repository) GetBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	q := fmt.Sprintf(`select %s from %s where booking_uid = $1`, bookingColumns, bookingTableName)

	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, bookingUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) ListBookings(ctx context.Context, f model.BookingFilter) (model.ListBookings, error) {
	q := qb.Select(bookingColumns).
		From(bookingTableName).
		OrderBy("borrowed_date desc")

	if f.Username != "" {
		q = q.Where(sq.Eq{"username": f.Username})
	}
	if f.ItemID != 0 {
		q = q.Where(sq.Eq{"item_id": f.ItemID})
	}
	if len(f.Statuses) > 0 {
		// filter on the derived status, so asking for overdue works
		q = q.Where(sq.Eq{"case when status = 'borrowed' and due_date < now() then 'overdue' else status end": f.Statuses})
	}
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBookings{}, err
	}
	r.log.Debug("ListBookings", zap.String("query", query), zap.Any("args", args))

	var bookings []model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return model.ListBookings{}, err
	}

	return model.ListBookings{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: len(bookings),
		},
		Items: bookings,
	}, nil
}

func (r *repository) ListScheduledUids(ctx context.Context) ([]string, error) {
	q := `select booking_uid from bookings where status = 'scheduled' order by due_date`

	var uids []string
	if err := r.db.SelectContext(ctx, &uids, q); err != nil {
		return nil, err
	}
	return uids, nil
}

// UpdateBookingStatus is a compare-and-swap: the row moves from -> to only if
// it is still in the expected state, otherwise ErrNotFound.
func (r *repository) UpdateBookingStatus(ctx context.Context, bookingUid string, from, to model.BookingStatus) (model.Booking, error) {
	q := fmt.Sprintf(`update %s set status = $1, updated_at = now()
	where booking_uid = $2 and status = $3
	returning %s`, bookingTableName, bookingColumns)

	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, to, bookingUid, from); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) CommittedQuantity(ctx context.Context, itemID int64, start, end time.Time, excludeUid string) (int, error) {
	return committedQuantity(ctx, r.db, itemID, start, end, excludeUid)
}

// committedQuantity sums quantities of bookings that occupy capacity over the
// half-open window [start, end). Interval overlap: due_date > start AND
// borrowed_date < end, so touching boundaries never conflict.
func committedQuantity(ctx context.Context, db sqlx.QueryerContext, itemID int64, start, end time.Time, excludeUid string) (int, error) {
	q := qb.Select("coalesce(sum(quantity), 0)").
		From(bookingTableName).
		Where(sq.Eq{"item_id": itemID}).
		Where(sq.Eq{"status": []model.BookingStatus{model.StatusBorrowed, model.StatusOverdue, model.StatusScheduled}}).
		Where(sq.Gt{"due_date": start.UTC()}).
		Where(sq.Lt{"borrowed_date": end.UTC()})

	if excludeUid != "" {
		q = q.Where(sq.NotEq{"booking_uid": excludeUid})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var sum int
	if err := db.QueryRowxContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// ActivateBooking converts a scheduled booking into an active loan inside one
// transaction: lock the booking row, lock the item row, re-check effective
// availability under the lock, then decrement stock and flip the status
// together. A failed re-check commits the booking as cancelled and leaves the
// item untouched. Activation past the due date still starts the loan; the
// returned row already reads as overdue.
func (r *repository) ActivateBooking(ctx context.Context, bookingUid string, now time.Time) (model.Booking, error) {
	now = now.UTC()
	var out model.Booking
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var b model.Booking
		q := `select * from bookings where booking_uid = $1 and status = 'scheduled' for update`
		if err := tx.GetContext(ctx, &b, q, bookingUid); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if b.Quantity <= 0 {
			return errors.Wrapf(errs.ErrInconsistent, "booking %s quantity %d", bookingUid, b.Quantity)
		}

		// Locking the item before the aggregate serializes concurrent
		// activations touching the same item.
		var item model.Item
		if err := tx.GetContext(ctx, &item, `select * from items where id = $1 for update`, b.ItemID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errors.Wrapf(errs.ErrInconsistent, "booking %s references missing item %d", bookingUid, b.ItemID)
			}
			return err
		}

		available := item.IsActive && item.CurrentStock >= b.Quantity
		if available {
			committed, err := committedQuantity(ctx, tx, b.ItemID, now, b.DueDate, b.BookingUid)
			if err != nil {
				return err
			}
			available = item.CurrentStock-committed >= b.Quantity
		}

		if !available {
			cq := fmt.Sprintf(`update %s set status = $1, updated_at = $2 where id = $3 returning %s`,
				bookingTableName, bookingColumns)
			if err := tx.GetContext(ctx, &out, cq, model.StatusCancelled, now, b.ID); err != nil {
				return err
			}
			r.log.Warn("activation re-check failed, booking cancelled",
				zap.String("booking_uid", bookingUid), zap.Int64("item_id", b.ItemID))
			return nil
		}

		res, err := tx.ExecContext(ctx,
			`update items set current_stock = current_stock - $1, updated_at = $2
			where id = $3 and is_active and current_stock >= $1`,
			b.Quantity, now, b.ItemID)
		if err != nil {
			if isCheckViolation(err) {
				return errors.Wrapf(errs.ErrInconsistent, "stock underflow on item %d", b.ItemID)
			}
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return errors.Wrapf(errs.ErrInconsistent, "stock decrement matched no rows for item %d", b.ItemID)
		}

		uq := fmt.Sprintf(`update %s set status = $1, borrowed_date = $2, updated_at = $2
		where id = $3 and status = 'scheduled'
		returning %s`, bookingTableName, bookingColumns)
		if err := tx.GetContext(ctx, &out, uq, model.StatusBorrowed, now, b.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// ReturnBooking closes an active loan; stock is restored only for a good-
// condition return, both writes in one transaction.
func (r *repository) ReturnBooking(ctx context.Context, bookingUid string, ret model.ReturnBookingRequest, processor string, now time.Time) (model.Booking, error) {
	now = now.UTC()
	var out model.Booking
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var b model.Booking
		q := `select * from bookings
		where booking_uid = $1 and status in ('borrowed', 'overdue') for update`
		if err := tx.GetContext(ctx, &b, q, bookingUid); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if b.Quantity <= 0 {
			return errors.Wrapf(errs.ErrInconsistent, "booking %s quantity %d", bookingUid, b.Quantity)
		}

		uq := fmt.Sprintf(`update %s set status = $1, returned_date = $2, condition_on_return = $3,
			return_processor = $4, return_notes = $5, updated_at = $2
		where id = $6
		returning %s`, bookingTableName, bookingColumns)
		if err := tx.GetContext(ctx, &out, uq,
			model.StatusReturned, now, ret.Condition, processor, ret.ReturnNotes, b.ID); err != nil {
			return err
		}

		if ret.Condition != model.ConditionGood {
			r.log.Info("stock not restored due to return condition",
				zap.String("booking_uid", bookingUid), zap.String("condition", string(ret.Condition)))
			return nil
		}

		res, err := tx.ExecContext(ctx,
			`update items set current_stock = current_stock + $1, updated_at = $2
			where id = $3 and is_active`,
			b.Quantity, now, b.ItemID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return errors.Wrap(errs.ErrNotFound, "associated item not found or inactive")
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}
