package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

func (r *repository) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	q, args, err := qb.Select("*").
		From(itemTableName).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) GetActiveItem(ctx context.Context, itemID int64) (model.Item, error) {
	q, args, err := qb.Select("*").
		From(itemTableName).
		Where(sq.Eq{"id": itemID}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) ListItems(ctx context.Context, showAll bool, page, size int) (model.ListItems, error) {
	q := qb.Select("*").
		From(itemTableName).
		OrderBy("name")

	if !showAll {
		q = q.Where(sq.Eq{"is_active": true})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListItems{}, err
	}

	var items []model.Item
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListItems{}, err
	}

	return model.ListItems{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	q, args, err := qb.Insert(itemTableName).
		Columns("name", "sku", "description", "category_id", "current_stock",
			"price", "is_active", "created_at", "updated_at").
		Values(item.Name, item.SKU, item.Description, item.CategoryID, item.CurrentStock,
			item.Price, item.IsActive, item.CreatedAt, item.UpdatedAt).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var res model.Item
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Item{}, errs.ErrAlreadyExists
		}
		r.log.Error("CreateItem", zap.String("q", q), zap.Any("args", args))
		return model.Item{}, err
	}
	return res, nil
}

func (r *repository) UpdateItem(ctx context.Context, itemID int64, upd model.UpdateItemRequest, now time.Time) (model.Item, error) {
	q := qb.Update(itemTableName).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": itemID}).
		Suffix("returning *")

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.CategoryID != nil {
		q = q.Set("category_id", *upd.CategoryID)
	}
	if upd.Price != nil {
		q = q.Set("price", *upd.Price)
	}
	if upd.IsActive != nil {
		q = q.Set("is_active", *upd.IsActive)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

// DeactivateItem soft-deletes: the row stays so historical bookings keep resolving.
func (r *repository) DeactivateItem(ctx context.Context, itemID int64, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`update items set is_active = false, updated_at = $1 where id = $2 and is_active`,
		now.UTC(), itemID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
