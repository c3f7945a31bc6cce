package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

func (r *repository) CreateCategory(ctx context.Context, cat model.Category) (model.Category, error) {
	q, args, err := qb.Insert(categoryTableName).
		Columns("name", "category_code", "description", "created_at", "updated_at").
		Values(cat.Name, cat.CategoryCode, cat.Description, cat.CreatedAt, cat.UpdatedAt).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}

	var res model.Category
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Category{}, errs.ErrAlreadyExists
		}
		return model.Category{}, err
	}
	return res, nil
}

func (r *repository) GetCategory(ctx context.Context, categoryID int64) (model.Category, error) {
	q, args, err := qb.Select("*").
		From(categoryTableName).
		Where(sq.Eq{"id": categoryID}).
		ToSql()
	if err != nil {
		return model.Category{}, err
	}

	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		return model.Category{}, err
	}
	return cat, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	q, args, err := qb.Select("*").
		From(categoryTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var cats []model.Category
	if err := r.db.SelectContext(ctx, &cats, q, args...); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *repository) UpdateCategory(ctx context.Context, categoryID int64, upd model.UpdateCategoryRequest, now time.Time) (model.Category, error) {
	q := qb.Update(categoryTableName).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": categoryID}).
		Suffix("returning *")

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Category{}, err
	}

	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Category{}, errs.ErrAlreadyExists
		}
		return model.Category{}, err
	}
	return cat, nil
}

func (r *repository) DeleteCategory(ctx context.Context, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, `delete from categories where id = $1`, categoryID)
	if err != nil {
		if isPgErrCode(err, pgerrcode.ForeignKeyViolation) {
			return errs.ErrInUse
		}
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
