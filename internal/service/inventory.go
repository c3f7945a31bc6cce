package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

const (
	categorySequence = "category_code_seq"
	skuAttempts      = 3
)

func (s *Service) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (model.Category, error) {
	seq, err := s.repo.NextSequence(ctx, categorySequence)
	if err != nil {
		return model.Category{}, err
	}
	now := s.now().UTC()

	cat := model.Category{
		Name:         req.Name,
		CategoryCode: fmt.Sprintf("CAT-%04d", seq),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Description != "" {
		cat.Description = &req.Description
	}
	return s.repo.CreateCategory(ctx, cat)
}

func (s *Service) GetCategory(ctx context.Context, categoryID int64) (model.Category, error) {
	return s.repo.GetCategory(ctx, categoryID)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID int64, req model.UpdateCategoryRequest) (model.Category, error) {
	return s.repo.UpdateCategory(ctx, categoryID, req, s.now())
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.repo.DeleteCategory(ctx, categoryID)
}

// CreateItem generates the SKU as CATCODE-UUID6 and retries on the rare
// collision with the unique index.
func (s *Service) CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error) {
	cat, err := s.repo.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return model.Item{}, err
	}
	now := s.now().UTC()

	item := model.Item{
		Name:         req.Name,
		CategoryID:   cat.ID,
		CurrentStock: req.InitialStock,
		Price:        req.Price,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Description != "" {
		item.Description = &req.Description
	}

	for i := 0; i < skuAttempts; i++ {
		sku := fmt.Sprintf("%s-%s", cat.CategoryCode, strings.ToUpper(uuid.NewString()[:6]))
		item.SKU = &sku
		created, err := s.repo.CreateItem(ctx, item)
		if errors.Is(err, errs.ErrAlreadyExists) {
			continue
		}
		return created, err
	}
	return model.Item{}, errors.Wrap(errs.ErrAlreadyExists, "failed to generate unique sku")
}

func (s *Service) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	return s.repo.GetItem(ctx, itemID)
}

func (s *Service) ListItems(ctx context.Context, showAll bool, page, size int) (model.ListItems, error) {
	return s.repo.ListItems(ctx, showAll, page, size)
}

func (s *Service) UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	return s.repo.UpdateItem(ctx, itemID, req, s.now())
}

func (s *Service) DeleteItem(ctx context.Context, itemID int64) error {
	return s.repo.DeactivateItem(ctx, itemID, s.now())
}
