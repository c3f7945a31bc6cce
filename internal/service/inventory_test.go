package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"

	repo_mocks "github.com/Astemirdum/lending-service/internal/repository/mocks"
)

func TestService_CreateCategory(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().NextSequence(gomock.Any(), "category_code_seq").Return(int64(7), nil)
	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cat model.Category) (model.Category, error) {
			require.Equal(t, "Cameras", cat.Name)
			require.Equal(t, "CAT-0007", cat.CategoryCode)
			cat.ID = 1
			return cat, nil
		})

	svc := newTestService(repo)

	cat, err := svc.CreateCategory(context.Background(), model.CreateCategoryRequest{Name: "Cameras"})
	require.NoError(t, err)
	require.Equal(t, "CAT-0007", cat.CategoryCode)
}

func TestService_CreateItem(t *testing.T) {
	t.Parallel()
	category := model.Category{ID: 3, Name: "Cameras", CategoryCode: "CAT-0003"}
	req := model.CreateItemRequest{
		Name:         "tripod",
		CategoryID:   3,
		InitialStock: 5,
	}

	t.Run("ok. sku derived from category code", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(category, nil)
		repo.EXPECT().
			CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.Item) (model.Item, error) {
				require.NotNil(t, item.SKU)
				require.True(t, strings.HasPrefix(*item.SKU, "CAT-0003-"))
				require.Len(t, *item.SKU, len("CAT-0003-")+6)
				require.Equal(t, 5, item.CurrentStock)
				require.True(t, item.IsActive)
				item.ID = 1
				return item, nil
			})

		svc := newTestService(repo)

		item, err := svc.CreateItem(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, int64(1), item.ID)
	})

	t.Run("ok. retries sku collision", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(category, nil)
		gomock.InOrder(
			repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(model.Item{}, errs.ErrAlreadyExists),
			repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, item model.Item) (model.Item, error) {
					item.ID = 2
					return item, nil
				}),
		)

		svc := newTestService(repo)

		item, err := svc.CreateItem(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, int64(2), item.ID)
	})

	t.Run("err. gives up after repeated collisions", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(category, nil)
		repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			Return(model.Item{}, errs.ErrAlreadyExists).
			Times(3)

		svc := newTestService(repo)

		_, err := svc.CreateItem(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("err. category missing", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(model.Category{}, errs.ErrNotFound)

		svc := newTestService(repo)

		_, err := svc.CreateItem(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
