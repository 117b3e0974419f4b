package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

type CategoryDAO interface {
	FindAll(ctx context.Context) ([]dao.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	categories := make([]domain.Category, len(found))
	for i, c := range found {
		categories[i] = domain.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
			CreatedAt:   c.CreatedAt,
		}
	}

	return categories, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := r.dao.ExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByName -> %w", err)
	}

	return ok, nil
}
