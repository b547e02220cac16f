package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) GetByID(id int) (*entity.Category, error) {
	var (
		cid  int
		name string
	)
	row := r.pool.QueryRow(context.Background(), `SELECT id, name FROM categories WHERE id = $1`, id)
	if err := row.Scan(&cid, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return entity.ReconstituteCategory(cid, name), nil
}

func (r *CategoryRepository) GetAll() ([]*entity.Category, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		categories = append(categories, entity.ReconstituteCategory(id, name))
	}
	return categories, rows.Err()
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
