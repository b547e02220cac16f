package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type KudosRepository struct {
	pool *pgxpool.Pool
}

func NewKudosRepository(pool *pgxpool.Pool) *KudosRepository {
	return &KudosRepository{pool: pool}
}

func (r *KudosRepository) Create(k *entity.Kudos) error {
	_, err := r.pool.Exec(context.Background(), `
		INSERT INTO kudos (id, sender_id, recipient_id, category_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, k.ID, k.SenderID, k.RecipientID, k.CategoryID, k.Message, k.CreatedAt)
	return err
}

func (r *KudosRepository) DeleteAll() error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM kudos`)
	return err
}

var _ repository.KudosRepository = (*KudosRepository)(nil)
