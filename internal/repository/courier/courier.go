package courier

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/order"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT id, name, email, avatar_id, created_at, updated_at
		FROM deliverers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Email,
			&courierModel.AvatarID,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// Lock блокирует строку курьера до конца транзакции. Вызывается только внутри неё.
func (r *Repository) Lock(ctx context.Context, id int64) error {
	query := `SELECT id FROM deliverers WHERE id = $1 FOR UPDATE`

	var lockedID int64
	err := r.querier.QueryRow(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrCourierNotFound
		}
		return fmt.Errorf("unexpected courier repository lock error: %w", err)
	}
	return nil
}
