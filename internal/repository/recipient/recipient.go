package recipient

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Recipient, error) {
	query := `SELECT id, name, street, number, compl, state, city, zipcode, created_at, updated_at
		FROM recipients
		WHERE id = $1`

	var recipientModel RecipientDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&recipientModel.ID,
			&recipientModel.Name,
			&recipientModel.Street,
			&recipientModel.Number,
			&recipientModel.Compl,
			&recipientModel.State,
			&recipientModel.City,
			&recipientModel.Zipcode,
			&recipientModel.CreatedAt,
			&recipientModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository getbyid error: %w", err)
	}

	return recipientModel.toDomain(), nil
}
