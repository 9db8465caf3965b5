package file

import (
	"context"
	"fmt"

	"fastfeet/internal/repository"
)

// Repository загрузка файлов вне этого сервиса, здесь только проверка наличия.
type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM files WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected file repository exists error: %w", err)
	}
	return exists, nil
}
