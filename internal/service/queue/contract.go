//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_test
package queue

import (
	"context"
	"time"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, task entities.QueuedTask) error
	// FetchPending блокирует задачи (SKIP LOCKED) в порядке постановки.
	FetchPending(ctx context.Context, limit int) ([]entities.QueuedTask, error)
	MarkPublished(ctx context.Context, ids []string, publishedAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, task entities.QueuedTask) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
