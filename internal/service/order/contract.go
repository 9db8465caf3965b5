//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/factory/business_hours"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	// GetByIDForUpdate блокирует строку заказа до конца транзакции.
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	// Cancel ставит canceled_at только если заказ ещё не отменён.
	Cancel(ctx context.Context, id int64, canceledAt time.Time) (*entities.Order, error)
	CountPickupsSince(ctx context.Context, delivererID int64, since time.Time) (int, error)
}

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	Lock(ctx context.Context, id int64) error
}

type RecipientRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Recipient, error)
}

type FileRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Queue interface {
	Enqueue(ctx context.Context, key entities.TaskKey, payload any) error
}

type TimeWindow interface {
	Check(now time.Time) (business_hours.Window, bool)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
