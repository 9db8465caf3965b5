//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_test
package problem

import (
	"context"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, problem entities.DeliveryProblem) (*entities.DeliveryProblem, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error)
	GetAll(ctx context.Context) ([]entities.ProblemWithOrder, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]entities.ProblemWithOrder, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*entities.DeliveryProblem, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
	CancelOrder(ctx context.Context, id int64) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
