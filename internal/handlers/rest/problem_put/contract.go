//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_put_test
package problem_put

import (
	"context"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateProblem(ctx context.Context, id int64, description string) (*entities.DeliveryProblem, error)
}
