//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_delete_test
package problem_delete

import (
	"context"

	"fastfeet/internal/service/problem"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ResolveByCancellation(ctx context.Context, problemID int64) (*problem.Resolution, error)
}
