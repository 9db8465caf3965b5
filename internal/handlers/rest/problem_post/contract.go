//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_post_test
package problem_post

import (
	"context"

	"fastfeet/internal/entities"
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
	ReportProblem(ctx context.Context, cmd problem.ReportCommand) (*entities.DeliveryProblem, error)
}
