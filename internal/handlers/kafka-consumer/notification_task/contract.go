//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_task_test
package notification_task

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
	ProcessTask(ctx context.Context, task entities.QueuedTask) (*entities.QueuedTask, error)
}
