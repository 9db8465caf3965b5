//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*entities.QueuedTask, error)
	MarkProcessed(ctx context.Context, id string, status entities.TaskStatus, reason *string, processedAt time.Time) error
}

type (
	ExecuteFn      func(ctx context.Context, payload entities.NotificationPayload) error
	HandlerFactory interface {
		GetHandler(key entities.TaskKey) (ExecuteFn, error)
	}
)
