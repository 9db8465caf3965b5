//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_complete_put_test
package delivery_complete_put

import (
	"context"

	"fastfeet/internal/entities"
	"fastfeet/internal/service/order"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordDelivery(ctx context.Context, cmd order.DeliveryCommand) (*entities.Order, error)
}
