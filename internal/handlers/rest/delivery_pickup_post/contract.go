//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_pickup_post_test
package delivery_pickup_post

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
	RecordPickup(ctx context.Context, orderID int64) (*entities.PickupResult, error)
}
