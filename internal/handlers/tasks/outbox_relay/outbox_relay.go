package outbox_relay

import (
	"context"
	"time"

	"fastfeet/pkg/logger"
)

//go:generate mockgen -source=outbox_relay.go -destination=outbox_relay_mocks_test.go -package=outbox_relay_test

type Service interface {
	RelayPending(ctx context.Context, batch int) (int, error)
}

// OutboxRelay переносит задачи из outbox в брокер.
type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	batch    int
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration, batch int) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	published, err := o.service.RelayPending(ctxWithTimeout, o.batch)

	if published > 0 {
		o.log.With(
			logger.NewField("published", published),
		).Info("outbox relay")
	}

	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
