package order

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/factory/business_hours"
)

type CreateCommand struct {
	RecipientID int64
	DelivererID int64
	Product     string
	SignatureID *int64
}

// UpdateCommand nil-поля не меняются.
type UpdateCommand struct {
	OrderID     int64
	RecipientID *int64
	DelivererID *int64
	Product     *string
	SignatureID *int64
}

type DeliveryCommand struct {
	OrderID     int64
	SignatureID int64
}

type Service struct {
	repository      Repository
	couriers        CourierRepository
	recipients      RecipientRepository
	files           FileRepository
	queue           Queue
	timeWindow      TimeWindow
	clock           Clock
	txManager       TxManager
	pickupTxManager TxManager
	pickupLimit     int
}

// New pickupTxManager должен работать на READ COMMITTED: забор блокирует строку
// курьера и после ожидания блокировки обязан увидеть закоммиченные заборы.
func New(
	repository Repository,
	couriers CourierRepository,
	recipients RecipientRepository,
	files FileRepository,
	queue Queue,
	timeWindow TimeWindow,
	clock Clock,
	txManager TxManager,
	pickupTxManager TxManager,
	pickupLimit int,
) *Service {
	return &Service{
		repository:      repository,
		couriers:        couriers,
		recipients:      recipients,
		files:           files,
		queue:           queue,
		timeWindow:      timeWindow,
		clock:           clock,
		txManager:       txManager,
		pickupTxManager: pickupTxManager,
		pickupLimit:     pickupLimit,
	}
}

func (s *Service) CreateOrder(ctx context.Context, cmd CreateCommand) (*entities.Order, error) {
	if err := validateCreate(cmd); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.couriers.GetByID(ctx, cmd.DelivererID)
		if err != nil {
			return fmt.Errorf("get deliverer: %w", err)
		}

		recipient, err := s.recipients.GetByID(ctx, cmd.RecipientID)
		if err != nil {
			return fmt.Errorf("get recipient: %w", err)
		}

		if cmd.SignatureID != nil {
			if err := s.ensureFileExists(ctx, *cmd.SignatureID); err != nil {
				return err
			}
		}

		order, err := s.repository.Create(ctx, entities.OrderModify{
			RecipientID: &cmd.RecipientID,
			DelivererID: &cmd.DelivererID,
			Product:     &cmd.Product,
			SignatureID: cmd.SignatureID,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		payload := entities.NewNotificationPayload(*order, *courier, *recipient)
		if err := s.queue.Enqueue(ctx, entities.TaskNewOrderMail, payload); err != nil {
			return fmt.Errorf("enqueue %s: %w", entities.TaskNewOrderMail, err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, entities.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListDeliveries отменённые заказы в выборку не попадают.
func (s *Service) ListDeliveries(ctx context.Context, delivererID int64, status entities.DeliveryStatus) ([]entities.Order, error) {
	if !isValidID(delivererID) {
		return nil, ErrInvalidDelivererID
	}
	if !isValidDeliveryStatus(status) {
		return nil, ErrInvalidDeliveryStatus
	}

	orders, err := s.repository.GetAll(ctx, entities.OrderFilter{
		DelivererID: &delivererID,
		Status:      &status,
	})
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return orders, nil
}

func (s *Service) UpdateOrder(ctx context.Context, cmd UpdateCommand) (*entities.Order, error) {
	if err := validateUpdate(cmd); err != nil {
		return nil, err
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.IsCancelled() {
			return fmt.Errorf("%w: order %d is %s", ErrInvalidState, current.ID, current.State())
		}

		if cmd.DelivererID != nil {
			if _, err := s.couriers.GetByID(ctx, *cmd.DelivererID); err != nil {
				return fmt.Errorf("get deliverer: %w", err)
			}
		}
		if cmd.RecipientID != nil {
			if _, err := s.recipients.GetByID(ctx, *cmd.RecipientID); err != nil {
				return fmt.Errorf("get recipient: %w", err)
			}
		}
		if cmd.SignatureID != nil && !sameID(current.SignatureID, *cmd.SignatureID) {
			if err := s.ensureFileExists(ctx, *cmd.SignatureID); err != nil {
				return err
			}
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:          &cmd.OrderID,
			RecipientID: cmd.RecipientID,
			DelivererID: cmd.DelivererID,
			Product:     cmd.Product,
			SignatureID: cmd.SignatureID,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RecordPickup проверки идут в порядке: заказ существует, состояние,
// рабочие часы, дневной лимит курьера.
func (s *Service) RecordPickup(ctx context.Context, orderID int64) (*entities.PickupResult, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var result *entities.PickupResult
	err := s.pickupTxManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if state := order.State(); state != entities.OrderCreated {
			return fmt.Errorf("%w: order %d is %s", ErrInvalidState, order.ID, state)
		}

		now := s.clock.Now()
		window, ok := s.timeWindow.Check(now)
		if !ok {
			return &OutsideBusinessHoursError{
				Opens:  window.OpensString(),
				Closes: window.ClosesString(),
			}
		}

		// сериализует заборы одного курьера
		if err := s.couriers.Lock(ctx, order.DelivererID); err != nil {
			return fmt.Errorf("lock deliverer: %w", err)
		}

		count, err := s.repository.CountPickupsSince(ctx, order.DelivererID, business_hours.StartOfDay(now))
		if err != nil {
			return fmt.Errorf("count pickups: %w", err)
		}
		if count >= s.pickupLimit {
			return &DailyLimitExceededError{Limit: s.pickupLimit}
		}

		updated, err := s.repository.Update(ctx, entities.OrderModify{
			ID:        &orderID,
			StartDate: &now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		result = &entities.PickupResult{
			Order:  *updated,
			Number: count + 1,
			Limit:  s.pickupLimit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RecordDelivery завершить можно только забранный и не отменённый заказ.
func (s *Service) RecordDelivery(ctx context.Context, cmd DeliveryCommand) (*entities.Order, error) {
	if err := validateDelivery(cmd); err != nil {
		return nil, err
	}

	var delivered *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if state := order.State(); state != entities.OrderPickedUp {
			return fmt.Errorf("%w: order %d is %s", ErrInvalidState, order.ID, state)
		}

		if !sameID(order.SignatureID, cmd.SignatureID) {
			if err := s.ensureFileExists(ctx, cmd.SignatureID); err != nil {
				return err
			}
		}

		now := s.clock.Now()
		delivered, err = s.repository.Update(ctx, entities.OrderModify{
			ID:          &cmd.OrderID,
			SignatureID: &cmd.SignatureID,
			EndDate:     &now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return delivered, nil
}

// CancelOrder повторная отмена всегда завершается ErrAlreadyCancelled.
func (s *Service) CancelOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var cancelled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.IsCancelled() {
			return ErrAlreadyCancelled
		}

		cancelled, err = s.repository.Cancel(ctx, orderID, s.clock.Now())
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		payload, err := s.snapshot(ctx, *cancelled)
		if err != nil {
			return err
		}
		if err := s.queue.Enqueue(ctx, entities.TaskCancellationMail, payload); err != nil {
			return fmt.Errorf("enqueue %s: %w", entities.TaskCancellationMail, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

func (s *Service) snapshot(ctx context.Context, order entities.Order) (entities.NotificationPayload, error) {
	courier, err := s.couriers.GetByID(ctx, order.DelivererID)
	if err != nil {
		return entities.NotificationPayload{}, fmt.Errorf("get deliverer: %w", err)
	}

	recipient, err := s.recipients.GetByID(ctx, order.RecipientID)
	if err != nil {
		return entities.NotificationPayload{}, fmt.Errorf("get recipient: %w", err)
	}

	return entities.NewNotificationPayload(order, *courier, *recipient), nil
}

func (s *Service) ensureFileExists(ctx context.Context, id int64) error {
	exists, err := s.files.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check file %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrFileNotFound, id)
	}
	return nil
}

func sameID(current *int64, id int64) bool {
	return current != nil && *current == id
}
