package problem

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/service/order"
)

type ReportCommand struct {
	OrderID     int64
	Description string
}

type Resolution struct {
	Problem entities.DeliveryProblem
	Order   entities.Order
}

type Service struct {
	repository Repository
	orders     OrderService
	txManager  TxManager
}

func New(repository Repository, orders OrderService, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		orders:     orders,
		txManager:  txManager,
	}
}

// ReportProblem состояние заказа не меняется.
func (s *Service) ReportProblem(ctx context.Context, cmd ReportCommand) (*entities.DeliveryProblem, error) {
	if !isValidID(cmd.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDescription(cmd.Description) {
		return nil, ErrInvalidDescription
	}

	var created *entities.DeliveryProblem
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.activeOrder(ctx, cmd.OrderID); err != nil {
			return err
		}

		var err error
		created, err = s.repository.Create(ctx, entities.DeliveryProblem{
			OrderID:     cmd.OrderID,
			Description: cmd.Description,
		})
		if err != nil {
			return fmt.Errorf("create problem: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListProblems(ctx context.Context) ([]entities.ProblemWithOrder, error) {
	problems, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}

func (s *Service) ListOrderProblems(ctx context.Context, orderID int64) ([]entities.ProblemWithOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	problems, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order problems: %w", err)
	}
	return problems, nil
}

func (s *Service) UpdateProblem(ctx context.Context, id int64, description string) (*entities.DeliveryProblem, error) {
	if !isValidID(id) {
		return nil, ErrInvalidProblemID
	}
	if !isValidDescription(description) {
		return nil, ErrInvalidDescription
	}

	updated, err := s.repository.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, fmt.Errorf("update problem: %w", err)
	}
	return updated, nil
}

// ResolveByCancellation отменяет заказ, к которому относится проблема.
// Сама запись о проблеме не меняется.
func (s *Service) ResolveByCancellation(ctx context.Context, problemID int64) (*Resolution, error) {
	if !isValidID(problemID) {
		return nil, ErrInvalidProblemID
	}

	var resolution *Resolution
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		problem, err := s.repository.GetByID(ctx, problemID)
		if err != nil {
			return fmt.Errorf("get problem: %w", err)
		}

		if _, err := s.activeOrder(ctx, problem.OrderID); err != nil {
			return err
		}

		cancelled, err := s.orders.CancelOrder(ctx, problem.OrderID)
		if err != nil {
			return fmt.Errorf("cancel order %d: %w", problem.OrderID, err)
		}

		resolution = &Resolution{
			Problem: *problem,
			Order:   *cancelled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolution, nil
}

func (s *Service) activeOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if o.IsCancelled() {
		return nil, fmt.Errorf("%w: order %d is cancelled", ErrOrderNotFound, orderID)
	}
	return o, nil
}
