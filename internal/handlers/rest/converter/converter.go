// Package converter переводит сущности в сгенерированные DTO ответа.
package converter

import (
	"fastfeet/internal/entities"
	"fastfeet/internal/generated/dto"
)

func NewOrder(order entities.Order) dto.Order {
	return dto.Order{
		ID:          order.ID,
		RecipientID: order.RecipientID,
		DelivererID: order.DelivererID,
		SignatureID: order.SignatureID,
		Product:     order.Product,
		State:       dto.OrderState(order.State().String()),
		CanceledAt:  order.CanceledAt,
		StartDate:   order.StartDate,
		EndDate:     order.EndDate,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func NewOrders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, len(orders))
	for i, order := range orders {
		res[i] = NewOrder(order)
	}
	return res
}

func NewProblem(problem entities.DeliveryProblem) dto.Problem {
	return dto.Problem{
		ID:          problem.ID,
		OrderID:     problem.OrderID,
		Description: problem.Description,
	}
}

func NewProblemsWithOrder(problems []entities.ProblemWithOrder) []dto.ProblemWithOrder {
	res := make([]dto.ProblemWithOrder, len(problems))
	for i, problem := range problems {
		res[i] = dto.ProblemWithOrder{
			ID:          problem.ID,
			Description: problem.Description,
			Order:       NewOrder(problem.Order),
		}
	}
	return res
}
