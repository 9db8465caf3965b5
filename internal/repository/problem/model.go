package problem

import (
	"time"

	"fastfeet/internal/entities"
)

type ProblemDB struct {
	ID          int64
	OrderID     int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProblemWithOrderDB строка join delivery_problems с orders.
type ProblemWithOrderDB struct {
	ProblemDB
	Order struct {
		ID          int64
		RecipientID int64
		DelivererID int64
		SignatureID *int64
		Product     string
		CanceledAt  *time.Time
		StartDate   *time.Time
		EndDate     *time.Time
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
}

func (p *ProblemDB) toDomain() *entities.DeliveryProblem {
	return &entities.DeliveryProblem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *ProblemWithOrderDB) toDomain() entities.ProblemWithOrder {
	return entities.ProblemWithOrder{
		DeliveryProblem: *p.ProblemDB.toDomain(),
		Order: entities.Order{
			ID:          p.Order.ID,
			RecipientID: p.Order.RecipientID,
			DelivererID: p.Order.DelivererID,
			SignatureID: p.Order.SignatureID,
			Product:     p.Order.Product,
			CanceledAt:  p.Order.CanceledAt,
			StartDate:   p.Order.StartDate,
			EndDate:     p.Order.EndDate,
			CreatedAt:   p.Order.CreatedAt,
			UpdatedAt:   p.Order.UpdatedAt,
		},
	}
}
