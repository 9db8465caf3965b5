package entities

import "time"

type DeliveryProblem struct {
	ID          int64
	OrderID     int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProblemWithOrder проблема вместе с заказом, к которому она относится.
type ProblemWithOrder struct {
	DeliveryProblem
	Order Order
}
