package entities

import "time"

type Order struct {
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

// OrderState состояние заказа, выводится из nullable-полей.
type OrderState string

const (
	OrderCreated   OrderState = "created"
	OrderPickedUp  OrderState = "picked_up"
	OrderDelivered OrderState = "delivered"
	OrderCancelled OrderState = "cancelled"
)

func (s OrderState) String() string {
	return string(s)
}

// State отмена терминальна и перекрывает остальные поля.
func (o Order) State() OrderState {
	switch {
	case o.CanceledAt != nil:
		return OrderCancelled
	case o.EndDate != nil:
		return OrderDelivered
	case o.StartDate != nil:
		return OrderPickedUp
	default:
		return OrderCreated
	}
}

func (o Order) IsCancelled() bool {
	return o.State() == OrderCancelled
}

type OrderModify struct {
	ID          *int64
	RecipientID *int64
	DelivererID *int64
	SignatureID *int64
	Product     *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryCompleted DeliveryStatus = "completed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// OrderFilter пустой фильтр выбирает все заказы.
type OrderFilter struct {
	DelivererID *int64
	Status      *DeliveryStatus
}

// PickupResult результат забора заказа курьером.
type PickupResult struct {
	Order  Order
	Number int
	Limit  int
}
