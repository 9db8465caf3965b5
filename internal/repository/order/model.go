package order

import "time"

type OrderDB struct {
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

type OrderModifyDB struct {
	ID          *int64
	RecipientID *int64
	DelivererID *int64
	SignatureID *int64
	Product     *string
	StartDate   *time.Time
	EndDate     *time.Time
}
