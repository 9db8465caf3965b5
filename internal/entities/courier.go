package entities

import "time"

// Courier курьер (deliverer), только чтение.
type Courier struct {
	ID        int64
	Name      string
	Email     string
	AvatarID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Recipient struct {
	ID        int64
	Name      string
	Street    string
	Number    string
	Compl     string
	State     string
	City      string
	Zipcode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
