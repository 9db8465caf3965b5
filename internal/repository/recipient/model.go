package recipient

import (
	"time"

	"fastfeet/internal/entities"
)

type RecipientDB struct {
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

func (r *RecipientDB) toDomain() *entities.Recipient {
	return &entities.Recipient{
		ID:        r.ID,
		Name:      r.Name,
		Street:    r.Street,
		Number:    r.Number,
		Compl:     r.Compl,
		State:     r.State,
		City:      r.City,
		Zipcode:   r.Zipcode,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
