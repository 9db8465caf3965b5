package order

import (
	"fastfeet/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:          o.ID,
		RecipientID: o.RecipientID,
		DelivererID: o.DelivererID,
		SignatureID: o.SignatureID,
		Product:     o.Product,
		CanceledAt:  o.CanceledAt,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		ID:          orderModify.ID,
		RecipientID: orderModify.RecipientID,
		DelivererID: orderModify.DelivererID,
		SignatureID: orderModify.SignatureID,
		Product:     orderModify.Product,
		StartDate:   orderModify.StartDate,
		EndDate:     orderModify.EndDate,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
